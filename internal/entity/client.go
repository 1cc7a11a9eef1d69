package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type ClientStatus string

const (
	ClientStatusNew              ClientStatus = "new"
	ClientStatusInVerification   ClientStatus = "in_verification"
	ClientStatusAwaitingContract ClientStatus = "awaiting_contract"
	ClientStatusAwaitingPayment  ClientStatus = "awaiting_payment"
	ClientStatusProcessed        ClientStatus = "processed"
)

// Вкладки списка клиентов в портале.
type ClientTab string

const (
	ClientTabNew       ClientTab = "new"
	ClientTabInWork    ClientTab = "in_work"
	ClientTabMine      ClientTab = "mine"
	ClientTabProcessed ClientTab = "processed"
)

type Client struct {
	ID              uuid.UUID
	Contour         Contour
	UserID          uuid.UUID
	AssignedStaffID *uuid.UUID
	SupportTicketID *uuid.UUID
	Status          ClientStatus
	CreatedAt       time.Time
}

// ProjectStatus выводит статус клиента из состояния договора и счетов.
// До появления договора статус не выводим (new/in_verification живут своей
// жизнью), поэтому prior возвращается как есть.
func ProjectStatus(prior ClientStatus, contract *Contract, hasPendingInvoice bool) ClientStatus {
	if contract == nil {
		return prior
	}

	if contract.SignedAt == nil {
		return ClientStatusAwaitingContract
	}

	if contract.PaymentConfirmedAt != nil {
		return ClientStatusProcessed
	}

	if hasPendingInvoice {
		return ClientStatusAwaitingPayment
	}

	return ClientStatusProcessed
}

// ClientDetail — агрегат "карточка клиента": всё, что видит сотрудник.
type ClientDetail struct {
	Client   Client
	User     User
	Passport *Passport
	Devices  []Device
	Tariff   *ClientTariff
	Contract *Contract
	Invoices []Invoice
}

// ClientSummary — строка списка клиентов.
type ClientSummary struct {
	Client       Client
	User         User
	FullName     string
	DevicesCount int
}

// ContractSummary — результат генерации договора.
type ContractSummary struct {
	ContractID     uuid.UUID
	ContractNumber string
	ContractURL    string
	OTPCode        string
}
