package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
)

// Invoice — счёт на доплату. Привязан к учётной записи конечного
// пользователя, а не к записи клиента в контуре.
type Invoice struct {
	ID             uuid.UUID
	Contour        Contour
	ClientUserID   uuid.UUID
	Amount         decimal.Decimal
	Description    string
	ContractNumber string
	DueDate        time.Time
	Status         InvoiceStatus
	CreatedAt      time.Time
}

func DefaultInvoiceDescription(contractNumber string) string {
	return fmt.Sprintf("Оплата по договору %s", contractNumber)
}

// BillingNotice — параметры счёта, выставляемого сотрудником вручную.
// Пустые поля заполняются значениями по умолчанию.
type BillingNotice struct {
	Amount         decimal.Decimal
	Description    string
	ContractNumber string
	DueDate        *time.Time
}
