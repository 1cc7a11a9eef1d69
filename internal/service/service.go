package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/forexel/PrivetManagerApp/internal/entity"
	"github.com/forexel/PrivetManagerApp/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
	InClientTx(ctx context.Context, clientID uuid.UUID, fn func(ctx context.Context) error) error

	StaffByEmail(ctx context.Context, contour entity.Contour, email string) (entity.StaffUser, error)
	StaffByID(ctx context.Context, id uuid.UUID) (entity.StaffUser, error)

	ClientByID(ctx context.Context, contour entity.Contour, id uuid.UUID) (entity.Client, error)
	Clients(ctx context.Context, contour entity.Contour, tab entity.ClientTab, staffID uuid.UUID) ([]entity.ClientSummary, error)
	ClientDetail(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ClientDetail, error)
	AssignStaff(ctx context.Context, clientID, staffID uuid.UUID) error
	SetClientStatus(ctx context.Context, clientID uuid.UUID, status entity.ClientStatus) error
	SetSupportTicket(ctx context.Context, clientID, ticketID uuid.UUID) error
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	UpdateUserContacts(ctx context.Context, userID uuid.UUID, patch entity.UserPatch) error

	PassportByClientID(ctx context.Context, clientID uuid.UUID) (entity.Passport, error)
	UpsertPassport(ctx context.Context, p entity.Passport) (entity.Passport, error)
	UpdatePassportFields(ctx context.Context, clientID uuid.UUID, patch entity.PassportPatch, updatedAt time.Time) error
	SetPassportPhoto(ctx context.Context, clientID uuid.UUID, fileKey, url *string, updatedAt time.Time) error

	DeviceByID(ctx context.Context, clientID, deviceID uuid.UUID) (entity.Device, error)
	DevicesByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Device, error)
	CreateDevice(ctx context.Context, d entity.Device) (entity.Device, error)
	UpdateDevice(ctx context.Context, d entity.Device) error
	DeleteDevice(ctx context.Context, clientID, deviceID uuid.UUID) error
	AddDevicePhoto(ctx context.Context, photo entity.DevicePhoto) (entity.DevicePhoto, error)
	DevicePhotoByID(ctx context.Context, deviceID, photoID uuid.UUID) (entity.DevicePhoto, error)
	DeleteDevicePhoto(ctx context.Context, photoID uuid.UUID) error

	TariffByID(ctx context.Context, contour entity.Contour, id uuid.UUID) (entity.Tariff, error)
	Tariffs(ctx context.Context, contour entity.Contour) ([]entity.Tariff, error)
	ClientTariffByClientID(ctx context.Context, clientID uuid.UUID) (entity.ClientTariff, error)
	UpsertClientTariff(ctx context.Context, ct entity.ClientTariff) (entity.ClientTariff, error)

	ContractByClientID(ctx context.Context, clientID uuid.UUID) (entity.Contract, error)
	SaveGenerated(ctx context.Context, c entity.Contract) (entity.Contract, error)
	SetContractOTP(ctx context.Context, clientID uuid.UUID, code string, sentAt time.Time) error
	MarkContractSigned(ctx context.Context, clientID uuid.UUID, sig entity.ContractSignature) error
	SetPaymentConfirmed(ctx context.Context, clientID uuid.UUID, confirmedAt time.Time) error

	PendingInvoice(ctx context.Context, contour entity.Contour, clientUserID uuid.UUID, contractNumber string) (entity.Invoice, error)
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)

	SupportThreadByClientID(ctx context.Context, clientID uuid.UUID) (entity.SupportThread, error)
	CreateSupportThread(ctx context.Context, thread entity.SupportThread) (entity.SupportThread, error)
	AddSupportMessage(ctx context.Context, msg entity.SupportMessage) (entity.SupportMessage, error)
}

type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	PresignUpload(ctx context.Context, keyPrefix, contentType string) (entity.PresignedUpload, error)
}

type Renderer interface {
	Render(contractNumber string, passport map[string]any, devices []map[string]any, tariff map[string]any, clientFullName string) ([]byte, error)
}

type Producer interface {
	SendSupportMessagePosted(ctx context.Context, contour string, userID, threadID uuid.UUID, preview string)
	SendInvoiceIssued(ctx context.Context, contour string, userID, invoiceID uuid.UUID, contractNumber string, amount decimal.Decimal, dueDate time.Time)
	SendContractSigned(ctx context.Context, contour string, userID uuid.UUID, contractNumber string)
}

type Service struct {
	cfg      config.Config
	repo     Repository
	storage  Storage
	renderer Renderer
	producer Producer
}

func New(
	cfg config.Config,
	repo Repository,
	storage Storage,
	renderer Renderer,
	producer Producer,
) *Service {
	return &Service{
		cfg:      cfg,
		repo:     repo,
		storage:  storage,
		renderer: renderer,
		producer: producer,
	}
}

// clientForUpdate загружает клиента контура и закрепляет его за текущим
// сотрудником, если он ещё ни за кем не закреплён.
func (s *Service) clientForUpdate(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.Client, error) {
	client, err := s.repo.ClientByID(ctx, contour, clientID)
	if err != nil {
		return entity.Client{}, fmt.Errorf("get client: %w", err)
	}

	return s.ensureAssignment(ctx, client)
}

func (s *Service) ensureAssignment(ctx context.Context, client entity.Client) (entity.Client, error) {
	if client.AssignedStaffID != nil {
		return client, nil
	}

	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return client, err
	}

	err = s.repo.AssignStaff(ctx, client.ID, staff.ID)
	if err != nil {
		return client, fmt.Errorf("assign staff: %w", err)
	}

	client.AssignedStaffID = &staff.ID

	return client, nil
}

// detailTx читает карточку клиента внутри уже открытой транзакции и
// дополняет фотографии устройств публичными ссылками.
func (s *Service) detailTx(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ClientDetail, error) {
	detail, err := s.repo.ClientDetail(ctx, contour, clientID)
	if err != nil {
		return entity.ClientDetail{}, fmt.Errorf("load client detail: %w", err)
	}

	s.fillFileURLs(detail.Devices)

	return detail, nil
}

func (s *Service) fillFileURLs(devices []entity.Device) {
	for i := range devices {
		for j := range devices[i].Photos {
			devices[i].Photos[j].FileURL = s.storage.PublicURL(devices[i].Photos[j].FileKey)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
