package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/forexel/PrivetManagerApp/internal/entity"
	"github.com/forexel/PrivetManagerApp/internal/mocks"
	"github.com/forexel/PrivetManagerApp/internal/service"
	"github.com/forexel/PrivetManagerApp/pkg/config"
)

type TestService struct {
	repo     *mocks.MockRepository
	storage  *mocks.MockStorage
	renderer *mocks.MockRenderer
	producer *mocks.MockProducer
	s        *service.Service
	staff    entity.StaffUser
	ctx      context.Context
}

func NewTestService(t *testing.T, contour entity.Contour) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRepository(ctrl)
	storage := mocks.NewMockStorage(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	cfg := config.Config{}
	cfg.Auth.ManagerJWTSecret = "manager-secret"
	cfg.Auth.MasterJWTSecret = "master-secret"
	cfg.Auth.AccessTokenTTL = time.Hour
	cfg.Contract.HMACSecret = "hmac-secret"
	cfg.Contract.InvoiceDueDays = 3

	staff := entity.StaffUser{
		ID:       uuid.Must(uuid.NewV4()),
		Contour:  contour,
		Email:    "staff@privet.ru",
		IsActive: true,
	}

	return &TestService{
		repo:     repo,
		storage:  storage,
		renderer: renderer,
		producer: producer,
		s:        service.New(cfg, repo, storage, renderer, producer),
		staff:    staff,
		ctx:      entity.CtxWithStaff(context.Background(), staff),
	}
}

// expectClientTx прогоняет колбэк клиентской транзакции без настоящей БД.
func (ts *TestService) expectClientTx(clientID uuid.UUID) {
	ts.repo.EXPECT().InClientTx(ts.ctx, clientID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (ts *TestService) expectTx() {
	ts.repo.EXPECT().InTx(ts.ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

// Клиент, уже закреплённый за текущим сотрудником и с привязанным тредом
// поддержки: большинство сценариев начинаются из этого состояния.
func newClient(ts *TestService, contour entity.Contour) entity.Client {
	ticketID := uuid.Must(uuid.NewV4())

	return entity.Client{
		ID:              uuid.Must(uuid.NewV4()),
		Contour:         contour,
		UserID:          uuid.Must(uuid.NewV4()),
		AssignedStaffID: &ts.staff.ID,
		SupportTicketID: &ticketID,
		Status:          entity.ClientStatusInVerification,
		CreatedAt:       time.Now().UTC(),
	}
}

func newPassport(clientID uuid.UUID) entity.Passport {
	return entity.Passport{
		ID:                  uuid.Must(uuid.NewV4()),
		ClientID:            clientID,
		LastName:            "Иванов",
		FirstName:           "Пётр",
		Series:              "4512",
		Number:              "123456",
		IssuedBy:            "ОВД Тверского района г. Москвы",
		IssueCode:           "770-001",
		IssueDate:           time.Date(2015, 3, 12, 0, 0, 0, 0, time.UTC),
		RegistrationAddress: "Москва, ул. Тверская, д. 1",
	}
}

func newUser(id uuid.UUID) entity.User {
	return entity.User{
		ID:    id,
		Phone: "9991234567",
		Email: ptr("petr@example.com"),
		Name:  ptr("Пётр Иванов"),
	}
}

func newDevice(clientID uuid.UUID) entity.Device {
	return entity.Device{
		ID:         uuid.Must(uuid.NewV4()),
		ClientID:   clientID,
		DeviceType: "boiler",
		Title:      "Котёл BAXI",
		Specs:      map[string]any{"power": "24kW"},
		ExtraFee:   decimal.Zero,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
}

// Кеш тарифа, согласованный с количеством устройств по ставке по умолчанию:
// такой кеш при генерации договора не перезаписывается.
func syncedTariff(clientID uuid.UUID, deviceCount int) entity.ClientTariff {
	return entity.ClientTariff{
		ID:            uuid.Must(uuid.NewV4()),
		ClientID:      clientID,
		DeviceCount:   deviceCount,
		TotalExtraFee: decimal.NewFromInt(int64(1000 * deviceCount)),
		CalculatedAt:  time.Now().UTC(),
	}
}

func ptr[T any](v T) *T {
	return &v
}
