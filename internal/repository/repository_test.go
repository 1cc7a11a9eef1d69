package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/forexel/PrivetManagerApp/internal/entity"
	"github.com/forexel/PrivetManagerApp/internal/repository"
	"github.com/forexel/PrivetManagerApp/pkg/postgres"
)

func TestRepository_UpsertPassport(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	client := seedClient(t, pool, entity.ContourManager, entity.ClientStatusNew)

	now := time.Now().Truncate(time.Millisecond)
	middle := "Петрович"

	want := entity.Passport{
		ID:                  uuid.Must(uuid.NewV4()),
		ClientID:            client.ID,
		LastName:            "Иванов",
		FirstName:           "Пётр",
		MiddleName:          &middle,
		Series:              "4509",
		Number:              "123456",
		IssuedBy:            "ОВД Тестового района",
		IssueCode:           "770-001",
		IssueDate:           time.Date(2010, 4, 15, 0, 0, 0, 0, time.UTC),
		RegistrationAddress: "Москва, ул. Тестовая, 1",
		UpdatedAt:           now,
	}

	got, err := repo.UpsertPassport(context.Background(), want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	stored, err := repo.PassportByClientID(context.Background(), client.ID)
	require.NoError(t, err)
	require.Equal(t, want, stored)

	// Ссылка на фото переживает полную перезапись данных.
	key := "passports/" + client.ID.String() + "/photo.jpg"
	url := "https://cdn.example.com/" + key
	err = repo.SetPassportPhoto(context.Background(), client.ID, &key, &url, now)
	require.NoError(t, err)

	want.Series = "4510"
	want.UpdatedAt = now.Add(time.Second)

	got, err = repo.UpsertPassport(context.Background(), want)
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, "4510", got.Series)
	require.NotNil(t, got.PhotoFileKey)
	require.Equal(t, key, *got.PhotoFileKey)
}

func TestRepository_UpdatePassportFields(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	client := seedClient(t, pool, entity.ContourManager, entity.ClientStatusNew)

	now := time.Now().Truncate(time.Millisecond)
	passport := seedPassport(t, repo, client.ID, now)

	series := "1111"
	err := repo.UpdatePassportFields(context.Background(), client.ID, entity.PassportPatch{Series: &series}, now.Add(time.Second))
	require.NoError(t, err)

	got, err := repo.PassportByClientID(context.Background(), client.ID)
	require.NoError(t, err)
	require.Equal(t, "1111", got.Series)
	require.Equal(t, passport.Number, got.Number)

	err = repo.UpdatePassportFields(context.Background(), uuid.Must(uuid.NewV4()), entity.PassportPatch{Series: &series}, now)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_DeviceLifecycle(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	client := seedClient(t, pool, entity.ContourMaster, entity.ClientStatusNew)

	now := time.Now().Truncate(time.Millisecond)

	first := entity.Device{
		ID:         uuid.Must(uuid.NewV4()),
		ClientID:   client.ID,
		DeviceType: "boiler",
		Title:      "Котёл",
		Specs:      map[string]any{"brand": "Bosch"},
		ExtraFee:   decimal.RequireFromString("1000.00"),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	second := entity.Device{
		ID:         uuid.Must(uuid.NewV4()),
		ClientID:   client.ID,
		DeviceType: "pump",
		Title:      "Насос",
		ExtraFee:   decimal.RequireFromString("500.00"),
		CreatedAt:  now.Add(time.Second),
		UpdatedAt:  now.Add(time.Second),
	}

	_, err := repo.CreateDevice(context.Background(), first)
	require.NoError(t, err)
	_, err = repo.CreateDevice(context.Background(), second)
	require.NoError(t, err)

	photo := entity.DevicePhoto{
		ID:        uuid.Must(uuid.NewV4()),
		DeviceID:  first.ID,
		FileKey:   "devices/" + first.ID.String() + "/1.jpg",
		CreatedAt: now,
	}
	_, err = repo.AddDevicePhoto(context.Background(), photo)
	require.NoError(t, err)

	devices, err := repo.DevicesByClientID(context.Background(), client.ID)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	require.Equal(t, first.ID, devices[0].ID)
	require.Equal(t, second.ID, devices[1].ID)
	require.Equal(t, []entity.DevicePhoto{photo}, devices[0].Photos)
	require.Empty(t, devices[1].Photos)

	first.Title = "Котёл газовый"
	first.UpdatedAt = now.Add(2 * time.Second)
	err = repo.UpdateDevice(context.Background(), first)
	require.NoError(t, err)

	got, err := repo.DeviceByID(context.Background(), client.ID, first.ID)
	require.NoError(t, err)
	require.Equal(t, "Котёл газовый", got.Title)
	require.Equal(t, map[string]any{"brand": "Bosch"}, got.Specs)

	err = repo.DeleteDevice(context.Background(), client.ID, second.ID)
	require.NoError(t, err)

	_, err = repo.DeviceByID(context.Background(), client.ID, second.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_SaveGenerated_ResetsSigningState(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	client := seedClient(t, pool, entity.ContourManager, entity.ClientStatusAwaitingContract)

	now := time.Now().Truncate(time.Millisecond)
	number := "ИВ-250115-01"
	url := "https://cdn.example.com/contracts/" + client.ID.String() + "/" + number + ".pdf"

	contract := entity.Contract{
		ID:               uuid.Must(uuid.NewV4()),
		ClientID:         client.ID,
		PassportSnapshot: map[string]any{"last_name": "Иванов"},
		DeviceSnapshot:   []map[string]any{{"id": "d1"}},
		TariffSnapshot:   map[string]any{"device_count": float64(1)},
		ContractNumber:   &number,
		ContractURL:      &url,
		UpdatedAt:        now,
	}

	saved, err := repo.SaveGenerated(context.Background(), contract)
	require.NoError(t, err)
	require.Equal(t, contract.PassportSnapshot, saved.PassportSnapshot)
	require.Equal(t, contract.DeviceSnapshot, saved.DeviceSnapshot)
	require.Nil(t, saved.SignedAt)

	err = repo.SetContractOTP(context.Background(), client.ID, "1234", now)
	require.NoError(t, err)

	err = repo.MarkContractSigned(context.Background(), client.ID, entity.ContractSignature{
		SignedAt:    now,
		PepAgreedAt: now,
		Hash:        "abc",
		HMAC:        "def",
		IP:          "10.0.0.1",
		UserAgent:   "test-agent",
	})
	require.NoError(t, err)

	signed, err := repo.ContractByClientID(context.Background(), client.ID)
	require.NoError(t, err)
	require.NotNil(t, signed.SignedAt)
	require.Nil(t, signed.OTPCode)
	require.NotNil(t, signed.SignatureHash)

	// Повторная генерация сбрасывает подпись, оплату и OTP.
	number2 := "ИВ-250115-02"
	contract.ContractNumber = &number2
	contract.UpdatedAt = now.Add(time.Second)

	regenerated, err := repo.SaveGenerated(context.Background(), contract)
	require.NoError(t, err)
	require.Equal(t, saved.ID, regenerated.ID)
	require.Equal(t, &number2, regenerated.ContractNumber)
	require.Nil(t, regenerated.SignedAt)
	require.Nil(t, regenerated.PepAgreedAt)
	require.Nil(t, regenerated.PaymentConfirmedAt)
	require.Nil(t, regenerated.OTPCode)
	require.Nil(t, regenerated.OTPSentAt)
	require.Nil(t, regenerated.SignatureHash)
	require.Nil(t, regenerated.SignatureHMAC)
}

func TestRepository_MarkContractSigned_OpensNewPaymentCycle(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	client := seedClient(t, pool, entity.ContourManager, entity.ClientStatusProcessed)

	now := time.Now().Truncate(time.Millisecond)
	number := "ИВ-250116-01"
	url := "https://cdn.example.com/contracts/" + client.ID.String() + "/" + number + ".pdf"

	_, err := repo.SaveGenerated(context.Background(), entity.Contract{
		ID:               uuid.Must(uuid.NewV4()),
		ClientID:         client.ID,
		PassportSnapshot: map[string]any{"last_name": "Петров"},
		DeviceSnapshot:   []map[string]any{{"id": "d1"}},
		TariffSnapshot:   map[string]any{"device_count": float64(1)},
		ContractNumber:   &number,
		ContractURL:      &url,
		UpdatedAt:        now,
	})
	require.NoError(t, err)

	err = repo.MarkContractSigned(context.Background(), client.ID, entity.ContractSignature{
		SignedAt:    now,
		PepAgreedAt: now,
		Hash:        "hash-1",
		HMAC:        "hmac-1",
	})
	require.NoError(t, err)

	err = repo.SetPaymentConfirmed(context.Background(), client.ID, now.Add(time.Minute))
	require.NoError(t, err)

	paid, err := repo.ContractByClientID(context.Background(), client.ID)
	require.NoError(t, err)
	require.NotNil(t, paid.PaymentConfirmedAt)

	// Повторная подпись без перегенерации снимает отметку об оплате.
	err = repo.MarkContractSigned(context.Background(), client.ID, entity.ContractSignature{
		SignedAt:    now.Add(2 * time.Minute),
		PepAgreedAt: now.Add(2 * time.Minute),
		Hash:        "hash-2",
		HMAC:        "hmac-2",
	})
	require.NoError(t, err)

	resigned, err := repo.ContractByClientID(context.Background(), client.ID)
	require.NoError(t, err)
	require.Nil(t, resigned.PaymentConfirmedAt)
	require.NotNil(t, resigned.SignatureHash)
	require.Equal(t, "hash-2", *resigned.SignatureHash)
}

func TestRepository_PendingInvoice(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	client := seedClient(t, pool, entity.ContourManager, entity.ClientStatusAwaitingPayment)

	now := time.Now().Truncate(time.Millisecond)

	want := entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		Contour:        entity.ContourManager,
		ClientUserID:   client.UserID,
		Amount:         decimal.RequireFromString("2000.00"),
		Description:    "Оплата по договору ИВ-250115-01",
		ContractNumber: "ИВ-250115-01",
		DueDate:        time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
		Status:         entity.InvoiceStatusPending,
		CreatedAt:      now,
	}

	_, err := repo.CreateInvoice(context.Background(), want)
	require.NoError(t, err)

	got, err := repo.PendingInvoice(context.Background(), entity.ContourManager, client.UserID, "ИВ-250115-01")
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = repo.PendingInvoice(context.Background(), entity.ContourManager, client.UserID, "ИВ-250115-02")
	require.ErrorIs(t, err, entity.ErrNotFound)

	invoices, err := repo.InvoicesByUser(context.Background(), entity.ContourManager, client.UserID)
	require.NoError(t, err)
	require.Equal(t, []entity.Invoice{want}, invoices)
}

func TestRepository_Clients_Tabs(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)

	staffID := seedStaff(t, pool, entity.ContourManager)

	fresh := seedClient(t, pool, entity.ContourManager, entity.ClientStatusNew)
	inWork := seedClient(t, pool, entity.ContourManager, entity.ClientStatusAwaitingContract)
	done := seedClient(t, pool, entity.ContourManager, entity.ClientStatusProcessed)

	err := repo.AssignStaff(context.Background(), inWork.ID, staffID)
	require.NoError(t, err)

	newTab, err := repo.Clients(context.Background(), entity.ContourManager, entity.ClientTabNew, staffID)
	require.NoError(t, err)
	require.True(t, containsClient(newTab, fresh.ID))
	require.False(t, containsClient(newTab, inWork.ID))

	inWorkTab, err := repo.Clients(context.Background(), entity.ContourManager, entity.ClientTabInWork, staffID)
	require.NoError(t, err)
	require.True(t, containsClient(inWorkTab, inWork.ID))
	require.False(t, containsClient(inWorkTab, done.ID))

	processedTab, err := repo.Clients(context.Background(), entity.ContourManager, entity.ClientTabProcessed, staffID)
	require.NoError(t, err)
	require.True(t, containsClient(processedTab, done.ID))

	mineTab, err := repo.Clients(context.Background(), entity.ContourManager, entity.ClientTabMine, staffID)
	require.NoError(t, err)
	require.True(t, containsClient(mineTab, inWork.ID))
	require.False(t, containsClient(mineTab, fresh.ID))
}

func TestRepository_ClientDetail(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	client := seedClient(t, pool, entity.ContourManager, entity.ClientStatusNew)

	now := time.Now().Truncate(time.Millisecond)
	seedPassport(t, repo, client.ID, now)

	device := entity.Device{
		ID:         uuid.Must(uuid.NewV4()),
		ClientID:   client.ID,
		DeviceType: "boiler",
		Title:      "Котёл",
		ExtraFee:   decimal.RequireFromString("1000.00"),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_, err := repo.CreateDevice(context.Background(), device)
	require.NoError(t, err)

	detail, err := repo.ClientDetail(context.Background(), entity.ContourManager, client.ID)
	require.NoError(t, err)
	require.Equal(t, client.ID, detail.Client.ID)
	require.Equal(t, client.UserID, detail.User.ID)
	require.NotNil(t, detail.Passport)
	require.Len(t, detail.Devices, 1)
	require.Nil(t, detail.Tariff)
	require.Nil(t, detail.Contract)
	require.Empty(t, detail.Invoices)

	_, err = repo.ClientDetail(context.Background(), entity.ContourMaster, client.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_InClientTx_RollsBackOnError(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	client := seedClient(t, pool, entity.ContourManager, entity.ClientStatusNew)

	errBoom := errors.New("boom")

	err := repo.InClientTx(context.Background(), client.ID, func(ctx context.Context) error {
		require.NoError(t, repo.SetClientStatus(ctx, client.ID, entity.ClientStatusProcessed))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	got, err := repo.ClientByID(context.Background(), entity.ContourManager, client.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ClientStatusNew, got.Status)
}

func TestRepository_UpsertClientTariff(t *testing.T) {
	t.Parallel()

	pool := dbPool(t)
	repo := repository.New(pool)
	client := seedClient(t, pool, entity.ContourManager, entity.ClientStatusNew)

	now := time.Now().Truncate(time.Millisecond)

	ct := entity.ClientTariff{
		ID:            uuid.Must(uuid.NewV4()),
		ClientID:      client.ID,
		DeviceCount:   2,
		TotalExtraFee: decimal.RequireFromString("2000.00"),
		CalculatedAt:  now,
	}

	saved, err := repo.UpsertClientTariff(context.Background(), ct)
	require.NoError(t, err)

	got, err := repo.ClientTariffByClientID(context.Background(), client.ID)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
	require.Equal(t, 2, got.DeviceCount)
	require.Nil(t, got.Tariff)

	ct.DeviceCount = 3
	ct.TotalExtraFee = decimal.RequireFromString("3000.00")
	ct.CalculatedAt = now.Add(time.Second)

	_, err = repo.UpsertClientTariff(context.Background(), ct)
	require.NoError(t, err)

	got, err = repo.ClientTariffByClientID(context.Background(), client.ID)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
	require.Equal(t, 3, got.DeviceCount)
	require.Equal(t, decimal.RequireFromString("3000.00"), got.TotalExtraFee)
}

func seedClient(t *testing.T, pool *pgxpool.Pool, contour entity.Contour, status entity.ClientStatus) entity.Client {
	t.Helper()

	now := time.Now().Truncate(time.Millisecond)

	userID := uuid.Must(uuid.NewV4())
	_, err := pool.Exec(
		context.Background(),
		`INSERT INTO users (id, phone, created_at) VALUES ($1, $2, $3)`,
		userID,
		uuid.Must(uuid.NewV4()).String()[:18],
		now,
	)
	require.NoError(t, err)

	clientID := uuid.Must(uuid.NewV4())
	_, err = pool.Exec(
		context.Background(),
		`INSERT INTO clients (id, contour, user_id, status, created_at) VALUES ($1, $2, $3, $4, $5)`,
		clientID,
		contour,
		userID,
		status,
		now,
	)
	require.NoError(t, err)

	return entity.Client{ID: clientID, Contour: contour, UserID: userID, Status: status, CreatedAt: now}
}

func seedStaff(t *testing.T, pool *pgxpool.Pool, contour entity.Contour) uuid.UUID {
	t.Helper()

	staffID := uuid.Must(uuid.NewV4())
	_, err := pool.Exec(
		context.Background(),
		`INSERT INTO staff_users (id, contour, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		staffID,
		contour,
		uuid.Must(uuid.NewV4()).String()+"@test.local",
		"x",
		time.Now().Truncate(time.Millisecond),
	)
	require.NoError(t, err)

	return staffID
}

func seedPassport(t *testing.T, repo *repository.Repository, clientID uuid.UUID, now time.Time) entity.Passport {
	t.Helper()

	passport, err := repo.UpsertPassport(context.Background(), entity.Passport{
		ID:                  uuid.Must(uuid.NewV4()),
		ClientID:            clientID,
		LastName:            "Иванов",
		FirstName:           "Пётр",
		Series:              "4509",
		Number:              "123456",
		IssuedBy:            "ОВД Тестового района",
		IssueCode:           "770-001",
		IssueDate:           time.Date(2010, 4, 15, 0, 0, 0, 0, time.UTC),
		RegistrationAddress: "Москва, ул. Тестовая, 1",
		UpdatedAt:           now,
	})
	require.NoError(t, err)

	return passport
}

func containsClient(summaries []entity.ClientSummary, id uuid.UUID) bool {
	for _, s := range summaries {
		if s.Client.ID == id {
			return true
		}
	}

	return false
}

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}
