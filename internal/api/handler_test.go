package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/forexel/PrivetManagerApp/internal/api"
	"github.com/forexel/PrivetManagerApp/internal/entity"
	"github.com/forexel/PrivetManagerApp/internal/mocks"
)

type Tester struct {
	server      *httptest.Server
	serviceMock *mocks.MockService
	authMock    *mocks.MockAuthService
	staff       entity.StaffUser
}

func NewClientAPI(t *testing.T) Tester {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	manager := api.NewHandler(serviceMock, entity.ContourManager)
	master := api.NewHandler(serviceMock, entity.ContourMaster)
	mw := api.NewMiddleware(authMock)

	router := api.NewRouter(manager, master, mw)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return Tester{
		server:      server,
		serviceMock: serviceMock,
		authMock:    authMock,
		staff: entity.StaffUser{
			ID:       uuid.Must(uuid.NewV4()),
			Contour:  entity.ContourManager,
			Email:    "manager@privet.ru",
			IsActive: true,
		},
	}
}

// expectAuth разрешает запросы с токеном dev от имени тестового сотрудника.
func (c Tester) expectAuth(contour entity.Contour) {
	c.authMock.EXPECT().
		VerifyToken(gomock.Any(), contour, "dev").
		Return(c.staff, nil).
		AnyTimes()
}

func (c Tester) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, c.server.URL+path, reader)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, payload
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	resp, payload := c.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Сервис работает!\n", string(payload))
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	c.serviceMock.EXPECT().
		Login(gomock.Any(), entity.ContourManager, "manager@privet.ru", "secret").
		Return(entity.StaffToken{AccessToken: "jwt-token", ExpiresIn: 86400}, nil)

	resp, payload := c.do(t, http.MethodPost, "/api/manager/auth/login", "", api.LoginRequest{
		Email:    "manager@privet.ru",
		Password: "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.LoginResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, api.LoginResponse{AccessToken: "jwt-token", ExpiresIn: 86400}, got)
}

func TestHandler_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	c.serviceMock.EXPECT().
		Login(gomock.Any(), entity.ContourMaster, "master@privet.ru", "wrong").
		Return(entity.StaffToken{}, entity.ErrInvalidCredential)

	resp, payload := c.do(t, http.MethodPost, "/api/master/auth/login", "", api.LoginRequest{
		Email:    "master@privet.ru",
		Password: "wrong",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, "Неверный логин или пароль", got.Message)
}

func TestHandler_Me(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	c.serviceMock.EXPECT().Me(gomock.Any()).Return(c.staff, nil)

	resp, payload := c.do(t, http.MethodGet, "/api/manager/auth/me", "dev", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.StaffResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, api.StaffResponse{
		ID:      c.staff.ID,
		Contour: "manager",
		Email:   "manager@privet.ru",
	}, got)
}

func TestHandler_Clients(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	createdAt := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	clientID := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().
		Clients(gomock.Any(), entity.ContourManager, entity.ClientTabMine).
		Return([]entity.ClientSummary{
			{
				Client: entity.Client{
					ID:              clientID,
					Status:          entity.ClientStatusInVerification,
					AssignedStaffID: &c.staff.ID,
					CreatedAt:       createdAt,
				},
				User:         entity.User{Phone: "79990001122"},
				FullName:     "Иванов Пётр",
				DevicesCount: 2,
			},
		}, nil)

	resp, payload := c.do(t, http.MethodGet, "/api/manager/clients?tab=mine", "dev", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.ClientsResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, api.ClientsResponse{
		Clients: []api.ClientSummaryResponse{
			{
				ID:              clientID,
				Status:          "in_verification",
				FullName:        "Иванов Пётр",
				Phone:           "79990001122",
				DevicesCount:    2,
				AssignedStaffID: &c.staff.ID,
				CreatedAt:       createdAt,
			},
		},
	}, got)
}

func TestHandler_Clients_NoToken(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	resp, _ := c.do(t, http.MethodGet, "/api/manager/clients", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Clients_WrongContourToken(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	c.authMock.EXPECT().
		VerifyToken(gomock.Any(), entity.ContourMaster, "dev").
		Return(entity.StaffUser{}, entity.ErrInvalidCredential)

	resp, payload := c.do(t, http.MethodGet, "/api/master/clients", "dev", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, "Неверный токен", got.Message)
}

func TestHandler_ClientDetail(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	var (
		clientID   = uuid.Must(uuid.NewV4())
		contractID = uuid.Must(uuid.NewV4())
		userID     = uuid.Must(uuid.NewV4())
		tariffID   = uuid.Must(uuid.NewV4())
		deviceID   = uuid.Must(uuid.NewV4())
		invoiceID  = uuid.Must(uuid.NewV4())
		createdAt  = time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
		signedAt   = time.Date(2026, time.August, 21, 12, 30, 0, 0, time.UTC)
		number     = "ИВ-260821-01"
		contractU  = "https://files.privet.ru/contracts/ИВ-260821-01.pdf"
	)

	c.serviceMock.EXPECT().
		ClientDetail(gomock.Any(), entity.ContourManager, clientID).
		Return(entity.ClientDetail{
			Client: entity.Client{
				ID:              clientID,
				Status:          entity.ClientStatusAwaitingPayment,
				AssignedStaffID: &c.staff.ID,
				CreatedAt:       createdAt,
			},
			User: entity.User{
				ID:        userID,
				Phone:     "79990001122",
				CreatedAt: createdAt,
			},
			Passport: &entity.Passport{
				LastName:            "Иванов",
				FirstName:           "Пётр",
				Series:              "4510",
				Number:              "123456",
				IssuedBy:            "ОВД Тверского района",
				IssueCode:           "770-001",
				IssueDate:           time.Date(2015, time.March, 12, 0, 0, 0, 0, time.UTC),
				RegistrationAddress: "Москва, ул. Тверская, 1",
				UpdatedAt:           createdAt,
			},
			Devices: []entity.Device{
				{
					ID:         deviceID,
					DeviceType: "boiler",
					Title:      "Котёл BAXI",
					ExtraFee:   decimal.NewFromInt(500),
					CreatedAt:  createdAt,
				},
			},
			Tariff: &entity.ClientTariff{
				TariffID:      &tariffID,
				Tariff:        &entity.Tariff{Name: "Базовый"},
				DeviceCount:   1,
				TotalExtraFee: decimal.NewFromInt(500),
				CalculatedAt:  createdAt,
			},
			Contract: &entity.Contract{
				ID:             contractID,
				ContractNumber: &number,
				ContractURL:    &contractU,
				SignedAt:       &signedAt,
				PepAgreedAt:    &signedAt,
				UpdatedAt:      signedAt,
			},
			Invoices: []entity.Invoice{
				{
					ID:             invoiceID,
					Amount:         decimal.NewFromInt(2000),
					Description:    "Оплата по договору ИВ-260821-01",
					ContractNumber: number,
					DueDate:        time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
					Status:         entity.InvoiceStatusPending,
					CreatedAt:      signedAt,
				},
			},
		}, nil)

	resp, payload := c.do(t, http.MethodGet, "/api/manager/clients/"+clientID.String(), "dev", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tariffName := "Базовый"

	var got api.ClientDetailResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, api.ClientDetailResponse{
		ID:              clientID,
		Status:          "awaiting_payment",
		AssignedStaffID: &c.staff.ID,
		CreatedAt:       createdAt,
		User: api.UserResponse{
			ID:        userID,
			Phone:     "79990001122",
			CreatedAt: createdAt,
		},
		Passport: &api.PassportResponse{
			LastName:            "Иванов",
			FirstName:           "Пётр",
			Series:              "4510",
			Number:              "123456",
			IssuedBy:            "ОВД Тверского района",
			IssueCode:           "770-001",
			IssueDate:           "2015-03-12",
			RegistrationAddress: "Москва, ул. Тверская, 1",
			UpdatedAt:           createdAt,
		},
		Devices: []api.DeviceResponse{
			{
				ID:         deviceID,
				DeviceType: "boiler",
				Title:      "Котёл BAXI",
				ExtraFee:   "500",
				Photos:     []api.DevicePhotoResponse{},
				CreatedAt:  createdAt,
			},
		},
		Tariff: &api.ClientTariffResponse{
			TariffID:      &tariffID,
			TariffName:    &tariffName,
			DeviceCount:   1,
			TotalExtraFee: "500",
			CalculatedAt:  createdAt,
		},
		Contract: &api.ContractResponse{
			ID:          contractID,
			Number:      &number,
			URL:         &contractU,
			SignedAt:    &signedAt,
			PepAgreedAt: &signedAt,
			UpdatedAt:   signedAt,
		},
		Invoices: []api.InvoiceResponse{
			{
				ID:             invoiceID,
				Amount:         "2000",
				Description:    "Оплата по договору ИВ-260821-01",
				ContractNumber: number,
				DueDate:        "2026-09-01",
				Status:         "pending",
				CreatedAt:      signedAt,
			},
		},
	}, got)
}

func TestHandler_ClientDetail_NotFound(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().
		ClientDetail(gomock.Any(), entity.ContourManager, clientID).
		Return(entity.ClientDetail{}, entity.ErrNotFound)

	resp, payload := c.do(t, http.MethodGet, "/api/manager/clients/"+clientID.String(), "dev", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, "Не найдено", got.Message)
}

func TestHandler_ClientDetail_BadID(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	resp, payload := c.do(t, http.MethodGet, "/api/manager/clients/not-a-uuid", "dev", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, "Невалидный идентификатор клиента", got.Message)
}

func TestHandler_CreateDevice(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())
	deviceID := uuid.Must(uuid.NewV4())
	createdAt := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

	c.serviceMock.EXPECT().
		CreateDevice(gomock.Any(), entity.ContourManager, clientID, entity.Device{
			ClientID:   clientID,
			DeviceType: "boiler",
			Title:      "Котёл BAXI",
			Specs:      map[string]any{"vendor": "BAXI"},
			ExtraFee:   decimal.NewFromInt(500),
		}).
		Return(entity.Device{
			ID:         deviceID,
			ClientID:   clientID,
			DeviceType: "boiler",
			Title:      "Котёл BAXI",
			Specs:      map[string]any{"vendor": "BAXI"},
			ExtraFee:   decimal.NewFromInt(500),
			CreatedAt:  createdAt,
		}, nil)

	resp, payload := c.do(t, http.MethodPost, "/api/manager/clients/"+clientID.String()+"/devices", "dev",
		map[string]any{
			"device_type": "boiler",
			"title":       "Котёл BAXI",
			"specs":       map[string]any{"vendor": "BAXI"},
			"extra_fee":   500,
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.DeviceResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, api.DeviceResponse{
		ID:         deviceID,
		DeviceType: "boiler",
		Title:      "Котёл BAXI",
		Specs:      map[string]any{"vendor": "BAXI"},
		ExtraFee:   "500",
		Photos:     []api.DevicePhotoResponse{},
		CreatedAt:  createdAt,
	}, got)
}

func TestHandler_DeleteDevice(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())
	deviceID := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().
		DeleteDevice(gomock.Any(), entity.ContourManager, clientID, deviceID).
		Return(nil)

	resp, payload := c.do(t, http.MethodDelete,
		"/api/manager/clients/"+clientID.String()+"/devices/"+deviceID.String(), "dev", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.StatusResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, "deleted", got.Status)
}

func TestHandler_CalculateTariff(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())
	tariffID := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().
		CalculateTariff(gomock.Any(), entity.ContourManager, clientID, &tariffID, 3).
		Return(entity.TariffCalculation{
			DeviceCount:    3,
			ExtraPerDevice: decimal.NewFromInt(500),
			TotalExtraFee:  decimal.NewFromInt(1500),
		}, nil)

	resp, payload := c.do(t, http.MethodPost,
		"/api/manager/clients/"+clientID.String()+"/tariff/calculate", "dev",
		api.TariffCalculateRequest{TariffID: &tariffID, DeviceCount: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.TariffCalculationResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, api.TariffCalculationResponse{
		DeviceCount:    3,
		ExtraPerDevice: "500",
		TotalExtraFee:  "1500",
	}, got)
}

func TestHandler_GenerateContract_MissingPassport(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().
		GenerateContract(gomock.Any(), entity.ContourManager, clientID).
		Return(entity.ContractSummary{}, entity.NewPrerequisiteError(entity.PrerequisitePassport))

	resp, payload := c.do(t, http.MethodPost,
		"/api/manager/clients/"+clientID.String()+"/contract/generate", "dev", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, "Сначала заполните паспортные данные клиента", got.Message)
}

func TestHandler_RequestContractOTP(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().
		RequestContractOTP(gomock.Any(), entity.ContourManager, clientID).
		Return("1234", nil)

	resp, payload := c.do(t, http.MethodPost,
		"/api/manager/clients/"+clientID.String()+"/contract/request-otp", "dev", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Код не должен утекать сотруднику: его видит только клиент в треде.
	require.NotContains(t, string(payload), "1234")

	var got api.StatusResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, "sent", got.Status)
}

func TestHandler_RequestContractOTP_MasterNotMounted(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourMaster)

	clientID := uuid.Must(uuid.NewV4())

	resp, _ := c.do(t, http.MethodPost,
		"/api/master/clients/"+clientID.String()+"/contract/request-otp", "dev", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_ConfirmContract(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().
		ConfirmContract(gomock.Any(), entity.ContourManager, clientID, "1234", entity.SignatureMeta{
			IP:        "203.0.113.7",
			UserAgent: "staff-portal/1.0",
		}).
		Return(entity.ClientDetail{
			Client: entity.Client{ID: clientID, Status: entity.ClientStatusAwaitingPayment},
		}, nil)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		c.server.URL+"/api/manager/clients/"+clientID.String()+"/contract/confirm",
		strings.NewReader(`{"otp_code":"1234"}`))
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer dev")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "staff-portal/1.0")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	resp, err := c.server.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.ClientDetailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "awaiting_payment", got.Status)
}

func TestHandler_ConfirmContract_WrongCode(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().
		ConfirmContract(gomock.Any(), entity.ContourManager, clientID, "0000", gomock.Any()).
		Return(entity.ClientDetail{}, entity.ErrInvalidCredential)

	resp, payload := c.do(t, http.MethodPost,
		"/api/manager/clients/"+clientID.String()+"/contract/confirm", "dev",
		api.ConfirmContractRequest{OTPCode: "0000"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, "Неверный или истёкший код подтверждения", got.Message)
}

func TestHandler_NotifyBilling_InvalidAmount(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().
		NotifyBilling(gomock.Any(), entity.ContourManager, clientID, gomock.Any()).
		Return(entity.ClientDetail{}, entity.ErrInvalidArgument)

	resp, payload := c.do(t, http.MethodPost,
		"/api/manager/clients/"+clientID.String()+"/billing/notify", "dev",
		map[string]any{"amount": -1})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, "Сумма должна быть больше нуля", got.Message)
}

func TestHandler_NotifyBilling_BadDueDate(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())

	resp, payload := c.do(t, http.MethodPost,
		"/api/manager/clients/"+clientID.String()+"/billing/notify", "dev",
		map[string]any{"amount": 2000, "due_date": "01.09.2026"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got api.ErrorResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, "Срок оплаты должен быть в формате YYYY-MM-DD", got.Message)
}

func TestHandler_ExportClients(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	c.serviceMock.EXPECT().
		ExportClients(gomock.Any(), entity.ContourManager).
		Return([]byte("xlsx-bytes"), "clients-manager-20260825.xlsx", nil)

	resp, payload := c.do(t, http.MethodGet, "/api/manager/clients/export", "dev", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	require.Equal(t, `attachment; filename="clients-manager-20260825.xlsx"`,
		resp.Header.Get("Content-Disposition"))
	require.Equal(t, "xlsx-bytes", string(payload))
}

func TestHandler_PresignPassportPhoto(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourManager)

	clientID := uuid.Must(uuid.NewV4())
	expiresAt := time.Date(2026, time.August, 25, 12, 10, 0, 0, time.UTC)

	c.serviceMock.EXPECT().
		PassportPhotoUploadURL(gomock.Any(), entity.ContourManager, clientID, "image/jpeg").
		Return(entity.PresignedUpload{
			URL:       "https://minio:9000/privet/clients/abc.jpg?X-Amz-Signature=sig",
			FileKey:   "clients/abc.jpg",
			Headers:   map[string]string{"Content-Type": "image/jpeg"},
			ExpiresAt: expiresAt,
		}, nil)

	resp, payload := c.do(t, http.MethodPost,
		"/api/manager/clients/"+clientID.String()+"/passport/photo/upload-url", "dev",
		api.UploadURLRequest{ContentType: "image/jpeg"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.PresignedUploadResponse
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Equal(t, api.PresignedUploadResponse{
		URL:       "https://minio:9000/privet/clients/abc.jpg?X-Amz-Signature=sig",
		FileKey:   "clients/abc.jpg",
		Headers:   map[string]string{"Content-Type": "image/jpeg"},
		ExpiresAt: expiresAt,
	}, got)
}

func TestHandler_PassportPhoto_MasterNotMounted(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourMaster)

	clientID := uuid.Must(uuid.NewV4())

	resp, _ := c.do(t, http.MethodPost,
		"/api/master/clients/"+clientID.String()+"/passport/photo/upload-url", "dev",
		api.UploadURLRequest{ContentType: "image/jpeg"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Uploads_MasterNotMounted(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.expectAuth(entity.ContourMaster)

	resp, _ := c.do(t, http.MethodPost, "/api/master/uploads/presigned", "dev",
		api.UploadURLRequest{ContentType: "application/pdf"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
