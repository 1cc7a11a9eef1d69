package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

// @title Privet Back Office API
// @version 1.0
// @description Бэк-офис обслуживания клиентов: менеджерский и мастерский контуры над общей базой.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	Login(ctx context.Context, contour entity.Contour, email, password string) (entity.StaffToken, error)
	Me(ctx context.Context) (entity.StaffUser, error)

	Clients(ctx context.Context, contour entity.Contour, tab entity.ClientTab) ([]entity.ClientSummary, error)
	ClientDetail(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ClientDetail, error)
	UpdateProfile(ctx context.Context, contour entity.Contour, clientID uuid.UUID, patch entity.UserPatch) (entity.ClientDetail, error)
	ExportClients(ctx context.Context, contour entity.Contour) ([]byte, string, error)

	UpsertPassport(ctx context.Context, contour entity.Contour, clientID uuid.UUID, p entity.Passport) (entity.ClientDetail, error)
	PatchPassport(ctx context.Context, contour entity.Contour, clientID uuid.UUID, patch entity.PassportPatch) (entity.ClientDetail, error)
	PassportPhotoUploadURL(ctx context.Context, contour entity.Contour, clientID uuid.UUID, contentType string) (entity.PresignedUpload, error)
	AttachPassportPhoto(ctx context.Context, contour entity.Contour, clientID uuid.UUID, fileKey string) (entity.ClientDetail, error)
	DetachPassportPhoto(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ClientDetail, error)

	CreateDevice(ctx context.Context, contour entity.Contour, clientID uuid.UUID, d entity.Device) (entity.Device, error)
	UpdateDevice(ctx context.Context, contour entity.Contour, clientID, deviceID uuid.UUID, patch entity.DevicePatch) (entity.Device, error)
	DeleteDevice(ctx context.Context, contour entity.Contour, clientID, deviceID uuid.UUID) error
	DevicePhotoUploadURL(ctx context.Context, contour entity.Contour, clientID, deviceID uuid.UUID, contentType string) (entity.PresignedUpload, error)
	AddDevicePhoto(ctx context.Context, contour entity.Contour, clientID, deviceID uuid.UUID, fileKey string) (entity.ClientDetail, error)
	DeleteDevicePhoto(ctx context.Context, contour entity.Contour, clientID, deviceID, photoID uuid.UUID) (entity.ClientDetail, error)

	TariffCatalog(ctx context.Context, contour entity.Contour) ([]entity.Tariff, error)
	CalculateTariff(ctx context.Context, contour entity.Contour, clientID uuid.UUID, tariffID *uuid.UUID, deviceCount int) (entity.TariffCalculation, error)
	ApplyTariff(ctx context.Context, contour entity.Contour, clientID uuid.UUID, tariffID *uuid.UUID, deviceCount int) (entity.ClientTariff, error)

	GenerateContract(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ContractSummary, error)
	RequestContractOTP(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (string, error)
	ConfirmContract(ctx context.Context, contour entity.Contour, clientID uuid.UUID, otp string, meta entity.SignatureMeta) (entity.ClientDetail, error)
	ConfirmPayment(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ClientDetail, error)

	NotifyBilling(ctx context.Context, contour entity.Contour, clientID uuid.UUID, notice entity.BillingNotice) (entity.ClientDetail, error)

	UploadURL(ctx context.Context, contentType string) (entity.PresignedUpload, error)
	DirectUpload(ctx context.Context, filename, contentType string, data []byte) (entity.UploadedFile, error)
}

// Handler обслуживает один контур: весь набор маршрутов одинаковый,
// различается только контур, с которым ходят в сервисный слой.
type Handler struct {
	s       Service
	contour entity.Contour
}

func NewHandler(s Service, contour entity.Contour) *Handler {
	return &Handler{
		s:       s,
		contour: contour,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Login authenticates a staff user of the contour
// @Summary Вход сотрудника
// @Description Проверяет логин и пароль сотрудника контура и выдаёт bearer-токен
// @Tags auth
// @Accept json
// @Produce json
// @Param LoginRequest body LoginRequest true "Учётные данные"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse "Неверный логин или пароль"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервиса"
// @Router /manager/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	token, err := h.s.Login(ctx, h.contour, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredential) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Неверный логин или пароль")
			return
		}

		sendServiceErr(ctx, w, err)

		return
	}

	SendJSON(ctx, w, http.StatusOK, LoginResponse{
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
	})
}

type StaffResponse struct {
	ID           uuid.UUID `json:"id"`
	Contour      string    `json:"contour"`
	Email        string    `json:"email"`
	Name         *string   `json:"name,omitempty"`
	IsSuperAdmin bool      `json:"is_super_admin"`
}

// Me returns the authenticated staff user
// @Summary Текущий сотрудник
// @Description Возвращает профиль сотрудника по токену
// @Tags auth
// @Produce json
// @Success 200 {object} StaffResponse
// @Failure 401 {object} ErrorResponse "Требуется аутентификация"
// @Router /manager/auth/me [get]
// @Security BearerAuth
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staff, err := h.s.Me(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, staffToAPI(staff))
}

type ClientSummaryResponse struct {
	ID              uuid.UUID  `json:"id"`
	Status          string     `json:"status"`
	FullName        string     `json:"full_name"`
	Phone           string     `json:"phone"`
	Email           *string    `json:"email,omitempty"`
	DevicesCount    int        `json:"devices_count"`
	AssignedStaffID *uuid.UUID `json:"assigned_staff_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ClientsResponse struct {
	Clients []ClientSummaryResponse `json:"clients"`
}

// Clients lists contour clients by tab
// @Summary Список клиентов
// @Description Возвращает клиентов контура для выбранной вкладки: new, in_work, mine, processed
// @Tags clients
// @Produce json
// @Param tab query string false "Вкладка списка (по умолчанию new)"
// @Success 200 {object} ClientsResponse
// @Failure 401 {object} ErrorResponse "Требуется аутентификация"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервиса"
// @Router /manager/clients [get]
// @Security BearerAuth
func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tab := entity.ClientTab(r.URL.Query().Get("tab"))
	if tab == "" {
		tab = entity.ClientTabNew
	}

	summaries, err := h.s.Clients(ctx, h.contour, tab)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := ClientsResponse{Clients: make([]ClientSummaryResponse, 0, len(summaries))}
	for _, s := range summaries {
		resp.Clients = append(resp.Clients, clientSummaryToAPI(s))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// ClientDetail returns the full client card
// @Summary Карточка клиента
// @Description Возвращает клиента со всеми разделами: контакты, паспорт, устройства, тариф, договор, счета. Незакреплённый клиент закрепляется за сотрудником
// @Tags clients
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Success 200 {object} ClientDetailResponse
// @Failure 400 {object} ErrorResponse "Невалидный идентификатор"
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Router /manager/clients/{id} [get]
// @Security BearerAuth
func (h *Handler) ClientDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	detail, err := h.s.ClientDetail(ctx, h.contour, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

type ProfilePatchRequest struct {
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// UpdateProfile patches user contact fields
// @Summary Обновление контактов клиента
// @Description Частично обновляет контактные данные. Клиент в статусе new переходит в in_verification
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param ProfilePatchRequest body ProfilePatchRequest true "Изменяемые поля"
// @Success 200 {object} ClientDetailResponse
// @Failure 400 {object} ErrorResponse "Невалидные данные"
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Router /manager/clients/{id}/profile [patch]
// @Security BearerAuth
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	var req ProfilePatchRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	detail, err := h.s.UpdateProfile(ctx, h.contour, clientID, entity.UserPatch{
		Phone:   req.Phone,
		Email:   req.Email,
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

// ExportClients streams an XLSX workbook with the staff user's clients
// @Summary Экспорт клиентов в XLSX
// @Description Выгружает клиентов текущего сотрудника одной книгой
// @Tags clients
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse "Требуется аутентификация"
// @Router /manager/clients/export [get]
// @Security BearerAuth
func (h *Handler) ExportClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, filename, err := h.s.ExportClients(ctx, h.contour)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(data)
}

type PassportUpsertRequest struct {
	LastName            string  `json:"last_name"`
	FirstName           string  `json:"first_name"`
	MiddleName          *string `json:"middle_name"`
	Series              string  `json:"series"`
	Number              string  `json:"number"`
	IssuedBy            string  `json:"issued_by"`
	IssueCode           string  `json:"issue_code"`
	IssueDate           string  `json:"issue_date"`
	RegistrationAddress string  `json:"registration_address"`
}

// UpsertPassport creates or fully replaces client passport data
// @Summary Паспорт клиента (полное сохранение)
// @Description Создаёт или заменяет паспортные данные. Фото паспорта при замене сохраняется
// @Tags passport
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param PassportUpsertRequest body PassportUpsertRequest true "Паспортные данные"
// @Success 200 {object} ClientDetailResponse
// @Failure 400 {object} ErrorResponse "Невалидные данные"
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Router /manager/clients/{id}/passport [put]
// @Security BearerAuth
func (h *Handler) UpsertPassport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	var req PassportUpsertRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Дата выдачи должна быть в формате YYYY-MM-DD")
		return
	}

	detail, err := h.s.UpsertPassport(ctx, h.contour, clientID, entity.Passport{
		ClientID:            clientID,
		LastName:            req.LastName,
		FirstName:           req.FirstName,
		MiddleName:          req.MiddleName,
		Series:              req.Series,
		Number:              req.Number,
		IssuedBy:            req.IssuedBy,
		IssueCode:           req.IssueCode,
		IssueDate:           issueDate,
		RegistrationAddress: req.RegistrationAddress,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

type PassportPatchRequest struct {
	LastName            *string `json:"last_name"`
	FirstName           *string `json:"first_name"`
	MiddleName          *string `json:"middle_name"`
	Series              *string `json:"series"`
	Number              *string `json:"number"`
	IssuedBy            *string `json:"issued_by"`
	IssueCode           *string `json:"issue_code"`
	IssueDate           *string `json:"issue_date"`
	RegistrationAddress *string `json:"registration_address"`
}

// PatchPassport partially updates client passport data
// @Summary Паспорт клиента (частичное обновление)
// @Description Обновляет только переданные поля. Требует уже сохранённого паспорта
// @Tags passport
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param PassportPatchRequest body PassportPatchRequest true "Изменяемые поля"
// @Success 200 {object} ClientDetailResponse
// @Failure 400 {object} ErrorResponse "Паспорт ещё не заполнен"
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Router /manager/clients/{id}/passport [patch]
// @Security BearerAuth
func (h *Handler) PatchPassport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	var req PassportPatchRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	patch := entity.PassportPatch{
		LastName:            req.LastName,
		FirstName:           req.FirstName,
		MiddleName:          req.MiddleName,
		Series:              req.Series,
		Number:              req.Number,
		IssuedBy:            req.IssuedBy,
		IssueCode:           req.IssueCode,
		RegistrationAddress: req.RegistrationAddress,
	}

	if req.IssueDate != nil {
		issueDate, err := time.Parse("2006-01-02", *req.IssueDate)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Дата выдачи должна быть в формате YYYY-MM-DD")
			return
		}

		patch.IssueDate = &issueDate
	}

	detail, err := h.s.PatchPassport(ctx, h.contour, clientID, patch)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

type UploadURLRequest struct {
	ContentType string `json:"content_type"`
}

type PresignedUploadResponse struct {
	URL       string            `json:"url"`
	FileKey   string            `json:"file_key"`
	Headers   map[string]string `json:"headers"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// PassportPhotoUploadURL issues a presigned upload link for a passport photo
// @Summary Ссылка на загрузку фото паспорта
// @Tags passport
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param UploadURLRequest body UploadURLRequest true "MIME-тип загружаемого файла"
// @Success 200 {object} PresignedUploadResponse
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Failure 502 {object} ErrorResponse "Хранилище недоступно"
// @Router /manager/clients/{id}/passport/photo/upload-url [post]
// @Security BearerAuth
func (h *Handler) PassportPhotoUploadURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	var req UploadURLRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	upload, err := h.s.PassportPhotoUploadURL(ctx, h.contour, clientID, req.ContentType)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, presignToAPI(upload))
}

type FileKeyRequest struct {
	FileKey string `json:"file_key"`
}

// AttachPassportPhoto links an uploaded photo to the passport
// @Summary Привязка фото паспорта
// @Tags passport
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param FileKeyRequest body FileKeyRequest true "Ключ загруженного файла"
// @Success 200 {object} ClientDetailResponse
// @Failure 400 {object} ErrorResponse "Паспорт ещё не заполнен"
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Router /manager/clients/{id}/passport/photo [post]
// @Security BearerAuth
func (h *Handler) AttachPassportPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	var req FileKeyRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.FileKey == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Не передан ключ файла")
		return
	}

	detail, err := h.s.AttachPassportPhoto(ctx, h.contour, clientID, req.FileKey)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

// DetachPassportPhoto removes the passport photo reference
// @Summary Удаление фото паспорта
// @Description Отвязывает фото от паспорта. Файл в хранилище при этом не удаляется мгновенно
// @Tags passport
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Success 200 {object} ClientDetailResponse
// @Failure 404 {object} ErrorResponse "Фото не найдено"
// @Router /manager/clients/{id}/passport/photo [delete]
// @Security BearerAuth
func (h *Handler) DetachPassportPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	detail, err := h.s.DetachPassportPhoto(ctx, h.contour, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

type DeviceCreateRequest struct {
	DeviceType  string          `json:"device_type"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Specs       map[string]any  `json:"specs"`
	ExtraFee    decimal.Decimal `json:"extra_fee"`
}

// CreateDevice registers a client device
// @Summary Добавление устройства
// @Tags devices
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param DeviceCreateRequest body DeviceCreateRequest true "Устройство"
// @Success 201 {object} DeviceResponse
// @Failure 400 {object} ErrorResponse "Невалидные данные"
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Router /manager/clients/{id}/devices [post]
// @Security BearerAuth
func (h *Handler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	var req DeviceCreateRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	device, err := h.s.CreateDevice(ctx, h.contour, clientID, entity.Device{
		ClientID:    clientID,
		DeviceType:  req.DeviceType,
		Title:       req.Title,
		Description: req.Description,
		Specs:       req.Specs,
		ExtraFee:    req.ExtraFee,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, deviceToAPI(device))
}

type DevicePatchRequest struct {
	DeviceType  *string          `json:"device_type"`
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Specs       map[string]any   `json:"specs"`
	ExtraFee    *decimal.Decimal `json:"extra_fee"`
}

// UpdateDevice patches a device
// @Summary Изменение устройства
// @Tags devices
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param deviceID path string true "Идентификатор устройства"
// @Param DevicePatchRequest body DevicePatchRequest true "Изменяемые поля"
// @Success 200 {object} DeviceResponse
// @Failure 400 {object} ErrorResponse "Невалидные данные"
// @Failure 404 {object} ErrorResponse "Устройство не найдено"
// @Router /manager/clients/{id}/devices/{deviceID} [patch]
// @Security BearerAuth
func (h *Handler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	deviceID, err := uuidParam(r, "deviceID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор устройства")
		return
	}

	var req DevicePatchRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	device, err := h.s.UpdateDevice(ctx, h.contour, clientID, deviceID, entity.DevicePatch{
		DeviceType:  req.DeviceType,
		Title:       req.Title,
		Description: req.Description,
		Specs:       req.Specs,
		ExtraFee:    req.ExtraFee,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, deviceToAPI(device))
}

type StatusResponse struct {
	Status string `json:"status"`
}

// DeleteDevice removes a device with its photos
// @Summary Удаление устройства
// @Tags devices
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param deviceID path string true "Идентификатор устройства"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse "Устройство не найдено"
// @Router /manager/clients/{id}/devices/{deviceID} [delete]
// @Security BearerAuth
func (h *Handler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	deviceID, err := uuidParam(r, "deviceID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор устройства")
		return
	}

	err = h.s.DeleteDevice(ctx, h.contour, clientID, deviceID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// DevicePhotoUploadURL issues a presigned upload link for a device photo
// @Summary Ссылка на загрузку фото устройства
// @Tags devices
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param deviceID path string true "Идентификатор устройства"
// @Param UploadURLRequest body UploadURLRequest true "MIME-тип загружаемого файла"
// @Success 200 {object} PresignedUploadResponse
// @Failure 404 {object} ErrorResponse "Устройство не найдено"
// @Failure 502 {object} ErrorResponse "Хранилище недоступно"
// @Router /manager/clients/{id}/devices/{deviceID}/photos/upload-url [post]
// @Security BearerAuth
func (h *Handler) DevicePhotoUploadURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	deviceID, err := uuidParam(r, "deviceID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор устройства")
		return
	}

	var req UploadURLRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	upload, err := h.s.DevicePhotoUploadURL(ctx, h.contour, clientID, deviceID, req.ContentType)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, presignToAPI(upload))
}

// AddDevicePhoto links an uploaded photo to the device
// @Summary Привязка фото устройства
// @Tags devices
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param deviceID path string true "Идентификатор устройства"
// @Param FileKeyRequest body FileKeyRequest true "Ключ загруженного файла"
// @Success 200 {object} ClientDetailResponse
// @Failure 404 {object} ErrorResponse "Устройство не найдено"
// @Router /manager/clients/{id}/devices/{deviceID}/photos [post]
// @Security BearerAuth
func (h *Handler) AddDevicePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	deviceID, err := uuidParam(r, "deviceID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор устройства")
		return
	}

	var req FileKeyRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.FileKey == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Не передан ключ файла")
		return
	}

	detail, err := h.s.AddDevicePhoto(ctx, h.contour, clientID, deviceID, req.FileKey)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

// DeleteDevicePhoto removes a device photo record
// @Summary Удаление фото устройства
// @Tags devices
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param deviceID path string true "Идентификатор устройства"
// @Param photoID path string true "Идентификатор фото"
// @Success 200 {object} ClientDetailResponse
// @Failure 404 {object} ErrorResponse "Фото не найдено"
// @Router /manager/clients/{id}/devices/{deviceID}/photos/{photoID} [delete]
// @Security BearerAuth
func (h *Handler) DeleteDevicePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	deviceID, err := uuidParam(r, "deviceID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор устройства")
		return
	}

	photoID, err := uuidParam(r, "photoID")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор фото")
		return
	}

	detail, err := h.s.DeleteDevicePhoto(ctx, h.contour, clientID, deviceID, photoID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

type TariffResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BaseFee        string    `json:"base_fee"`
	ExtraPerDevice string    `json:"extra_per_device"`
	Notes          *string   `json:"notes,omitempty"`
}

type TariffsResponse struct {
	Tariffs []TariffResponse `json:"tariffs"`
}

// Tariffs returns the contour tariff catalog
// @Summary Справочник тарифов
// @Tags tariffs
// @Produce json
// @Success 200 {object} TariffsResponse
// @Failure 401 {object} ErrorResponse "Требуется аутентификация"
// @Router /manager/tariffs [get]
// @Security BearerAuth
func (h *Handler) Tariffs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tariffs, err := h.s.TariffCatalog(ctx, h.contour)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	resp := TariffsResponse{Tariffs: make([]TariffResponse, 0, len(tariffs))}
	for _, t := range tariffs {
		resp.Tariffs = append(resp.Tariffs, tariffToAPI(t))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type TariffCalculateRequest struct {
	TariffID    *uuid.UUID `json:"tariff_id"`
	DeviceCount int        `json:"device_count"`
}

type TariffCalculationResponse struct {
	DeviceCount    int    `json:"device_count"`
	ExtraPerDevice string `json:"extra_per_device"`
	TotalExtraFee  string `json:"total_extra_fee"`
}

// CalculateTariff calculates the device surcharge without persisting
// @Summary Расчёт тарифа
// @Description Чистый расчёт доплаты за устройства, ничего не сохраняет
// @Tags tariffs
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param TariffCalculateRequest body TariffCalculateRequest true "Параметры расчёта"
// @Success 200 {object} TariffCalculationResponse
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Router /manager/clients/{id}/tariff/calculate [post]
// @Security BearerAuth
func (h *Handler) CalculateTariff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	var req TariffCalculateRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	calc, err := h.s.CalculateTariff(ctx, h.contour, clientID, req.TariffID, req.DeviceCount)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, TariffCalculationResponse{
		DeviceCount:    calc.DeviceCount,
		ExtraPerDevice: calc.ExtraPerDevice.String(),
		TotalExtraFee:  calc.TotalExtraFee.String(),
	})
}

type ClientTariffResponse struct {
	TariffID      *uuid.UUID `json:"tariff_id,omitempty"`
	TariffName    *string    `json:"tariff_name,omitempty"`
	DeviceCount   int        `json:"device_count"`
	TotalExtraFee string     `json:"total_extra_fee"`
	CalculatedAt  time.Time  `json:"calculated_at"`
}

// ApplyTariff persists the calculated tariff for the client
// @Summary Применение тарифа
// @Tags tariffs
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param TariffCalculateRequest body TariffCalculateRequest true "Параметры расчёта"
// @Success 200 {object} ClientTariffResponse
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Router /manager/clients/{id}/tariff/apply [post]
// @Security BearerAuth
func (h *Handler) ApplyTariff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	var req TariffCalculateRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	ct, err := h.s.ApplyTariff(ctx, h.contour, clientID, req.TariffID, req.DeviceCount)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, clientTariffToAPI(ct))
}

type GenerateContractResponse struct {
	ContractID     uuid.UUID `json:"contract_id"`
	ContractNumber string    `json:"contract_number"`
	ContractURL    string    `json:"contract_url"`
	OTPCode        string    `json:"otp_code,omitempty"`
}

// GenerateContract renders and stores the contract document
// @Summary Генерация договора
// @Description Собирает снимки данных клиента, рендерит PDF и сохраняет договор. Повторный вызов без изменений возвращает существующий документ
// @Tags contract
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Success 200 {object} GenerateContractResponse
// @Failure 400 {object} ErrorResponse "Не выполнены условия оформления"
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Failure 502 {object} ErrorResponse "Хранилище недоступно"
// @Router /manager/clients/{id}/contract/generate [post]
// @Security BearerAuth
func (h *Handler) GenerateContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	summary, err := h.s.GenerateContract(ctx, h.contour, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, GenerateContractResponse{
		ContractID:     summary.ContractID,
		ContractNumber: summary.ContractNumber,
		ContractURL:    summary.ContractURL,
		OTPCode:        summary.OTPCode,
	})
}

// RequestContractOTP sends a signing code to the client
// @Summary Запрос кода подписания
// @Description Отправляет клиенту код подтверждения в тред поддержки. Повторный запрос в течение минуты переиспользует код
// @Tags contract
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse "Договор не найден"
// @Router /manager/clients/{id}/contract/request-otp [post]
// @Security BearerAuth
func (h *Handler) RequestContractOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	// Код уходит клиенту через тред поддержки и сотруднику не возвращается:
	// подписание должно подтверждаться человеком на той стороне.
	_, err = h.s.RequestContractOTP(ctx, h.contour, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, StatusResponse{Status: "sent"})
}

type ConfirmContractRequest struct {
	OTPCode string `json:"otp_code"`
}

// ConfirmContract signs the contract with the client's OTP
// @Summary Подписание договора
// @Description Сверяет код подтверждения, фиксирует подпись и при необходимости выставляет счёт
// @Tags contract
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param ConfirmContractRequest body ConfirmContractRequest true "Код подтверждения"
// @Success 200 {object} ClientDetailResponse
// @Failure 400 {object} ErrorResponse "Неверный или истёкший код подтверждения"
// @Failure 404 {object} ErrorResponse "Договор не найден"
// @Router /manager/clients/{id}/contract/confirm [post]
// @Security BearerAuth
func (h *Handler) ConfirmContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	var req ConfirmContractRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	meta := entity.SignatureMeta{
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	}

	detail, err := h.s.ConfirmContract(ctx, h.contour, clientID, req.OTPCode, meta)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredential) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Неверный или истёкший код подтверждения")
			return
		}

		sendServiceErr(ctx, w, err)

		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

// ConfirmPayment records the staff payment attestation
// @Summary Подтверждение оплаты
// @Description Ручная отметка сотрудника об оплате: клиент переходит в processed
// @Tags contract
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Success 200 {object} ClientDetailResponse
// @Failure 404 {object} ErrorResponse "Договор не найден"
// @Router /manager/clients/{id}/payment/confirm [post]
// @Security BearerAuth
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	detail, err := h.s.ConfirmPayment(ctx, h.contour, clientID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

type BillingNotifyRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	ContractNumber string          `json:"contract_number"`
	DueDate        *string         `json:"due_date"`
}

// NotifyBilling issues a manual invoice and notifies the client
// @Summary Ручное выставление счёта
// @Description Создаёт счёт на указанную сумму и отправляет уведомление в тред поддержки
// @Tags billing
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор клиента"
// @Param BillingNotifyRequest body BillingNotifyRequest true "Параметры счёта"
// @Success 200 {object} ClientDetailResponse
// @Failure 400 {object} ErrorResponse "Сумма должна быть больше нуля"
// @Failure 404 {object} ErrorResponse "Клиент не найден"
// @Router /manager/clients/{id}/billing/notify [post]
// @Security BearerAuth
func (h *Handler) NotifyBilling(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuidParam(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный идентификатор клиента")
		return
	}

	var req BillingNotifyRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	notice := entity.BillingNotice{
		Amount:         req.Amount,
		Description:    req.Description,
		ContractNumber: req.ContractNumber,
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Срок оплаты должен быть в формате YYYY-MM-DD")
			return
		}

		notice.DueDate = &dueDate
	}

	detail, err := h.s.NotifyBilling(ctx, h.contour, clientID, notice)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Сумма должна быть больше нуля")
			return
		}

		sendServiceErr(ctx, w, err)

		return
	}

	SendJSON(ctx, w, http.StatusOK, detailToAPI(detail))
}

// UploadURL issues a presigned link for an arbitrary staff upload
// @Summary Ссылка на прямую загрузку файла
// @Tags uploads
// @Accept json
// @Produce json
// @Param UploadURLRequest body UploadURLRequest true "MIME-тип загружаемого файла"
// @Success 200 {object} PresignedUploadResponse
// @Failure 502 {object} ErrorResponse "Хранилище недоступно"
// @Router /manager/uploads/presigned [post]
// @Security BearerAuth
func (h *Handler) UploadURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UploadURLRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	upload, err := h.s.UploadURL(ctx, req.ContentType)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, presignToAPI(upload))
}

type UploadedFileResponse struct {
	FileKey string `json:"file_key"`
	URL     string `json:"url"`
}

// DirectUpload accepts a file on the backend and stores it itself
// @Summary Загрузка файла через бекенд
// @Description Запасной путь для окружений, где прямая загрузка в хранилище упирается в CORS
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл"
// @Success 200 {object} UploadedFileResponse
// @Failure 400 {object} ErrorResponse "Файл не передан"
// @Failure 502 {object} ErrorResponse "Хранилище недоступно"
// @Router /manager/uploads/direct [post]
// @Security BearerAuth
func (h *Handler) DirectUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, header, err := r.FormFile("file")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Файл не передан")
		return
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Не удалось прочитать файл")
		return
	}

	uploaded, err := h.s.DirectUpload(ctx, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, UploadedFileResponse{
		FileKey: uploaded.FileKey,
		URL:     uploaded.URL,
	})
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "Сервис работает!"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Сервис работает!\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Сервис не работает!")
		return
	}
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}

	return uuid.FromString(raw)
}

// clientIP предпочитает X-Forwarded-For: сервис живёт за обратным прокси.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}

		return strings.TrimSpace(xff)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
