package api

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	Name      *string   `json:"name,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PassportResponse struct {
	LastName            string    `json:"last_name"`
	FirstName           string    `json:"first_name"`
	MiddleName          *string   `json:"middle_name,omitempty"`
	Series              string    `json:"series"`
	Number              string    `json:"number"`
	IssuedBy            string    `json:"issued_by"`
	IssueCode           string    `json:"issue_code"`
	IssueDate           string    `json:"issue_date"`
	RegistrationAddress string    `json:"registration_address"`
	PhotoURL            *string   `json:"photo_url,omitempty"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type DevicePhotoResponse struct {
	ID        uuid.UUID `json:"id"`
	FileKey   string    `json:"file_key"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

type DeviceResponse struct {
	ID          uuid.UUID             `json:"id"`
	DeviceType  string                `json:"device_type"`
	Title       string                `json:"title"`
	Description *string               `json:"description,omitempty"`
	Specs       map[string]any        `json:"specs,omitempty"`
	ExtraFee    string                `json:"extra_fee"`
	Photos      []DevicePhotoResponse `json:"photos"`
	CreatedAt   time.Time             `json:"created_at"`
}

type ContractResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Number             *string    `json:"number,omitempty"`
	URL                *string    `json:"url,omitempty"`
	SignedAt           *time.Time `json:"signed_at,omitempty"`
	PepAgreedAt        *time.Time `json:"pep_agreed_at,omitempty"`
	PaymentConfirmedAt *time.Time `json:"payment_confirmed_at,omitempty"`
	OTPPending         bool       `json:"otp_pending"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type InvoiceResponse struct {
	ID             uuid.UUID `json:"id"`
	Amount         string    `json:"amount"`
	Description    string    `json:"description"`
	ContractNumber string    `json:"contract_number"`
	DueDate        string    `json:"due_date"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type ClientDetailResponse struct {
	ID              uuid.UUID             `json:"id"`
	Status          string                `json:"status"`
	AssignedStaffID *uuid.UUID            `json:"assigned_staff_id,omitempty"`
	SupportTicketID *uuid.UUID            `json:"support_ticket_id,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	User            UserResponse          `json:"user"`
	Passport        *PassportResponse     `json:"passport,omitempty"`
	Devices         []DeviceResponse      `json:"devices"`
	Tariff          *ClientTariffResponse `json:"tariff,omitempty"`
	Contract        *ContractResponse     `json:"contract,omitempty"`
	Invoices        []InvoiceResponse     `json:"invoices"`
}

func staffToAPI(s entity.StaffUser) StaffResponse {
	return StaffResponse{
		ID:           s.ID,
		Contour:      string(s.Contour),
		Email:        s.Email,
		Name:         s.Name,
		IsSuperAdmin: s.IsSuperAdmin,
	}
}

func clientSummaryToAPI(s entity.ClientSummary) ClientSummaryResponse {
	return ClientSummaryResponse{
		ID:              s.Client.ID,
		Status:          string(s.Client.Status),
		FullName:        s.FullName,
		Phone:           s.User.Phone,
		Email:           s.User.Email,
		DevicesCount:    s.DevicesCount,
		AssignedStaffID: s.Client.AssignedStaffID,
		CreatedAt:       s.Client.CreatedAt,
	}
}

func detailToAPI(d entity.ClientDetail) ClientDetailResponse {
	resp := ClientDetailResponse{
		ID:              d.Client.ID,
		Status:          string(d.Client.Status),
		AssignedStaffID: d.Client.AssignedStaffID,
		SupportTicketID: d.Client.SupportTicketID,
		CreatedAt:       d.Client.CreatedAt,
		User:            userToAPI(d.User),
		Devices:         make([]DeviceResponse, 0, len(d.Devices)),
		Invoices:        make([]InvoiceResponse, 0, len(d.Invoices)),
	}

	if d.Passport != nil {
		p := passportToAPI(*d.Passport)
		resp.Passport = &p
	}

	for _, device := range d.Devices {
		resp.Devices = append(resp.Devices, deviceToAPI(device))
	}

	if d.Tariff != nil {
		t := clientTariffToAPI(*d.Tariff)
		resp.Tariff = &t
	}

	if d.Contract != nil {
		c := contractToAPI(*d.Contract)
		resp.Contract = &c
	}

	for _, invoice := range d.Invoices {
		resp.Invoices = append(resp.Invoices, invoiceToAPI(invoice))
	}

	return resp
}

func userToAPI(u entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Phone:     u.Phone,
		Email:     u.Email,
		Name:      u.Name,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}

func passportToAPI(p entity.Passport) PassportResponse {
	return PassportResponse{
		LastName:            p.LastName,
		FirstName:           p.FirstName,
		MiddleName:          p.MiddleName,
		Series:              p.Series,
		Number:              p.Number,
		IssuedBy:            p.IssuedBy,
		IssueCode:           p.IssueCode,
		IssueDate:           p.IssueDate.Format("2006-01-02"),
		RegistrationAddress: p.RegistrationAddress,
		PhotoURL:            p.PhotoURL,
		UpdatedAt:           p.UpdatedAt,
	}
}

func deviceToAPI(d entity.Device) DeviceResponse {
	resp := DeviceResponse{
		ID:          d.ID,
		DeviceType:  d.DeviceType,
		Title:       d.Title,
		Description: d.Description,
		Specs:       d.Specs,
		ExtraFee:    d.ExtraFee.String(),
		Photos:      make([]DevicePhotoResponse, 0, len(d.Photos)),
		CreatedAt:   d.CreatedAt,
	}

	for _, photo := range d.Photos {
		resp.Photos = append(resp.Photos, DevicePhotoResponse{
			ID:        photo.ID,
			FileKey:   photo.FileKey,
			FileURL:   photo.FileURL,
			CreatedAt: photo.CreatedAt,
		})
	}

	return resp
}

func tariffToAPI(t entity.Tariff) TariffResponse {
	return TariffResponse{
		ID:             t.ID,
		Name:           t.Name,
		BaseFee:        t.BaseFee.String(),
		ExtraPerDevice: t.ExtraPerDevice.String(),
		Notes:          t.Notes,
	}
}

func clientTariffToAPI(ct entity.ClientTariff) ClientTariffResponse {
	resp := ClientTariffResponse{
		TariffID:      ct.TariffID,
		DeviceCount:   ct.DeviceCount,
		TotalExtraFee: ct.TotalExtraFee.String(),
		CalculatedAt:  ct.CalculatedAt,
	}

	if ct.Tariff != nil {
		resp.TariffName = &ct.Tariff.Name
	}

	return resp
}

func contractToAPI(c entity.Contract) ContractResponse {
	return ContractResponse{
		ID:                 c.ID,
		Number:             c.ContractNumber,
		URL:                c.ContractURL,
		SignedAt:           c.SignedAt,
		PepAgreedAt:        c.PepAgreedAt,
		PaymentConfirmedAt: c.PaymentConfirmedAt,
		OTPPending:         c.OTPPending(),
		UpdatedAt:          c.UpdatedAt,
	}
}

func invoiceToAPI(i entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		Amount:         i.Amount.String(),
		Description:    i.Description,
		ContractNumber: i.ContractNumber,
		DueDate:        i.DueDate.Format("2006-01-02"),
		Status:         string(i.Status),
		CreatedAt:      i.CreatedAt,
	}
}

func presignToAPI(u entity.PresignedUpload) PresignedUploadResponse {
	return PresignedUploadResponse{
		URL:       u.URL,
		FileKey:   u.FileKey,
		Headers:   u.Headers,
		ExpiresAt: u.ExpiresAt,
	}
}
