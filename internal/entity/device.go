package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Device — обслуживаемое устройство клиента.
type Device struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	DeviceType  string
	Title       string
	Description *string
	Specs       map[string]any
	ExtraFee    decimal.Decimal
	Photos      []DevicePhoto
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DevicePatch — частичное обновление устройства: nil означает "не трогать".
type DevicePatch struct {
	DeviceType  *string
	Title       *string
	Description *string
	Specs       map[string]any
	ExtraFee    *decimal.Decimal
}

// Apply накладывает заполненные поля патча на устройство.
func (p DevicePatch) Apply(d *Device) {
	if p.DeviceType != nil {
		d.DeviceType = *p.DeviceType
	}

	if p.Title != nil {
		d.Title = *p.Title
	}

	if p.Description != nil {
		d.Description = p.Description
	}

	if p.Specs != nil {
		d.Specs = p.Specs
	}

	if p.ExtraFee != nil {
		d.ExtraFee = *p.ExtraFee
	}
}

// FileURL не хранится в БД, а выводится из ключа при чтении.
type DevicePhoto struct {
	ID        uuid.UUID
	DeviceID  uuid.UUID
	FileKey   string
	FileURL   string
	CreatedAt time.Time
}
