package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Tariff — запись справочника тарифов контура.
type Tariff struct {
	ID             uuid.UUID
	Contour        Contour
	Name           string
	BaseFee        decimal.Decimal
	ExtraPerDevice decimal.Decimal
	Notes          *string
}

// ClientTariff — рассчитанный и закешированный тариф конкретного клиента.
// Пересчитывается при каждом изменении устройств или выборе тарифа.
type ClientTariff struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	TariffID      *uuid.UUID
	Tariff        *Tariff
	DeviceCount   int
	TotalExtraFee decimal.Decimal
	CalculatedAt  time.Time
}

type TariffCalculation struct {
	DeviceCount    int
	ExtraPerDevice decimal.Decimal
	TotalExtraFee  decimal.Decimal
}

// CalculateTariff — чистый расчёт доплаты: отрицательное количество
// устройств приравнивается к нулю, без справочного тарифа действует
// ставка по умолчанию.
func CalculateTariff(t *Tariff, deviceCount int, defaultRate decimal.Decimal) TariffCalculation {
	if deviceCount < 0 {
		deviceCount = 0
	}

	rate := defaultRate
	if t != nil {
		rate = t.ExtraPerDevice
	}

	return TariffCalculation{
		DeviceCount:    deviceCount,
		ExtraPerDevice: rate,
		TotalExtraFee:  rate.Mul(decimal.NewFromInt(int64(deviceCount))),
	}
}
