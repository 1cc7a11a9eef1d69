package entity

import (
	"github.com/shopspring/decimal"
)

// Contour различает два штатных портала, работающих над общей схемой.
type Contour string

const (
	ContourManager Contour = "manager"
	ContourMaster  Contour = "master"
)

// ContourConfig — вся разница между контурами. Машина состояний договора
// одна, различия выражены данными, а не ветвлениями.
type ContourConfig struct {
	Contour         Contour
	OTPDigits       int
	OTPAtGeneration bool
	RequireDevices  bool
	DefaultRate     decimal.Decimal
	SigningSubject  string
	ThreadTitle     string
	PassportPhoto   bool
}

var (
	ManagerContourConfig = ContourConfig{
		Contour:         ContourManager,
		OTPDigits:       4,
		OTPAtGeneration: false,
		RequireDevices:  false,
		DefaultRate:     decimal.NewFromInt(1000),
		SigningSubject:  "Подписание договора",
		ThreadTitle:     "Оформление договора",
		PassportPhoto:   true,
	}

	MasterContourConfig = ContourConfig{
		Contour:         ContourMaster,
		OTPDigits:       6,
		OTPAtGeneration: true,
		RequireDevices:  true,
		DefaultRate:     decimal.NewFromInt(1000),
		SigningSubject:  "Подтверждение договора",
		ThreadTitle:     "Оформление договора",
		PassportPhoto:   false,
	}
)

// ConfigForContour возвращает конфигурацию контура;
// неизвестный контур трактуется как manager.
func ConfigForContour(c Contour) ContourConfig {
	if c == ContourMaster {
		return MasterContourConfig
	}

	return ManagerContourConfig
}
