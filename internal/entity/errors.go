package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrUpstream          = errors.New("upstream unavailable")
)

// PrerequisiteError сообщает, какой именно шаг оформления пропущен
// (паспорт, устройства, тариф, договор).
type PrerequisiteError struct {
	Missing string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("prerequisite missing: %s", e.Missing)
}

func NewPrerequisiteError(missing string) error {
	return &PrerequisiteError{Missing: missing}
}

const (
	PrerequisitePassport = "passport"
	PrerequisiteDevices  = "devices"
	PrerequisiteTariff   = "tariff"
	PrerequisiteContract = "contract"
)
