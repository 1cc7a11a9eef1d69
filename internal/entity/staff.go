package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

// StaffUser — учётная запись сотрудника портала (менеджера или мастера).
type StaffUser struct {
	ID           uuid.UUID
	Contour      Contour
	Email        string
	PasswordHash string
	Name         *string
	IsActive     bool
	IsSuperAdmin bool
	CreatedAt    time.Time
}

// StaffToken — выданный сотруднику access-токен.
type StaffToken struct {
	AccessToken string
	ExpiresIn   int64
}

// StaffJwtClaims — полезная нагрузка access-токена. Контур входит в claims,
// чтобы токен менеджера нельзя было предъявить в контуре мастера.
type StaffJwtClaims struct {
	StaffID uuid.UUID `json:"staff_id"`
	Contour Contour   `json:"contour"`
	jwt.RegisteredClaims
}
