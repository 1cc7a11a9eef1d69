package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User — учётная запись конечного пользователя, общая для обоих контуров.
type User struct {
	ID        uuid.UUID
	Phone     string
	Email     *string
	Name      *string
	Address   *string
	CreatedAt time.Time
}

// UserPatch — частичное обновление контактов: nil означает "не трогать".
type UserPatch struct {
	Phone   *string
	Email   *string
	Name    *string
	Address *string
}

func (p UserPatch) Empty() bool {
	return p.Phone == nil && p.Email == nil && p.Name == nil && p.Address == nil
}

// FullName предпочитает ФИО из паспорта, затем имя пользователя.
func (u User) FullName(p *Passport) string {
	if p != nil {
		parts := make([]string, 0, 3)
		for _, v := range []string{p.LastName, p.FirstName, derefStr(p.MiddleName)} {
			if strings.TrimSpace(v) != "" {
				parts = append(parts, strings.TrimSpace(v))
			}
		}

		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}

	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		return strings.TrimSpace(*u.Name)
	}

	return ""
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
