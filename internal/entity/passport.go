package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// PassportPatch — частичное обновление паспорта: nil означает "не трогать".
type PassportPatch struct {
	LastName            *string
	FirstName           *string
	MiddleName          *string
	Series              *string
	Number              *string
	IssuedBy            *string
	IssueCode           *string
	IssueDate           *time.Time
	RegistrationAddress *string
}

func (p PassportPatch) Empty() bool {
	return p.LastName == nil && p.FirstName == nil && p.MiddleName == nil &&
		p.Series == nil && p.Number == nil && p.IssuedBy == nil &&
		p.IssueCode == nil && p.IssueDate == nil && p.RegistrationAddress == nil
}

// Passport — паспортные данные клиента, 1:1 с клиентом, обновляются на месте.
type Passport struct {
	ID                  uuid.UUID
	ClientID            uuid.UUID
	LastName            string
	FirstName           string
	MiddleName          *string
	Series              string
	Number              string
	IssuedBy            string
	IssueCode           string
	IssueDate           time.Time
	RegistrationAddress string
	PhotoFileKey        *string
	PhotoURL            *string
	UpdatedAt           time.Time
}
