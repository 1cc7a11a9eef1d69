package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type SupportSender string

const (
	SupportSenderManager SupportSender = "manager"
	SupportSenderClient  SupportSender = "client"
	SupportSenderSystem  SupportSender = "system"
)

// SupportThread — переписка по клиенту, видимая сотруднику и клиенту.
type SupportThread struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Title     string
	CreatedAt time.Time
}

type SupportMessage struct {
	ID        uuid.UUID
	ThreadID  uuid.UUID
	Sender    SupportSender
	Content   string
	Payload   map[string]any
	CreatedAt time.Time
}
