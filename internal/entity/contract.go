package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Contract — договор клиента. Одна запись на клиента: создаётся при первой
// генерации и дальше мутируется на месте, чтобы прошлые снимки оставались
// доступными для сравнения при повторной генерации.
type Contract struct {
	ID                 uuid.UUID
	ClientID           uuid.UUID
	PassportSnapshot   map[string]any
	DeviceSnapshot     []map[string]any
	TariffSnapshot     map[string]any
	OTPCode            *string
	OTPSentAt          *time.Time
	SignedAt           *time.Time
	PepAgreedAt        *time.Time
	PaymentConfirmedAt *time.Time
	ContractURL        *string
	ContractNumber     *string
	SignatureHash      *string
	SignatureHMAC      *string
	SignedIP           *string
	SignedUserAgent    *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (c *Contract) Signed() bool {
	return c != nil && c.SignedAt != nil
}

// OTPPending — договор сгенерирован, код отправлен, подпись ещё не получена.
func (c *Contract) OTPPending() bool {
	return c != nil && c.SignedAt == nil && c.ContractNumber != nil && c.OTPSentAt != nil
}

// SignatureMeta — IP и user-agent подписанта, фиксируются при подтверждении.
type SignatureMeta struct {
	IP        string
	UserAgent string
}

// ContractSignature — полный результат подписания для записи в договор:
// отметки времени, хеш документа, HMAC-подтверждение и реквизиты подписанта.
type ContractSignature struct {
	SignedAt    time.Time
	PepAgreedAt time.Time
	Hash        string
	HMAC        string
	IP          string
	UserAgent   string
}
