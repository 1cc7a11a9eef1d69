package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Producer публикует события контуров для клиентского приложения.
// Доставка best-effort: ошибки записи логируются и не прерывают
// бизнес-операцию, которая породила событие.
type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

const (
	eventSupportMessagePosted = "support.message.posted"
	eventInvoiceIssued        = "billing.invoice.issued"
	eventContractSigned       = "contract.signed"
)

type SupportMessagePostedEvent struct {
	Type     string    `json:"type"`
	Contour  string    `json:"contour"`
	UserID   uuid.UUID `json:"user_id"`
	ThreadID uuid.UUID `json:"thread_id"`
	Preview  string    `json:"preview"`
}

func (p *Producer) SendSupportMessagePosted(ctx context.Context, contour string, userID, threadID uuid.UUID, preview string) {
	p.send(ctx, userID, SupportMessagePostedEvent{
		Type:     eventSupportMessagePosted,
		Contour:  contour,
		UserID:   userID,
		ThreadID: threadID,
		Preview:  preview,
	})
}

type InvoiceIssuedEvent struct {
	Type           string          `json:"type"`
	Contour        string          `json:"contour"`
	UserID         uuid.UUID       `json:"user_id"`
	InvoiceID      uuid.UUID       `json:"invoice_id"`
	ContractNumber string          `json:"contract_number"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"due_date"`
}

func (p *Producer) SendInvoiceIssued(ctx context.Context, contour string, userID, invoiceID uuid.UUID, contractNumber string, amount decimal.Decimal, dueDate time.Time) {
	p.send(ctx, userID, InvoiceIssuedEvent{
		Type:           eventInvoiceIssued,
		Contour:        contour,
		UserID:         userID,
		InvoiceID:      invoiceID,
		ContractNumber: contractNumber,
		Amount:         amount,
		DueDate:        dueDate,
	})
}

type ContractSignedEvent struct {
	Type           string    `json:"type"`
	Contour        string    `json:"contour"`
	UserID         uuid.UUID `json:"user_id"`
	ContractNumber string    `json:"contract_number"`
}

func (p *Producer) SendContractSigned(ctx context.Context, contour string, userID uuid.UUID, contractNumber string) {
	p.send(ctx, userID, ContractSignedEvent{
		Type:           eventContractSigned,
		Contour:        contour,
		UserID:         userID,
		ContractNumber: contractNumber,
	})
}

func (p *Producer) send(ctx context.Context, key uuid.UUID, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key.String()),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
