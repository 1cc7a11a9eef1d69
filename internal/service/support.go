package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

// ensureThread возвращает тред поддержки клиента, создавая его при первом
// обращении. Существующий тред переиспользуется независимо от темы.
func (s *Service) ensureThread(ctx context.Context, cfg entity.ContourConfig, client entity.Client) (entity.SupportThread, error) {
	thread, err := s.repo.SupportThreadByClientID(ctx, client.ID)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			return entity.SupportThread{}, fmt.Errorf("get support thread: %w", err)
		}

		title := cfg.SigningSubject
		if title == "" {
			title = cfg.ThreadTitle
		}

		thread, err = s.repo.CreateSupportThread(ctx, entity.SupportThread{
			ID:        uuid.Must(uuid.NewV4()),
			ClientID:  client.ID,
			Title:     title,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return entity.SupportThread{}, fmt.Errorf("create support thread: %w", err)
		}
	}

	// Ссылка на тикет делает тред видимым клиентскому приложению.
	if client.SupportTicketID == nil {
		if err := s.repo.SetSupportTicket(ctx, client.ID, thread.ID); err != nil {
			return entity.SupportThread{}, fmt.Errorf("set support ticket: %w", err)
		}
	}

	return thread, nil
}

// notifySupport кладёт системное сообщение в тред клиента и публикует
// событие в Kafka. Вызывается после коммита основной транзакции, поэтому
// сбой уведомления логируется и не откатывает бизнес-операцию.
func (s *Service) notifySupport(ctx context.Context, cfg entity.ContourConfig, client entity.Client, text string, payload map[string]any) {
	thread, err := s.ensureThread(ctx, cfg, client)
	if err != nil {
		slog.ErrorContext(ctx, "уведомление в поддержку не доставлено",
			"client_id", client.ID, "error", err)
		return
	}

	_, err = s.repo.AddSupportMessage(ctx, entity.SupportMessage{
		ID:        uuid.Must(uuid.NewV4()),
		ThreadID:  thread.ID,
		Sender:    entity.SupportSenderSystem,
		Content:   text,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "сообщение поддержки не сохранено",
			"client_id", client.ID, "error", err)
		return
	}

	s.producer.SendSupportMessagePosted(ctx, string(cfg.Contour), client.UserID, thread.ID, text)
}

// notifyInvoice сообщает клиенту о выставленном счёте.
func (s *Service) notifyInvoice(ctx context.Context, cfg entity.ContourConfig, client entity.Client, inv entity.Invoice) {
	text := fmt.Sprintf("Выставлен счёт по договору %s: %s ₽. Оплатите до %s",
		inv.ContractNumber, inv.Amount.StringFixed(2), inv.DueDate.Format("02.01.2006"))

	s.notifySupport(ctx, cfg, client, text, map[string]any{
		"invoice_id":      inv.ID.String(),
		"amount":          inv.Amount.String(),
		"description":     inv.Description,
		"contract_number": inv.ContractNumber,
		"due_date":        inv.DueDate.Format("2006-01-02"),
	})

	s.producer.SendInvoiceIssued(ctx, string(cfg.Contour), client.UserID, inv.ID, inv.ContractNumber, inv.Amount, inv.DueDate)
}
