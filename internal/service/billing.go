package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

// ensureInvoice — идемпотентный шлюз выставления счёта: уже существующий
// неоплаченный счёт по этому договору переиспользуется, нулевая и
// отрицательная сумма счёт не создаёт.
func (s *Service) ensureInvoice(ctx context.Context, client entity.Client, contractNumber string, amount decimal.Decimal, description string) (*entity.Invoice, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil
	}

	existing, err := s.repo.PendingInvoice(ctx, client.Contour, client.UserID, contractNumber)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, fmt.Errorf("find pending invoice: %w", err)
	}

	if description == "" {
		description = entity.DefaultInvoiceDescription(contractNumber)
	}

	now := time.Now().UTC()

	inv, err := s.repo.CreateInvoice(ctx, entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		Contour:        client.Contour,
		ClientUserID:   client.UserID,
		Amount:         amount,
		Description:    description,
		ContractNumber: contractNumber,
		DueDate:        invoiceDueDate(now, s.cfg.Contract.InvoiceDueDays),
		Status:         entity.InvoiceStatusPending,
		CreatedAt:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	return &inv, nil
}

// NotifyBilling выставляет счёт вручную и уведомляет клиента. В отличие от
// автоматического биллинга при подписании, счёт создаётся безусловно, а
// статус клиента не меняется.
func (s *Service) NotifyBilling(ctx context.Context, contour entity.Contour, clientID uuid.UUID, notice entity.BillingNotice) (entity.ClientDetail, error) {
	if notice.Amount.LessThanOrEqual(decimal.Zero) {
		return entity.ClientDetail{}, fmt.Errorf("%w: amount must be positive", entity.ErrInvalidArgument)
	}

	cfg := entity.ConfigForContour(contour)

	var (
		detail    entity.ClientDetail
		invoice   entity.Invoice
		recipient entity.Client
	)

	err := s.repo.InClientTx(ctx, clientID, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		contractNumber := notice.ContractNumber
		if contractNumber == "" {
			contract, err := s.repo.ContractByClientID(ctx, client.ID)
			if err != nil {
				if errors.Is(err, entity.ErrNotFound) {
					return entity.NewPrerequisiteError(entity.PrerequisiteContract)
				}
				return fmt.Errorf("get contract: %w", err)
			}
			contractNumber = orEmpty(contract.ContractNumber)
		}

		description := notice.Description
		if description == "" {
			description = entity.DefaultInvoiceDescription(contractNumber)
		}

		now := time.Now().UTC()

		dueDate := invoiceDueDate(now, s.cfg.Contract.InvoiceDueDays)
		if notice.DueDate != nil {
			dueDate = *notice.DueDate
		}

		invoice, err = s.repo.CreateInvoice(ctx, entity.Invoice{
			ID:             uuid.Must(uuid.NewV4()),
			Contour:        client.Contour,
			ClientUserID:   client.UserID,
			Amount:         notice.Amount,
			Description:    description,
			ContractNumber: contractNumber,
			DueDate:        dueDate,
			Status:         entity.InvoiceStatusPending,
			CreatedAt:      now,
		})
		if err != nil {
			return fmt.Errorf("create invoice: %w", err)
		}

		recipient = client

		detail, err = s.detailTx(ctx, contour, clientID)
		return err
	})
	if err != nil {
		return entity.ClientDetail{}, err
	}

	slog.InfoContext(ctx, fmt.Sprintf("Выставлен счёт %s клиенту %s на %s", invoice.ContractNumber, clientID, invoice.Amount.StringFixed(2)))

	s.notifyInvoice(ctx, cfg, recipient, invoice)

	return detail, nil
}

// Срок оплаты считается в календарных днях от текущей даты UTC.
func invoiceDueDate(now time.Time, days int) time.Time {
	d := now.UTC().AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
