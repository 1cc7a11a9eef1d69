package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

const selectInvoice = `
	SELECT id, contour, client_user_id, amount, description, contract_number, due_date, status, created_at
	FROM invoices`

// PendingInvoice ищет неоплаченный счёт по точной паре
// (пользователь, номер договора) — опора идемпотентности биллинга.
func (r *Repository) PendingInvoice(
	ctx context.Context,
	contour entity.Contour,
	clientUserID uuid.UUID,
	contractNumber string,
) (entity.Invoice, error) {
	q := selectInvoice + `
	WHERE contour = $1 AND client_user_id = $2 AND contract_number = $3 AND status = $4
	ORDER BY created_at DESC
	LIMIT 1`

	return scanInvoice(r.q(ctx).QueryRow(ctx, q, contour, clientUserID, contractNumber, entity.InvoiceStatusPending))
}

func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	const q = `
	INSERT INTO invoices (id, contour, client_user_id, amount, description, contract_number, due_date, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.q(ctx).Exec(
		ctx,
		q,
		inv.ID,
		inv.Contour,
		inv.ClientUserID,
		inv.Amount,
		inv.Description,
		inv.ContractNumber,
		inv.DueDate,
		inv.Status,
		inv.CreatedAt,
	)
	if err != nil {
		return entity.Invoice{}, err
	}

	return inv, nil
}

func (r *Repository) InvoicesByUser(ctx context.Context, contour entity.Contour, clientUserID uuid.UUID) ([]entity.Invoice, error) {
	q := selectInvoice + ` WHERE contour = $1 AND client_user_id = $2 ORDER BY created_at DESC`

	rows, err := r.q(ctx).Query(ctx, q, contour, clientUserID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var invoices []entity.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, nil
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(
		&inv.ID,
		&inv.Contour,
		&inv.ClientUserID,
		&inv.Amount,
		&inv.Description,
		&inv.ContractNumber,
		&inv.DueDate,
		&inv.Status,
		&inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}
