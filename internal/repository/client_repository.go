package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

const selectClient = `
	SELECT id, contour, user_id, assigned_staff_id, support_ticket_id, status, created_at
	FROM clients`

func (r *Repository) ClientByID(ctx context.Context, contour entity.Contour, id uuid.UUID) (entity.Client, error) {
	q := selectClient + ` WHERE contour = $1 AND id = $2`
	return scanClient(r.q(ctx).QueryRow(ctx, q, contour, id))
}

// Clients возвращает строки списка клиентов контура для заданной вкладки.
// Вкладки определяются статусом, "mine" — назначением на сотрудника.
func (r *Repository) Clients(
	ctx context.Context,
	contour entity.Contour,
	tab entity.ClientTab,
	staffID uuid.UUID,
) ([]entity.ClientSummary, error) {
	stmt := sq.Select(
		"c.id",
		"c.contour",
		"c.user_id",
		"c.assigned_staff_id",
		"c.support_ticket_id",
		"c.status",
		"c.created_at",
		"u.id",
		"u.phone",
		"u.email",
		"u.name",
		"u.address",
		"u.created_at",
		"p.last_name",
		"p.first_name",
		"p.middle_name",
		"(SELECT COUNT(*) FROM devices d WHERE d.client_id = c.id) AS devices_count",
	).
		From("clients c").
		Join("users u ON u.id = c.user_id").
		LeftJoin("passports p ON p.client_id = c.id").
		Where(sq.Eq{"c.contour": contour}).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	stmt = applyTabFilter(stmt, tab, staffID)

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var summaries []entity.ClientSummary

	for rows.Next() {
		var (
			s          entity.ClientSummary
			lastName   string
			firstName  string
			middleName *string
		)

		err = rows.Scan(
			&s.Client.ID,
			&s.Client.Contour,
			&s.Client.UserID,
			&s.Client.AssignedStaffID,
			&s.Client.SupportTicketID,
			&s.Client.Status,
			&s.Client.CreatedAt,
			&s.User.ID,
			&s.User.Phone,
			&s.User.Email,
			&s.User.Name,
			&s.User.Address,
			&s.User.CreatedAt,
			(*zeronull.Text)(&lastName),
			(*zeronull.Text)(&firstName),
			&middleName,
			&s.DevicesCount,
		)
		if err != nil {
			return nil, err
		}

		var passport *entity.Passport
		if lastName != "" || firstName != "" {
			passport = &entity.Passport{LastName: lastName, FirstName: firstName, MiddleName: middleName}
		}

		s.FullName = s.User.FullName(passport)

		summaries = append(summaries, s)
	}

	return summaries, nil
}

func applyTabFilter(stmt sq.SelectBuilder, tab entity.ClientTab, staffID uuid.UUID) sq.SelectBuilder {
	switch tab {
	case entity.ClientTabNew:
		stmt = stmt.Where(sq.Eq{"c.status": entity.ClientStatusNew})
	case entity.ClientTabInWork:
		stmt = stmt.Where(sq.Eq{"c.status": []entity.ClientStatus{
			entity.ClientStatusInVerification,
			entity.ClientStatusAwaitingContract,
			entity.ClientStatusAwaitingPayment,
		}})
	case entity.ClientTabProcessed:
		stmt = stmt.Where(sq.Eq{"c.status": entity.ClientStatusProcessed})
	case entity.ClientTabMine:
		stmt = stmt.Where(sq.Eq{"c.assigned_staff_id": staffID})
	}

	return stmt
}

func (r *Repository) AssignStaff(ctx context.Context, clientID, staffID uuid.UUID) error {
	const q = `UPDATE clients SET assigned_staff_id = $1 WHERE id = $2`

	result, err := r.q(ctx).Exec(ctx, q, staffID, clientID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetClientStatus(ctx context.Context, clientID uuid.UUID, status entity.ClientStatus) error {
	const q = `UPDATE clients SET status = $1 WHERE id = $2`

	result, err := r.q(ctx).Exec(ctx, q, status, clientID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetSupportTicket(ctx context.Context, clientID, ticketID uuid.UUID) error {
	const q = `UPDATE clients SET support_ticket_id = $1 WHERE id = $2`

	result, err := r.q(ctx).Exec(ctx, q, ticketID, clientID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	const q = `SELECT id, phone, email, name, address, created_at FROM users WHERE id = $1`

	var user entity.User

	err := r.q(ctx).QueryRow(ctx, q, id).Scan(
		&user.ID,
		&user.Phone,
		&user.Email,
		&user.Name,
		&user.Address,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return user, nil
}

func (r *Repository) UpdateUserContacts(ctx context.Context, userID uuid.UUID, patch entity.UserPatch) error {
	if patch.Empty() {
		return nil
	}

	stmt := sq.Update("users").Where(sq.Eq{"id": userID}).PlaceholderFormat(sq.Dollar)

	if patch.Phone != nil {
		stmt = stmt.Set("phone", *patch.Phone)
	}

	if patch.Email != nil {
		stmt = stmt.Set("email", *patch.Email)
	}

	if patch.Name != nil {
		stmt = stmt.Set("name", *patch.Name)
	}

	if patch.Address != nil {
		stmt = stmt.Set("address", *patch.Address)
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	result, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ClientDetail собирает карточку клиента одним согласованным срезом:
// клиент, пользователь, паспорт, устройства с фото, тариф, договор, счета.
func (r *Repository) ClientDetail(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ClientDetail, error) {
	var detail entity.ClientDetail

	err := r.InTx(ctx, func(ctx context.Context) error {
		client, err := r.ClientByID(ctx, contour, clientID)
		if err != nil {
			return err
		}

		user, err := r.UserByID(ctx, client.UserID)
		if err != nil {
			return err
		}

		detail = entity.ClientDetail{Client: client, User: user}

		passport, err := r.PassportByClientID(ctx, clientID)
		switch {
		case err == nil:
			detail.Passport = &passport
		case !errors.Is(err, entity.ErrNotFound):
			return err
		}

		detail.Devices, err = r.DevicesByClientID(ctx, clientID)
		if err != nil {
			return err
		}

		tariff, err := r.ClientTariffByClientID(ctx, clientID)
		switch {
		case err == nil:
			detail.Tariff = &tariff
		case !errors.Is(err, entity.ErrNotFound):
			return err
		}

		contract, err := r.ContractByClientID(ctx, clientID)
		switch {
		case err == nil:
			detail.Contract = &contract
		case !errors.Is(err, entity.ErrNotFound):
			return err
		}

		detail.Invoices, err = r.InvoicesByUser(ctx, client.Contour, client.UserID)

		return err
	})
	if err != nil {
		return entity.ClientDetail{}, err
	}

	return detail, nil
}

func scanClient(row pgx.Row) (client entity.Client, err error) {
	err = row.Scan(
		&client.ID,
		&client.Contour,
		&client.UserID,
		&client.AssignedStaffID,
		&client.SupportTicketID,
		&client.Status,
		&client.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Client{}, entity.ErrNotFound
		}

		return entity.Client{}, err
	}

	return client, nil
}
