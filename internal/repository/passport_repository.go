package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

const selectPassport = `
	SELECT id, client_id, last_name, first_name, middle_name, series, number,
	       issued_by, issue_code, issue_date, registration_address,
	       photo_file_key, photo_url, updated_at
	FROM passports`

func (r *Repository) PassportByClientID(ctx context.Context, clientID uuid.UUID) (entity.Passport, error) {
	q := selectPassport + ` WHERE client_id = $1`
	return scanPassport(r.q(ctx).QueryRow(ctx, q, clientID))
}

// UpsertPassport создаёт или полностью перезаписывает паспорт клиента.
// Ссылка на фото при перезаписи сохраняется: она управляется отдельными
// операциями.
func (r *Repository) UpsertPassport(ctx context.Context, p entity.Passport) (entity.Passport, error) {
	const q = `
	INSERT INTO passports (
		id, client_id, last_name, first_name, middle_name, series, number,
		issued_by, issue_code, issue_date, registration_address, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (client_id) DO UPDATE SET
		last_name = EXCLUDED.last_name,
		first_name = EXCLUDED.first_name,
		middle_name = EXCLUDED.middle_name,
		series = EXCLUDED.series,
		number = EXCLUDED.number,
		issued_by = EXCLUDED.issued_by,
		issue_code = EXCLUDED.issue_code,
		issue_date = EXCLUDED.issue_date,
		registration_address = EXCLUDED.registration_address,
		updated_at = EXCLUDED.updated_at
	RETURNING id, client_id, last_name, first_name, middle_name, series, number,
	          issued_by, issue_code, issue_date, registration_address,
	          photo_file_key, photo_url, updated_at`

	return scanPassport(r.q(ctx).QueryRow(
		ctx,
		q,
		p.ID,
		p.ClientID,
		p.LastName,
		p.FirstName,
		p.MiddleName,
		p.Series,
		p.Number,
		p.IssuedBy,
		p.IssueCode,
		p.IssueDate,
		p.RegistrationAddress,
		p.UpdatedAt,
	))
}

func (r *Repository) UpdatePassportFields(
	ctx context.Context,
	clientID uuid.UUID,
	patch entity.PassportPatch,
	updatedAt time.Time,
) error {
	if patch.Empty() {
		return nil
	}

	stmt := sq.Update("passports").
		Set("updated_at", updatedAt).
		Where(sq.Eq{"client_id": clientID}).
		PlaceholderFormat(sq.Dollar)

	if patch.LastName != nil {
		stmt = stmt.Set("last_name", *patch.LastName)
	}

	if patch.FirstName != nil {
		stmt = stmt.Set("first_name", *patch.FirstName)
	}

	if patch.MiddleName != nil {
		stmt = stmt.Set("middle_name", *patch.MiddleName)
	}

	if patch.Series != nil {
		stmt = stmt.Set("series", *patch.Series)
	}

	if patch.Number != nil {
		stmt = stmt.Set("number", *patch.Number)
	}

	if patch.IssuedBy != nil {
		stmt = stmt.Set("issued_by", *patch.IssuedBy)
	}

	if patch.IssueCode != nil {
		stmt = stmt.Set("issue_code", *patch.IssueCode)
	}

	if patch.IssueDate != nil {
		stmt = stmt.Set("issue_date", *patch.IssueDate)
	}

	if patch.RegistrationAddress != nil {
		stmt = stmt.Set("registration_address", *patch.RegistrationAddress)
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

func (r *Repository) SetPassportPhoto(ctx context.Context, clientID uuid.UUID, fileKey, url *string, updatedAt time.Time) error {
	const q = `UPDATE passports SET photo_file_key = $1, photo_url = $2, updated_at = $3 WHERE client_id = $4`

	result, err := r.q(ctx).Exec(ctx, q, fileKey, url, updatedAt, clientID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanPassport(row pgx.Row) (p entity.Passport, err error) {
	err = row.Scan(
		&p.ID,
		&p.ClientID,
		&p.LastName,
		&p.FirstName,
		&p.MiddleName,
		&p.Series,
		&p.Number,
		&p.IssuedBy,
		&p.IssueCode,
		&p.IssueDate,
		&p.RegistrationAddress,
		&p.PhotoFileKey,
		&p.PhotoURL,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Passport{}, entity.ErrNotFound
		}

		return entity.Passport{}, err
	}

	return p, nil
}
