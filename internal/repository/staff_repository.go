package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

const selectStaff = `
	SELECT id, contour, email, password_hash, name, is_active, is_super_admin, created_at
	FROM staff_users`

func (r *Repository) StaffByEmail(ctx context.Context, contour entity.Contour, email string) (entity.StaffUser, error) {
	q := selectStaff + ` WHERE contour = $1 AND lower(email) = lower($2)`
	return scanStaff(r.q(ctx).QueryRow(ctx, q, contour, email))
}

func (r *Repository) StaffByID(ctx context.Context, id uuid.UUID) (entity.StaffUser, error) {
	q := selectStaff + ` WHERE id = $1`
	return scanStaff(r.q(ctx).QueryRow(ctx, q, id))
}

func scanStaff(row pgx.Row) (staff entity.StaffUser, err error) {
	err = row.Scan(
		&staff.ID,
		&staff.Contour,
		&staff.Email,
		&staff.PasswordHash,
		&staff.Name,
		&staff.IsActive,
		&staff.IsSuperAdmin,
		&staff.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.StaffUser{}, entity.ErrNotFound
		}

		return entity.StaffUser{}, err
	}

	return staff, nil
}
