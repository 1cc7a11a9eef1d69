package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

func (r *Repository) TariffByID(ctx context.Context, contour entity.Contour, id uuid.UUID) (entity.Tariff, error) {
	const q = `
	SELECT id, contour, name, base_fee, extra_per_device, notes
	FROM tariffs
	WHERE contour = $1 AND id = $2`

	var t entity.Tariff

	err := r.q(ctx).QueryRow(ctx, q, contour, id).Scan(
		&t.ID,
		&t.Contour,
		&t.Name,
		&t.BaseFee,
		&t.ExtraPerDevice,
		&t.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Tariff{}, entity.ErrNotFound
		}

		return entity.Tariff{}, err
	}

	return t, nil
}

func (r *Repository) Tariffs(ctx context.Context, contour entity.Contour) ([]entity.Tariff, error) {
	const q = `
	SELECT id, contour, name, base_fee, extra_per_device, notes
	FROM tariffs
	WHERE contour = $1
	ORDER BY name`

	rows, err := r.q(ctx).Query(ctx, q, contour)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tariffs []entity.Tariff

	for rows.Next() {
		var t entity.Tariff

		err = rows.Scan(&t.ID, &t.Contour, &t.Name, &t.BaseFee, &t.ExtraPerDevice, &t.Notes)
		if err != nil {
			return nil, err
		}

		tariffs = append(tariffs, t)
	}

	return tariffs, nil
}

// ClientTariffByClientID возвращает расчёт тарифа клиента вместе с записью
// справочника, если тариф из него выбран.
func (r *Repository) ClientTariffByClientID(ctx context.Context, clientID uuid.UUID) (entity.ClientTariff, error) {
	const q = `
	SELECT ct.id, ct.client_id, ct.tariff_id, ct.device_count, ct.total_extra_fee, ct.calculated_at,
	       t.id, t.contour, t.name, t.base_fee, t.extra_per_device, t.notes
	FROM client_tariffs ct
	LEFT JOIN tariffs t ON t.id = ct.tariff_id
	WHERE ct.client_id = $1`

	var (
		ct       entity.ClientTariff
		tID      *uuid.UUID
		tContour *entity.Contour
		tName    *string
		tBase    *decimal.Decimal
		tExtra   *decimal.Decimal
		tNotes   *string
	)

	err := r.q(ctx).QueryRow(ctx, q, clientID).Scan(
		&ct.ID,
		&ct.ClientID,
		&ct.TariffID,
		&ct.DeviceCount,
		&ct.TotalExtraFee,
		&ct.CalculatedAt,
		&tID,
		&tContour,
		&tName,
		&tBase,
		&tExtra,
		&tNotes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ClientTariff{}, entity.ErrNotFound
		}

		return entity.ClientTariff{}, err
	}

	if tID != nil {
		ct.Tariff = &entity.Tariff{
			ID:             *tID,
			Contour:        *tContour,
			Name:           *tName,
			BaseFee:        *tBase,
			ExtraPerDevice: *tExtra,
			Notes:          tNotes,
		}
	}

	return ct, nil
}

func (r *Repository) UpsertClientTariff(ctx context.Context, ct entity.ClientTariff) (entity.ClientTariff, error) {
	const q = `
	INSERT INTO client_tariffs (id, client_id, tariff_id, device_count, total_extra_fee, calculated_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (client_id) DO UPDATE SET
		tariff_id = EXCLUDED.tariff_id,
		device_count = EXCLUDED.device_count,
		total_extra_fee = EXCLUDED.total_extra_fee,
		calculated_at = EXCLUDED.calculated_at
	RETURNING id`

	err := r.q(ctx).QueryRow(
		ctx,
		q,
		ct.ID,
		ct.ClientID,
		ct.TariffID,
		ct.DeviceCount,
		ct.TotalExtraFee,
		ct.CalculatedAt,
	).Scan(&ct.ID)
	if err != nil {
		return entity.ClientTariff{}, err
	}

	return ct, nil
}
