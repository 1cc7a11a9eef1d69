package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

const selectDevice = `
	SELECT id, client_id, device_type, title, description, specs, extra_fee, created_at, updated_at
	FROM devices`

func (r *Repository) DeviceByID(ctx context.Context, clientID, deviceID uuid.UUID) (entity.Device, error) {
	q := selectDevice + ` WHERE client_id = $1 AND id = $2`

	device, err := scanDevice(r.q(ctx).QueryRow(ctx, q, clientID, deviceID))
	if err != nil {
		return entity.Device{}, err
	}

	device.Photos, err = r.devicePhotos(ctx, deviceID)
	if err != nil {
		return entity.Device{}, err
	}

	return device, nil
}

func (r *Repository) DevicesByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Device, error) {
	q := selectDevice + ` WHERE client_id = $1 ORDER BY created_at`

	rows, err := r.q(ctx).Query(ctx, q, clientID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var devices []entity.Device

	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}

		devices = append(devices, device)
	}

	if len(devices) == 0 {
		return devices, nil
	}

	ids := make([]uuid.UUID, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}

	photos, err := r.photosByDeviceIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range devices {
		devices[i].Photos = photos[devices[i].ID]
	}

	return devices, nil
}

func (r *Repository) CreateDevice(ctx context.Context, d entity.Device) (entity.Device, error) {
	const q = `
	INSERT INTO devices (id, client_id, device_type, title, description, specs, extra_fee, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	specs, err := marshalSpecs(d.Specs)
	if err != nil {
		return entity.Device{}, err
	}

	_, err = r.q(ctx).Exec(
		ctx,
		q,
		d.ID,
		d.ClientID,
		d.DeviceType,
		d.Title,
		d.Description,
		specs,
		d.ExtraFee,
		d.CreatedAt,
		d.UpdatedAt,
	)
	if err != nil {
		return entity.Device{}, err
	}

	return d, nil
}

func (r *Repository) UpdateDevice(ctx context.Context, d entity.Device) error {
	const q = `
	UPDATE devices
	SET device_type = $1, title = $2, description = $3, specs = $4, extra_fee = $5, updated_at = $6
	WHERE client_id = $7 AND id = $8`

	specs, err := marshalSpecs(d.Specs)
	if err != nil {
		return err
	}

	result, err := r.q(ctx).Exec(
		ctx,
		q,
		d.DeviceType,
		d.Title,
		d.Description,
		specs,
		d.ExtraFee,
		d.UpdatedAt,
		d.ClientID,
		d.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteDevice(ctx context.Context, clientID, deviceID uuid.UUID) error {
	const q = `DELETE FROM devices WHERE client_id = $1 AND id = $2`

	result, err := r.q(ctx).Exec(ctx, q, clientID, deviceID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) AddDevicePhoto(ctx context.Context, photo entity.DevicePhoto) (entity.DevicePhoto, error) {
	const q = `INSERT INTO device_photos (id, device_id, file_key, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.q(ctx).Exec(ctx, q, photo.ID, photo.DeviceID, photo.FileKey, photo.CreatedAt)
	if err != nil {
		return entity.DevicePhoto{}, err
	}

	return photo, nil
}

func (r *Repository) DevicePhotoByID(ctx context.Context, deviceID, photoID uuid.UUID) (entity.DevicePhoto, error) {
	const q = `SELECT id, device_id, file_key, created_at FROM device_photos WHERE device_id = $1 AND id = $2`

	var photo entity.DevicePhoto

	err := r.q(ctx).QueryRow(ctx, q, deviceID, photoID).Scan(
		&photo.ID,
		&photo.DeviceID,
		&photo.FileKey,
		&photo.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DevicePhoto{}, entity.ErrNotFound
		}

		return entity.DevicePhoto{}, err
	}

	return photo, nil
}

func (r *Repository) DeleteDevicePhoto(ctx context.Context, photoID uuid.UUID) error {
	const q = `DELETE FROM device_photos WHERE id = $1`

	result, err := r.q(ctx).Exec(ctx, q, photoID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) devicePhotos(ctx context.Context, deviceID uuid.UUID) ([]entity.DevicePhoto, error) {
	const q = `SELECT id, device_id, file_key, created_at FROM device_photos WHERE device_id = $1 ORDER BY created_at`

	rows, err := r.q(ctx).Query(ctx, q, deviceID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var photos []entity.DevicePhoto

	for rows.Next() {
		var photo entity.DevicePhoto

		err = rows.Scan(&photo.ID, &photo.DeviceID, &photo.FileKey, &photo.CreatedAt)
		if err != nil {
			return nil, err
		}

		photos = append(photos, photo)
	}

	return photos, nil
}

func (r *Repository) photosByDeviceIDs(ctx context.Context, deviceIDs []uuid.UUID) (map[uuid.UUID][]entity.DevicePhoto, error) {
	const q = `SELECT id, device_id, file_key, created_at FROM device_photos WHERE device_id = ANY($1) ORDER BY created_at`

	rows, err := r.q(ctx).Query(ctx, q, deviceIDs)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	photos := make(map[uuid.UUID][]entity.DevicePhoto)

	for rows.Next() {
		var photo entity.DevicePhoto

		err = rows.Scan(&photo.ID, &photo.DeviceID, &photo.FileKey, &photo.CreatedAt)
		if err != nil {
			return nil, err
		}

		photos[photo.DeviceID] = append(photos[photo.DeviceID], photo)
	}

	return photos, nil
}

func marshalSpecs(specs map[string]any) ([]byte, error) {
	if specs == nil {
		return nil, nil
	}

	data, err := json.Marshal(specs)
	if err != nil {
		return nil, fmt.Errorf("marshal specs: %w", err)
	}

	return data, nil
}

func scanDevice(row pgx.Row) (d entity.Device, err error) {
	var specs []byte

	err = row.Scan(
		&d.ID,
		&d.ClientID,
		&d.DeviceType,
		&d.Title,
		&d.Description,
		&specs,
		&d.ExtraFee,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Device{}, entity.ErrNotFound
		}

		return entity.Device{}, err
	}

	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &d.Specs); err != nil {
			return entity.Device{}, fmt.Errorf("unmarshal specs: %w", err)
		}
	}

	return d, nil
}
