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

// CreateDevice добавляет устройство клиенту и мягко пересчитывает тариф:
// ошибка пересчёта не отменяет уже созданное устройство.
func (s *Service) CreateDevice(ctx context.Context, contour entity.Contour, clientID uuid.UUID, d entity.Device) (entity.Device, error) {
	var created entity.Device

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		now := time.Now()
		d.ID = uuid.Must(uuid.NewV4())
		d.ClientID = client.ID
		d.CreatedAt = now
		d.UpdatedAt = now

		created, err = s.repo.CreateDevice(ctx, d)
		if err != nil {
			return fmt.Errorf("create device: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.Device{}, err
	}

	s.recalcTariffSoft(ctx, contour, clientID)

	slog.InfoContext(ctx, fmt.Sprintf("Клиенту %s добавлено устройство %s", clientID, created.ID))

	return created, nil
}

// UpdateDevice меняет заполненные поля устройства.
func (s *Service) UpdateDevice(ctx context.Context, contour entity.Contour, clientID, deviceID uuid.UUID, patch entity.DevicePatch) (entity.Device, error) {
	var updated entity.Device

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		device, err := s.repo.DeviceByID(ctx, client.ID, deviceID)
		if err != nil {
			return fmt.Errorf("get device: %w", err)
		}

		patch.Apply(&device)
		device.UpdatedAt = time.Now()

		err = s.repo.UpdateDevice(ctx, device)
		if err != nil {
			return fmt.Errorf("update device: %w", err)
		}

		updated = device

		return nil
	})
	if err != nil {
		return entity.Device{}, err
	}

	s.recalcTariffSoft(ctx, contour, clientID)

	return updated, nil
}

// DeleteDevice удаляет устройство клиента вместе с фотографиями.
func (s *Service) DeleteDevice(ctx context.Context, contour entity.Contour, clientID, deviceID uuid.UUID) error {
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		err = s.repo.DeleteDevice(ctx, client.ID, deviceID)
		if err != nil {
			return fmt.Errorf("delete device: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.recalcTariffSoft(ctx, contour, clientID)

	slog.InfoContext(ctx, fmt.Sprintf("У клиента %s удалено устройство %s", clientID, deviceID))

	return nil
}

// DevicePhotoUploadURL выдаёт пресайнд-ссылку для загрузки фото устройства.
func (s *Service) DevicePhotoUploadURL(ctx context.Context, contour entity.Contour, clientID, deviceID uuid.UUID, contentType string) (entity.PresignedUpload, error) {
	client, err := s.clientForUpdate(ctx, contour, clientID)
	if err != nil {
		return entity.PresignedUpload{}, err
	}

	_, err = s.repo.DeviceByID(ctx, client.ID, deviceID)
	if err != nil {
		return entity.PresignedUpload{}, fmt.Errorf("get device: %w", err)
	}

	prefix := fmt.Sprintf("clients/%s/devices/%s", clientID, deviceID)

	upload, err := s.storage.PresignUpload(ctx, prefix, contentType)
	if err != nil {
		return entity.PresignedUpload{}, fmt.Errorf("presign device photo upload: %w", err)
	}

	return upload, nil
}

// AddDevicePhoto привязывает загруженный файл к устройству.
func (s *Service) AddDevicePhoto(ctx context.Context, contour entity.Contour, clientID, deviceID uuid.UUID, fileKey string) (entity.ClientDetail, error) {
	var detail entity.ClientDetail

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		device, err := s.repo.DeviceByID(ctx, client.ID, deviceID)
		if err != nil {
			return fmt.Errorf("get device: %w", err)
		}

		_, err = s.repo.AddDevicePhoto(ctx, entity.DevicePhoto{
			ID:        uuid.Must(uuid.NewV4()),
			DeviceID:  device.ID,
			FileKey:   fileKey,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return fmt.Errorf("add device photo: %w", err)
		}

		detail, err = s.detailTx(ctx, contour, clientID)

		return err
	})
	if err != nil {
		return entity.ClientDetail{}, err
	}

	return detail, nil
}

// DeleteDevicePhoto отвязывает фото от устройства. Сам файл остаётся в
// хранилище: на него может ссылаться снимок уже сгенерированного договора.
func (s *Service) DeleteDevicePhoto(ctx context.Context, contour entity.Contour, clientID, deviceID, photoID uuid.UUID) (entity.ClientDetail, error) {
	var detail entity.ClientDetail

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		device, err := s.repo.DeviceByID(ctx, client.ID, deviceID)
		if err != nil {
			return fmt.Errorf("get device: %w", err)
		}

		photo, err := s.repo.DevicePhotoByID(ctx, device.ID, photoID)
		if err != nil {
			return fmt.Errorf("get device photo: %w", err)
		}

		err = s.repo.DeleteDevicePhoto(ctx, photo.ID)
		if err != nil {
			return fmt.Errorf("delete device photo: %w", err)
		}

		detail, err = s.detailTx(ctx, contour, clientID)

		return err
	})
	if err != nil {
		return entity.ClientDetail{}, err
	}

	return detail, nil
}

// recalcTariffSoft пересчитывает кеш тарифа после изменения состава
// устройств. Ошибка пересчёта логируется и не отменяет основную операцию:
// генерация договора в любом случае сверит расчёт заново.
func (s *Service) recalcTariffSoft(ctx context.Context, contour entity.Contour, clientID uuid.UUID) {
	err := s.recalcClientTariff(ctx, contour, clientID)
	if err != nil {
		slog.WarnContext(ctx, "пересчёт тарифа после изменения устройств не удался",
			"client_id", clientID, "error", err)
	}
}

func (s *Service) recalcClientTariff(ctx context.Context, contour entity.Contour, clientID uuid.UUID) error {
	devices, err := s.repo.DevicesByClientID(ctx, clientID)
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}

	ct, err := s.repo.ClientTariffByClientID(ctx, clientID)
	switch {
	case err == nil:
	case errors.Is(err, entity.ErrNotFound):
		ct = entity.ClientTariff{
			ID:       uuid.Must(uuid.NewV4()),
			ClientID: clientID,
		}
	default:
		return fmt.Errorf("get client tariff: %w", err)
	}

	rate := entity.ConfigForContour(contour).DefaultRate
	if ct.Tariff != nil {
		rate = ct.Tariff.ExtraPerDevice
	}

	ct.DeviceCount = len(devices)
	ct.TotalExtraFee = rate.Mul(decimal.NewFromInt(int64(len(devices))))
	ct.CalculatedAt = time.Now()

	_, err = s.repo.UpsertClientTariff(ctx, ct)
	if err != nil {
		return fmt.Errorf("upsert client tariff: %w", err)
	}

	return nil
}
