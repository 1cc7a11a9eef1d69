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

// TariffCatalog — справочник тарифов контура.
func (s *Service) TariffCatalog(ctx context.Context, contour entity.Contour) ([]entity.Tariff, error) {
	tariffs, err := s.repo.Tariffs(ctx, contour)
	if err != nil {
		return nil, fmt.Errorf("list tariffs: %w", err)
	}

	return tariffs, nil
}

// CalculateTariff — предварительный расчёт без записи: во что обойдётся
// выбранный тариф при заданном количестве устройств.
func (s *Service) CalculateTariff(ctx context.Context, contour entity.Contour, clientID uuid.UUID, tariffID *uuid.UUID, deviceCount int) (entity.TariffCalculation, error) {
	cfg := entity.ConfigForContour(contour)

	if _, err := s.clientForUpdate(ctx, contour, clientID); err != nil {
		return entity.TariffCalculation{}, err
	}

	tariff, err := s.lookupTariff(ctx, contour, tariffID)
	if err != nil {
		return entity.TariffCalculation{}, err
	}

	return entity.CalculateTariff(tariff, deviceCount, cfg.DefaultRate), nil
}

// ApplyTariff фиксирует расчёт в карточке клиента.
func (s *Service) ApplyTariff(ctx context.Context, contour entity.Contour, clientID uuid.UUID, tariffID *uuid.UUID, deviceCount int) (entity.ClientTariff, error) {
	cfg := entity.ConfigForContour(contour)

	var applied entity.ClientTariff

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		tariff, err := s.lookupTariff(ctx, contour, tariffID)
		if err != nil {
			return err
		}

		calc := entity.CalculateTariff(tariff, deviceCount, cfg.DefaultRate)

		ct, err := s.repo.ClientTariffByClientID(ctx, client.ID)
		if err != nil {
			if !errors.Is(err, entity.ErrNotFound) {
				return fmt.Errorf("get client tariff: %w", err)
			}
			ct = entity.ClientTariff{
				ID:       uuid.Must(uuid.NewV4()),
				ClientID: client.ID,
			}
		}

		ct.TariffID = nil
		if tariff != nil {
			ct.TariffID = &tariff.ID
		}
		ct.Tariff = tariff
		ct.DeviceCount = calc.DeviceCount
		ct.TotalExtraFee = calc.TotalExtraFee
		ct.CalculatedAt = time.Now().UTC()

		applied, err = s.repo.UpsertClientTariff(ctx, ct)
		if err != nil {
			return fmt.Errorf("apply client tariff: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.ClientTariff{}, err
	}

	slog.InfoContext(ctx, fmt.Sprintf("Клиенту %s применён тариф: устройств %d, доплата %s", clientID, applied.DeviceCount, applied.TotalExtraFee.StringFixed(2)))

	return applied, nil
}

// lookupTariff ищет справочный тариф; неизвестный идентификатор трактуется
// как отсутствие тарифа, и расчёт идёт по ставке по умолчанию.
func (s *Service) lookupTariff(ctx context.Context, contour entity.Contour, tariffID *uuid.UUID) (*entity.Tariff, error) {
	if tariffID == nil {
		return nil, nil
	}

	t, err := s.repo.TariffByID(ctx, contour, *tariffID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tariff: %w", err)
	}

	return &t, nil
}
