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

// UpsertPassport перезаписывает паспортные данные клиента целиком.
// Фото паспорта при этом сохраняется: им управляют отдельные ручки.
func (s *Service) UpsertPassport(ctx context.Context, contour entity.Contour, clientID uuid.UUID, p entity.Passport) (entity.ClientDetail, error) {
	var detail entity.ClientDetail

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		// При конфликте по client_id остаётся идентификатор существующей строки.
		p.ID = uuid.Must(uuid.NewV4())
		p.ClientID = client.ID
		p.UpdatedAt = time.Now()

		_, err = s.repo.UpsertPassport(ctx, p)
		if err != nil {
			return fmt.Errorf("upsert passport: %w", err)
		}

		err = s.startVerification(ctx, client)
		if err != nil {
			return err
		}

		detail, err = s.detailTx(ctx, contour, clientID)

		return err
	})
	if err != nil {
		return entity.ClientDetail{}, err
	}

	slog.InfoContext(ctx, fmt.Sprintf("Паспорт клиента %s заполнен", clientID))

	return detail, nil
}

// PatchPassport обновляет только заполненные поля паспорта.
func (s *Service) PatchPassport(ctx context.Context, contour entity.Contour, clientID uuid.UUID, patch entity.PassportPatch) (entity.ClientDetail, error) {
	var detail entity.ClientDetail

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		err = s.repo.UpdatePassportFields(ctx, client.ID, patch, time.Now())
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return entity.NewPrerequisiteError(entity.PrerequisitePassport)
			}

			return fmt.Errorf("update passport fields: %w", err)
		}

		detail, err = s.detailTx(ctx, contour, clientID)

		return err
	})
	if err != nil {
		return entity.ClientDetail{}, err
	}

	return detail, nil
}

// PassportPhotoUploadURL выдаёт пресайнд-ссылку для загрузки фото паспорта.
func (s *Service) PassportPhotoUploadURL(ctx context.Context, contour entity.Contour, clientID uuid.UUID, contentType string) (entity.PresignedUpload, error) {
	_, err := s.clientForUpdate(ctx, contour, clientID)
	if err != nil {
		return entity.PresignedUpload{}, err
	}

	prefix := fmt.Sprintf("clients/%s/passport", clientID)

	upload, err := s.storage.PresignUpload(ctx, prefix, contentType)
	if err != nil {
		return entity.PresignedUpload{}, fmt.Errorf("presign passport photo upload: %w", err)
	}

	return upload, nil
}

// AttachPassportPhoto привязывает загруженный файл к паспорту клиента.
// Без заполненного паспорта фото прикреплять не к чему.
func (s *Service) AttachPassportPhoto(ctx context.Context, contour entity.Contour, clientID uuid.UUID, fileKey string) (entity.ClientDetail, error) {
	var detail entity.ClientDetail

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		_, err = s.repo.PassportByClientID(ctx, client.ID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return entity.NewPrerequisiteError(entity.PrerequisitePassport)
			}

			return fmt.Errorf("get passport: %w", err)
		}

		url := s.storage.PublicURL(fileKey)

		err = s.repo.SetPassportPhoto(ctx, client.ID, &fileKey, &url, time.Now())
		if err != nil {
			return fmt.Errorf("set passport photo: %w", err)
		}

		detail, err = s.detailTx(ctx, contour, clientID)

		return err
	})
	if err != nil {
		return entity.ClientDetail{}, err
	}

	return detail, nil
}

// DetachPassportPhoto удаляет фото паспорта из хранилища и из карточки.
func (s *Service) DetachPassportPhoto(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ClientDetail, error) {
	client, err := s.clientForUpdate(ctx, contour, clientID)
	if err != nil {
		return entity.ClientDetail{}, err
	}

	passport, err := s.repo.PassportByClientID(ctx, client.ID)
	if err != nil {
		return entity.ClientDetail{}, fmt.Errorf("get passport: %w", err)
	}

	if passport.PhotoFileKey == nil {
		return entity.ClientDetail{}, entity.ErrNotFound
	}

	err = s.storage.Delete(ctx, *passport.PhotoFileKey)
	if err != nil {
		slog.WarnContext(ctx, "не удалось удалить фото паспорта из хранилища",
			"client_id", clientID, "file_key", *passport.PhotoFileKey, "error", err)
	}

	err = s.repo.SetPassportPhoto(ctx, client.ID, nil, nil, time.Now())
	if err != nil {
		return entity.ClientDetail{}, fmt.Errorf("clear passport photo: %w", err)
	}

	return s.detailTx(ctx, contour, clientID)
}
