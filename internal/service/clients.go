package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

// Clients возвращает список клиентов контура для выбранной вкладки.
// Вкладки new/in_work/processed режут по статусу, mine — по закреплению
// за текущим сотрудником.
func (s *Service) Clients(ctx context.Context, contour entity.Contour, tab entity.ClientTab) ([]entity.ClientSummary, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := s.repo.Clients(ctx, contour, tab, staff.ID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return summaries, nil
}

// ClientDetail отдаёт карточку клиента. Первое обращение сотрудника к
// незакреплённому клиенту закрепляет клиента за ним.
func (s *Service) ClientDetail(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ClientDetail, error) {
	detail, err := s.detailTx(ctx, contour, clientID)
	if err != nil {
		return entity.ClientDetail{}, err
	}

	client, err := s.ensureAssignment(ctx, detail.Client)
	if err != nil {
		return entity.ClientDetail{}, err
	}

	detail.Client = client

	return detail, nil
}

// UpdateProfile частично обновляет контакты пользователя. Клиент в статусе
// NEW после первого такого обновления переходит в IN_VERIFICATION.
func (s *Service) UpdateProfile(ctx context.Context, contour entity.Contour, clientID uuid.UUID, patch entity.UserPatch) (entity.ClientDetail, error) {
	if patch.Phone != nil && *patch.Phone != "" {
		if err := validatePhone(*patch.Phone); err != nil {
			return entity.ClientDetail{}, err
		}
	}

	if patch.Email != nil && *patch.Email != "" {
		if err := validateEmail(*patch.Email); err != nil {
			return entity.ClientDetail{}, err
		}
	}

	var detail entity.ClientDetail

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		err = s.repo.UpdateUserContacts(ctx, client.UserID, patch)
		if err != nil {
			return fmt.Errorf("update user contacts: %w", err)
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

	slog.InfoContext(ctx, fmt.Sprintf("Обновлены контакты клиента %s", clientID))

	return detail, nil
}

// startVerification переводит нового клиента в статус проверки после первого
// содержательного действия сотрудника над анкетой.
func (s *Service) startVerification(ctx context.Context, client entity.Client) error {
	if client.Status != entity.ClientStatusNew {
		return nil
	}

	err := s.repo.SetClientStatus(ctx, client.ID, entity.ClientStatusInVerification)
	if err != nil {
		return fmt.Errorf("set client status: %w", err)
	}

	return nil
}
