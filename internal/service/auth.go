package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

// Login проверяет пару email/пароль сотрудника контура и выдаёт access-токен.
// Причина отказа наружу не уточняется: нет сотрудника, выключен или неверный
// пароль выглядят одинаково.
func (s *Service) Login(ctx context.Context, contour entity.Contour, email, password string) (entity.StaffToken, error) {
	staff, err := s.repo.StaffByEmail(ctx, contour, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.StaffToken{}, entity.ErrInvalidCredential
		}

		return entity.StaffToken{}, fmt.Errorf("get staff by email: %w", err)
	}

	if !staff.IsActive {
		return entity.StaffToken{}, entity.ErrInvalidCredential
	}

	err = bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password))
	if err != nil {
		return entity.StaffToken{}, entity.ErrInvalidCredential
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.Auth.AccessTokenTTL)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		entity.StaffJwtClaims{
			StaffID: staff.ID,
			Contour: staff.Contour,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.Must(uuid.NewV4()).String(),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		}).SignedString([]byte(s.jwtSecret(contour)))
	if err != nil {
		return entity.StaffToken{}, fmt.Errorf("sign access token: %w", err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Вход сотрудника %s в контур %s", staff.ID, contour))

	return entity.StaffToken{
		AccessToken: token,
		ExpiresIn:   int64(s.cfg.Auth.AccessTokenTTL.Seconds()),
	}, nil
}

// VerifyToken разбирает access-токен и возвращает действующего сотрудника.
// Токен другого контура не принимается даже при совпадении секретов.
func (s *Service) VerifyToken(ctx context.Context, contour entity.Contour, token string) (entity.StaffUser, error) {
	var claims entity.StaffJwtClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		_, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return []byte(s.jwtSecret(contour)), nil
	})
	if err != nil {
		return entity.StaffUser{}, fmt.Errorf("%w: parse access token: %s", entity.ErrUnauthenticated, err)
	}

	if !parsed.Valid || claims.Contour != contour {
		return entity.StaffUser{}, entity.ErrUnauthenticated
	}

	staff, err := s.repo.StaffByID(ctx, claims.StaffID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.StaffUser{}, entity.ErrUnauthenticated
		}

		return entity.StaffUser{}, fmt.Errorf("get staff by id: %w", err)
	}

	if !staff.IsActive || staff.Contour != contour {
		return entity.StaffUser{}, entity.ErrUnauthenticated
	}

	return staff, nil
}

// Me возвращает профиль сотрудника из контекста запроса.
func (s *Service) Me(ctx context.Context) (entity.StaffUser, error) {
	return entity.StaffFromCtx(ctx)
}

func (s *Service) jwtSecret(contour entity.Contour) string {
	if contour == entity.ContourMaster {
		return s.cfg.Auth.MasterJWTSecret
	}

	return s.cfg.Auth.ManagerJWTSecret
}
