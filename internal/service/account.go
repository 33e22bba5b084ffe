package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/pkg/log"
	"github.com/pribylovaa/session-service/internal/storage"
)

// Authenticate проверяет access-токен и загружает пользователя.
// Любой отказ проверки — ErrUnauthenticated.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*models.Identity, error) {
	const op = "service.account.Authenticate"

	claims, err := s.tokens.VerifyAccess(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnauthenticated, err)
	}

	userID, err := claims.Identity()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
		}

		log.From(ctx).Error("user_lookup_failed", "op", op, "user_id", userID.String(), "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id := user.Identity
	return &id, nil
}

// CurrentUser возвращает профиль пользователя без credential.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.Identity, error) {
	const op = "service.account.CurrentUser"

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id := user.Identity
	return &id, nil
}

// UpdateAccount меняет ФИО и/или email. Нужно хотя бы одно поле.
func (s *Service) UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.Identity, error) {
	const op = "service.account.UpdateAccount"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	fullName = strings.TrimSpace(fullName)
	if strings.TrimSpace(email) == "" && fullName == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	var normEmail string
	if strings.TrimSpace(email) != "" {
		var err error
		normEmail, err = s.normalizeEmail(email)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	user, err := s.users.UpdateAccount(ctx, userID, fullName, normEmail)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("update_account_conflict")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("update_account_failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	id := user.Identity
	return &id, nil
}
