package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/pkg/log"
	"github.com/pribylovaa/session-service/internal/pkg/redact"
	"github.com/pribylovaa/session-service/internal/session"
	"github.com/pribylovaa/session-service/internal/storage"
)

// RegisterInput — данные для регистрации пользователя.
type RegisterInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// Register создаёт пользователя. Сессию не открывает: клиент входит отдельно.
//
// Валидация:
//   - все поля обязательны; username и email приводятся к нижнему регистру;
//   - пароль 8..72 байт.
//
// Ошибки: ErrInvalidArgument, ErrConflict (username или email заняты).
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Identity, error) {
	const op = "service.auth.Register"

	lg := log.From(ctx).With("op", op, "email", redact.Email(in.Email))

	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%s: full name: %w", op, ErrInvalidArgument)
	}

	username, err := s.normalizeUsername(in.Username)
	if err != nil {
		return nil, fmt.Errorf("%s: username: %w", op, err)
	}

	email, err := s.normalizeEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: email: %w", op, err)
	}

	if err := validatePassword(in.Password); err != nil {
		return nil, fmt.Errorf("%s: password: %w", op, err)
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		lg.Error("password_hash_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Identity: models.Identity{
			ID:        uuid.New(),
			Username:  username,
			Email:     email,
			FullName:  fullName,
			CreatedAt: now,
			UpdatedAt: now,
		},
		PasswordHash: digest,
	}

	if err := s.users.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("register_conflict")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		}

		lg.Error("save_user_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("user_registered", "user_id", user.ID.String())

	id := user.Identity
	return &id, nil
}

// Login проверяет пароль и открывает новую сессию; прежний refresh-токен
// пользователя перестаёт действовать.
func (s *Service) Login(ctx context.Context, identifier, plaintext string) (*models.Session, error) {
	const op = "service.auth.Login"

	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	lg := log.From(ctx).With("op", op, "login", redact.Login(identifier))

	user, err := s.users.UserByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Выравниваем время ответа с веткой «неверный пароль».
			s.hasher.VerifyDummy(plaintext)
			lg.Warn("login_failed", "reason", "user_not_found")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		lg.Error("user_lookup_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg = lg.With("user_id", user.ID.String())

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		lg.Warn("login_failed", "reason", "wrong_password")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.issuePair(user.Identity)
	if err != nil {
		lg.Error("token_issue_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.Begin(ctx, user.ID, pair.RefreshToken, pair.RefreshExpiresAt); err != nil {
		lg.Error("session_begin_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("login_ok")

	return &models.Session{Tokens: pair, User: user.Identity}, nil
}

// Refresh обменивает живой refresh-токен на новую пару. Предъявленный
// токен после успешного вызова больше не принимается.
func (s *Service) Refresh(ctx context.Context, presented string) (*models.Session, error) {
	const op = "service.auth.Refresh"

	lg := log.From(ctx).With("op", op, "token", redact.Token(presented))

	userID, err := s.tokens.VerifyRefresh(presented)
	if err != nil {
		lg.Warn("refresh_rejected", "reason", "verify", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	lg = lg.With("user_id", userID.String())

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("refresh_rejected", "reason", "user_not_found")
			return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
		}

		lg.Error("user_lookup_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	valid, err := s.sessions.Valid(ctx, user.ID, presented)
	if err != nil {
		lg.Error("session_read_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !valid {
		lg.Warn("refresh_rejected", "reason", "stale")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	pair, err := s.issuePair(user.Identity)
	if err != nil {
		lg.Error("token_issue_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.Rotate(ctx, user.ID, presented, pair.RefreshToken, pair.RefreshExpiresAt); err != nil {
		if errors.Is(err, session.ErrStale) {
			lg.Warn("refresh_rejected", "reason", "lost_race")
			return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
		}

		lg.Error("session_rotate_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("refresh_ok")

	return &models.Session{Tokens: pair, User: user.Identity}, nil
}

// Logout закрывает сессию пользователя. Повторный вызов не ошибка.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	const op = "service.auth.Logout"

	if err := s.sessions.End(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.From(ctx).Error("session_end_failed", "op", op, "user_id", userID.String(), "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ChangePassword меняет пароль после проверки текущего. Refresh-слот
// сбрасывается, только если включён auth.revoke_sessions_on_password_change.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	const op = "service.auth.ChangePassword"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("user_lookup_failed", "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	if !s.hasher.Verify(current, user.PasswordHash) {
		lg.Warn("change_password_failed", "reason", "wrong_password")
		return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := validatePassword(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	digest, err := s.hasher.Hash(next)
	if err != nil {
		lg.Error("password_hash_failed", "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, digest); err != nil {
		lg.Error("update_password_failed", "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.cfg.RevokeSessionsOnPasswordChange {
		if err := s.sessions.End(ctx, userID); err != nil {
			lg.Error("session_end_failed", "err", err)
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	lg.Info("password_changed")

	return nil
}

// issuePair выпускает access и refresh токены для пользователя.
func (s *Service) issuePair(id models.Identity) (*models.TokenPair, error) {
	access, accessExp, err := s.tokens.IssueAccess(id)
	if err != nil {
		return nil, err
	}

	refresh, refreshExp, err := s.tokens.IssueRefresh(id.ID)
	if err != nil {
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}
