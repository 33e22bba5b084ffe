package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/storage"
)

// slotArgs раскладывает слот в параметры запроса: пустой слот хранится
// как пустая строка хэша и NULL в refresh_expires_at.
func slotArgs(slot models.RefreshSlot) (string, pgtype.Timestamptz) {
	if slot.Empty() {
		return "", pgtype.Timestamptz{}
	}

	return slot.TokenHash, pgtype.Timestamptz{Time: slot.ExpiresAt.UTC(), Valid: true}
}

// RefreshSlot возвращает текущий refresh-слот пользователя.
func (s *Storage) RefreshSlot(ctx context.Context, id uuid.UUID) (models.RefreshSlot, error) {
	const op = "storage.postgres.RefreshSlot"

	var (
		hash string
		exp  pgtype.Timestamptz
	)

	err := s.db.QueryRow(ctx,
		`SELECT refresh_token_hash, refresh_expires_at FROM users WHERE id = $1`,
		id,
	).Scan(&hash, &exp)
	if err != nil {
		return models.RefreshSlot{}, mapErr(op, err)
	}

	slot := models.RefreshSlot{TokenHash: hash}
	if exp.Valid {
		slot.ExpiresAt = exp.Time
	}

	return slot, nil
}

// SetRefreshSlot безусловно перезаписывает слот (логин и логаут).
func (s *Storage) SetRefreshSlot(ctx context.Context, id uuid.UUID, slot models.RefreshSlot) error {
	const op = "storage.postgres.SetRefreshSlot"

	hash, exp := slotArgs(slot)

	tag, err := s.db.Exec(ctx,
		`UPDATE users SET refresh_token_hash = $2, refresh_expires_at = $3 WHERE id = $1`,
		id, hash, exp,
	)
	if err != nil {
		return mapErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SwapRefreshSlot заменяет слот, только если в нём всё ещё лежит expectedHash.
// false без ошибки — слот уже изменён другим запросом.
func (s *Storage) SwapRefreshSlot(ctx context.Context, id uuid.UUID, expectedHash string, next models.RefreshSlot) (bool, error) {
	const op = "storage.postgres.SwapRefreshSlot"

	if expectedHash == "" {
		return false, nil
	}

	hash, exp := slotArgs(next)

	tag, err := s.db.Exec(ctx,
		`UPDATE users
		 SET refresh_token_hash = $3, refresh_expires_at = $4
		 WHERE id = $1 AND refresh_token_hash = $2`,
		id, expectedHash, hash, exp,
	)
	if err != nil {
		return false, mapErr(op, err)
	}

	if tag.RowsAffected() == 1 {
		return true, nil
	}

	// Отличаем «нет пользователя» от «слот не совпал».
	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, mapErr(op, err)
	}

	if !exists {
		return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return false, nil
}

// ClearExpiredRefreshSlots очищает слоты с истёкшим сроком действия.
func (s *Storage) ClearExpiredRefreshSlots(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.postgres.ClearExpiredRefreshSlots"

	tag, err := s.db.Exec(ctx,
		`UPDATE users
		 SET refresh_token_hash = '', refresh_expires_at = NULL
		 WHERE refresh_token_hash <> '' AND refresh_expires_at <= $1`,
		now.UTC(),
	)
	if err != nil {
		return 0, mapErr(op, err)
	}

	return tag.RowsAffected(), nil
}
