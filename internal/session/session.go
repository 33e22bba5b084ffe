// session управляет единственным refresh-слотом пользователя: запись при
// логине, атомарная ротация, очистка при логауте.
//
// В хранилище попадает только SHA-256 от refresh-токена; сам токен
// сервис не хранит.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/session-service/internal/lock"
	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/storage"
)

// ErrStale — предъявленный refresh-токен не совпадает с текущим слотом
// (уже ротирован, отозван или истёк).
var ErrStale = errors.New("refresh token is stale")

// Store — адаптер над storage.SessionStorage с per-user блокировкой.
type Store struct {
	st     storage.SessionStorage
	locker lock.Locker
	now    func() time.Time
}

// NewStore собирает адаптер. nil locker — блокировки внутри процесса.
func NewStore(st storage.SessionStorage, locker lock.Locker) *Store {
	if locker == nil {
		locker = lock.NewLocal()
	}

	return &Store{st: st, locker: locker, now: time.Now}
}

// HashToken — base64url(SHA-256(token)), в таком виде слот хранится в каталоге.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func (s *Store) lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	return s.locker.Lock(ctx, userID.String())
}

// Current возвращает текущий слот; пустой, если сессии нет.
func (s *Store) Current(ctx context.Context, userID uuid.UUID) (models.RefreshSlot, error) {
	const op = "session.Current"

	slot, err := s.st.RefreshSlot(ctx, userID)
	if err != nil {
		return models.RefreshSlot{}, fmt.Errorf("%s: %w", op, err)
	}

	return slot, nil
}

// Valid сообщает, совпадает ли presented с живым слотом пользователя.
func (s *Store) Valid(ctx context.Context, userID uuid.UUID, presented string) (bool, error) {
	const op = "session.Valid"

	slot, err := s.Current(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return !slot.Expired(s.now()) && slot.Matches(HashToken(presented)), nil
}

// Begin безусловно записывает новый слот; прежняя сессия перестаёт действовать.
func (s *Store) Begin(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	const op = "session.Begin"

	unlock, err := s.lock(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer unlock()

	slot := models.RefreshSlot{TokenHash: HashToken(token), ExpiresAt: expiresAt.UTC()}
	if err := s.st.SetRefreshSlot(ctx, userID, slot); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Rotate заменяет слот на next, только если в нём всё ещё presented.
// Иначе возвращает ErrStale и слот не трогает.
func (s *Store) Rotate(ctx context.Context, userID uuid.UUID, presented, next string, nextExpiresAt time.Time) error {
	const op = "session.Rotate"

	unlock, err := s.lock(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer unlock()

	expected := HashToken(presented)

	cur, err := s.st.RefreshSlot(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cur.Expired(s.now()) || !cur.Matches(expected) {
		return fmt.Errorf("%s: %w", op, ErrStale)
	}

	swapped, err := s.st.SwapRefreshSlot(ctx, userID, expected, models.RefreshSlot{
		TokenHash: HashToken(next),
		ExpiresAt: nextExpiresAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// Слот поменял другой экземпляр сервиса между чтением и CAS.
	if !swapped {
		return fmt.Errorf("%s: %w", op, ErrStale)
	}

	return nil
}

// End очищает слот. Повторный вызов ничего не меняет.
func (s *Store) End(ctx context.Context, userID uuid.UUID) error {
	const op = "session.End"

	unlock, err := s.lock(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer unlock()

	if err := s.st.SetRefreshSlot(ctx, userID, models.RefreshSlot{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Sweep удаляет истёкшие слоты всех пользователей; возвращает их число.
func (s *Store) Sweep(ctx context.Context) (int64, error) {
	const op = "session.Sweep"

	n, err := s.st.ClearExpiredRefreshSlots(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
