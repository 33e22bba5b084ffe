// memory — потокобезопасная реализация storage.Storage в памяти процесса.
// Используется драйвером "memory" (локальный запуск) и в тестах.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/storage"
)

type record struct {
	user models.User
	slot models.RefreshSlot
}

// Storage хранит пользователей и их refresh-слоты в map под одним мьютексом.
type Storage struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*record
	byLogin map[string]uuid.UUID // username и email в нижнем регистре
}

// New создаёт пустое хранилище.
func New() *Storage {
	return &Storage{
		byID:    make(map[uuid.UUID]*record),
		byLogin: make(map[string]uuid.UUID),
	}
}

func key(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// ctxErr — операции в памяти не блокируются, но отменённый контекст уважаем.
func ctxErr(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.memory.SaveUser"

	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[user.ID]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	if _, ok := s.byLogin[key(user.Username)]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	if _, ok := s.byLogin[key(user.Email)]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	s.byID[user.ID] = &record{user: *user}
	s.byLogin[key(user.Username)] = user.ID
	s.byLogin[key(user.Email)] = user.ID

	return nil
}

func (s *Storage) UserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.memory.UserByLogin"

	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byLogin[key(login)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	u := s.byID[id].user
	return &u, nil
}

func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.memory.UserByID"

	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	u := rec.user
	return &u, nil
}

func (s *Storage) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	const op = "storage.memory.UpdatePasswordHash"

	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	rec.user.PasswordHash = hash
	rec.user.UpdatedAt = time.Now().UTC()

	return nil
}

func (s *Storage) UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) (*models.User, error) {
	const op = "storage.memory.UpdateAccount"

	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if email != "" && key(email) != key(rec.user.Email) {
		if _, taken := s.byLogin[key(email)]; taken {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		delete(s.byLogin, key(rec.user.Email))
		s.byLogin[key(email)] = id
		rec.user.Email = email
	}

	if fullName != "" {
		rec.user.FullName = fullName
	}

	rec.user.UpdatedAt = time.Now().UTC()

	u := rec.user
	return &u, nil
}

func (s *Storage) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	const op = "storage.memory.UpdateAvatar"

	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	rec.user.Avatar = avatarURL
	rec.user.UpdatedAt = time.Now().UTC()

	return nil
}

func (s *Storage) UpdateCoverImage(ctx context.Context, id uuid.UUID, coverURL string) error {
	const op = "storage.memory.UpdateCoverImage"

	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	rec.user.CoverImage = coverURL
	rec.user.UpdatedAt = time.Now().UTC()

	return nil
}

func (s *Storage) RefreshSlot(ctx context.Context, id uuid.UUID) (models.RefreshSlot, error) {
	const op = "storage.memory.RefreshSlot"

	if err := ctxErr(ctx, op); err != nil {
		return models.RefreshSlot{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return models.RefreshSlot{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return rec.slot, nil
}

func (s *Storage) SetRefreshSlot(ctx context.Context, id uuid.UUID, slot models.RefreshSlot) error {
	const op = "storage.memory.SetRefreshSlot"

	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	rec.slot = slot

	return nil
}

func (s *Storage) SwapRefreshSlot(ctx context.Context, id uuid.UUID, expectedHash string, next models.RefreshSlot) (bool, error) {
	const op = "storage.memory.SwapRefreshSlot"

	if err := ctxErr(ctx, op); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if !rec.slot.Matches(expectedHash) {
		return false, nil
	}

	rec.slot = next

	return true, nil
}

func (s *Storage) ClearExpiredRefreshSlots(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.memory.ClearExpiredRefreshSlots"

	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, rec := range s.byID {
		if rec.slot.Expired(now) {
			rec.slot = models.RefreshSlot{}
			n++
		}
	}

	return n, nil
}

// Close ничего не освобождает; нужен для соответствия storage.Storage.
func (s *Storage) Close() {}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
