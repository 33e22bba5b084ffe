// storage описывает контракт каталога пользователей (User Directory),
// через который ядро читает пользователей и единственный refresh-слот.
// Реализации: postgres, mongo, memory.
package storage

//go:generate mockgen -source=storage.go -destination=../../mocks/mock_storage.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/session-service/internal/models"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username/email).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — аргумент отклонён хранилищем (ключ/тип/размер объекта).
	ErrInvalidArgument = errors.New("invalid argument")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создаёт пользователя. Дубликат username/email — ErrAlreadyExists.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByLogin находит пользователя по username или email.
	UserByLogin(ctx context.Context, login string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UpdatePasswordHash заменяет bcrypt-дайджест пароля.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	// UpdateAccount меняет ФИО и/или email (пустые значения не трогаются).
	UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) (*models.User, error)
	// UpdateAvatar сохраняет URL аватара.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
	// UpdateCoverImage сохраняет URL обложки профиля.
	UpdateCoverImage(ctx context.Context, id uuid.UUID, coverURL string) error
}

// SessionStorage хранит единственный refresh-слот пользователя.
type SessionStorage interface {
	// RefreshSlot возвращает текущий слот (пустой, если сессии нет).
	RefreshSlot(ctx context.Context, id uuid.UUID) (models.RefreshSlot, error)
	// SetRefreshSlot безусловно перезаписывает слот (login/logout).
	SetRefreshSlot(ctx context.Context, id uuid.UUID, slot models.RefreshSlot) error
	// SwapRefreshSlot атомарно заменяет слот, только если сохранённый дайджест
	// равен expectedHash. Возвращает false, если замена не произошла.
	SwapRefreshSlot(ctx context.Context, id uuid.UUID, expectedHash string, next models.RefreshSlot) (bool, error)
	// ClearExpiredRefreshSlots очищает слоты с expires_at <= now.
	ClearExpiredRefreshSlots(ctx context.Context, now time.Time) (int64, error)
}

// Storage задаёт контракт каталога пользователей.
type Storage interface {
	UserStorage
	SessionStorage
	Close()
}

// ImageKind — вид изображения профиля. Значение совпадает с корневым
// префиксом ключей объектов в бакете.
type ImageKind string

const (
	ImageAvatar ImageKind = "avatars"
	ImageCover  ImageKind = "covers"
)

// UploadInfo — данные для прямой загрузки изображения клиентом.
type UploadInfo struct {
	UploadURL      string
	Key            string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// ImagesStorage — объектное хранилище изображений профиля (аватар, обложка).
type ImagesStorage interface {
	// ImageUploadURL выдаёт presigned PUT URL для загрузки изображения.
	ImageUploadURL(ctx context.Context, userID uuid.UUID, kind ImageKind, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckImageUpload подтверждает загрузку и возвращает публичный URL объекта.
	CheckImageUpload(ctx context.Context, userID uuid.UUID, kind ImageKind, key string) (string, error)
	// RemoveImage удаляет ранее загруженный объект по его публичному URL.
	RemoveImage(ctx context.Context, userID uuid.UUID, kind ImageKind, publicURL string) error
}
