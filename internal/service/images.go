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

// imageSlot связывает вид изображения с полем профиля и методом его записи.
type imageSlot struct {
	current func(*models.Identity) *string
	save    func(ctx context.Context, users storage.UserStorage, id uuid.UUID, url string) error
}

var imageSlots = map[storage.ImageKind]imageSlot{
	storage.ImageAvatar: {
		current: func(id *models.Identity) *string { return &id.Avatar },
		save: func(ctx context.Context, users storage.UserStorage, id uuid.UUID, url string) error {
			return users.UpdateAvatar(ctx, id, url)
		},
	},
	storage.ImageCover: {
		current: func(id *models.Identity) *string { return &id.CoverImage },
		save: func(ctx context.Context, users storage.UserStorage, id uuid.UUID, url string) error {
			return users.UpdateCoverImage(ctx, id, url)
		},
	},
}

// ImageUploadURL выдаёт presigned PUT URL для загрузки аватара или обложки
// в S3/MinIO. Ограничения по типу и размеру проверяет хранилище.
func (s *Service) ImageUploadURL(ctx context.Context, userID uuid.UUID, kind storage.ImageKind, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.images.ImageUploadURL"

	if s.images == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrAvatarsDisabled)
	}

	if _, ok := imageSlots[kind]; !ok {
		return nil, fmt.Errorf("%s: kind %q: %w", op, kind, ErrInvalidArgument)
	}

	if strings.TrimSpace(contentType) == "" || contentLength <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	lg := log.From(ctx).With("op", op, "user_id", userID.String(), "kind", string(kind))

	info, err := s.images.ImageUploadURL(ctx, userID, kind, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			lg.Warn("image_presign_rejected", "content_type", contentType, "content_length", contentLength)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		lg.Error("image_presign_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// ConfirmImage проверяет загруженный объект, сохраняет его URL в поле
// профиля, соответствующем kind, и удаляет предыдущий объект того же вида.
// Ошибка удаления старого объекта не фатальна.
func (s *Service) ConfirmImage(ctx context.Context, userID uuid.UUID, kind storage.ImageKind, key string) (*models.Identity, error) {
	const op = "service.images.ConfirmImage"

	if s.images == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrAvatarsDisabled)
	}

	slot, ok := imageSlots[kind]
	if !ok || strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	lg := log.From(ctx).With("op", op, "user_id", userID.String(), "kind", string(kind), "key", key)

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	publicURL, err := s.images.CheckImageUpload(ctx, userID, kind, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("image_confirm_rejected", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("image_object_not_found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("image_check_failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := slot.save(ctx, s.users, userID, publicURL); err != nil {
		lg.Error("image_save_failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id := user.Identity
	field := slot.current(&id)

	if prev := *field; prev != "" && prev != publicURL {
		if err := s.images.RemoveImage(ctx, userID, kind, prev); err != nil {
			lg.Warn("image_remove_failed", "err", err)
		}
	}

	*field = publicURL

	return &id, nil
}
