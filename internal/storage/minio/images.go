package minio

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/pribylovaa/session-service/internal/storage"
)

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// keyPrefix — префикс ключей пользователя для данного вида изображения:
// "avatars/<userID>/" или "covers/<userID>/".
func keyPrefix(userID uuid.UUID, kind storage.ImageKind) string {
	return string(kind) + "/" + userID.String() + "/"
}

// ownsKey сообщает, что key лежит под префиксом пользователя и не выходит
// из него через "..".
func ownsKey(userID uuid.UUID, kind storage.ImageKind, key string) bool {
	return strings.HasPrefix(key, keyPrefix(userID, kind)) && !strings.Contains(key, "..")
}

func validKind(kind storage.ImageKind) bool {
	return kind == storage.ImageAvatar || kind == storage.ImageCover
}

func isNoSuchKey(err error) bool {
	resp := mclient.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}

// ImageUploadURL генерирует presigned PUT URL для загрузки изображения.
// Ключ имеет вид "<kind>/<userID>/<uuid>.<ext>"; RequiredHeader содержит
// заголовки, которые клиент обязан передать при PUT.
func (s *ImagesStorage) ImageUploadURL(ctx context.Context, userID uuid.UUID, kind storage.ImageKind, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage.minio.ImageUploadURL"

	if !validKind(kind) {
		return nil, fmt.Errorf("%s: kind %q: %w", op, kind, storage.ErrInvalidArgument)
	}

	if contentLength <= 0 || contentLength > s.avatar.MaxSizeBytes {
		return nil, fmt.Errorf("%s: size %d: %w", op, contentLength, storage.ErrInvalidArgument)
	}

	if !slices.Contains(s.avatar.AllowedContentTypes, contentType) {
		return nil, fmt.Errorf("%s: content type %q: %w", op, contentType, storage.ErrInvalidArgument)
	}

	key := path.Join(string(kind), userID.String(), uuid.NewString()+extByContentType[contentType])

	u, err := s.client.PresignedPutObject(ctx, s.s3.Bucket, key, s.s3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadInfo{
		UploadURL: u.String(),
		Key:       key,
		Expires:   s.s3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": strconv.FormatInt(contentLength, 10),
		},
	}, nil
}

// CheckImageUpload проверяет, что объект по key принадлежит пользователю
// и нужному виду, существует и укладывается в ограничения. Возвращает
// публичный URL.
func (s *ImagesStorage) CheckImageUpload(ctx context.Context, userID uuid.UUID, kind storage.ImageKind, key string) (string, error) {
	const op = "storage.minio.CheckImageUpload"

	if !validKind(kind) || !ownsKey(userID, kind, key) {
		return "", fmt.Errorf("%s: foreign key: %w", op, storage.ErrInvalidArgument)
	}

	info, err := s.client.StatObject(ctx, s.s3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if info.Size <= 0 || info.Size > s.avatar.MaxSizeBytes {
		return "", fmt.Errorf("%s: size %d: %w", op, info.Size, storage.ErrInvalidArgument)
	}

	if ct := info.ContentType; ct != "" && !slices.Contains(s.avatar.AllowedContentTypes, ct) {
		return "", fmt.Errorf("%s: content type %q: %w", op, ct, storage.ErrInvalidArgument)
	}

	return s.baseURL + "/" + key, nil
}

// RemoveImage удаляет объект, на который указывает publicURL. URL вне
// нашего бакета, чужого пользователя или другого вида игнорируется.
func (s *ImagesStorage) RemoveImage(ctx context.Context, userID uuid.UUID, kind storage.ImageKind, publicURL string) error {
	const op = "storage.minio.RemoveImage"

	key, ok := strings.CutPrefix(publicURL, s.baseURL+"/")
	if !ok || !validKind(kind) || !ownsKey(userID, kind, key) {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.s3.Bucket, key, mclient.RemoveObjectOptions{}); err != nil && !isNoSuchKey(err) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
