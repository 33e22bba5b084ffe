// minio реализует storage.ImagesStorage поверх MinIO/S3.
// minio.go — конструктор клиента: нормализует endpoint, настраивает
// Secure/creds и проверяет наличие бакета.
// images.go — presigned PUT, подтверждение загрузки и удаление старого объекта
// для аватаров и обложек профиля.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pribylovaa/session-service/internal/config"
	"github.com/pribylovaa/session-service/internal/storage"
)

// ImagesStorage — адаптер MinIO для изображений профиля.
type ImagesStorage struct {
	s3      config.S3Config
	avatar  config.AvatarConfig
	client  *mclient.Client
	baseURL string // префикс публичных URL объектов
}

// New создает клиент MinIO и выполняет fail-fast-проверку бакета.
func New(ctx context.Context, s3 config.S3Config, avatar config.AvatarConfig) (*ImagesStorage, error) {
	const op = "storage.minio.New"

	endpoint := s3.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(s3.RootUser, s3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, s3.Bucket)
	}

	// Без PublicBaseURL объекты адресуются path-style через сам endpoint.
	base := strings.TrimRight(s3.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if secure {
			scheme = "https"
		}
		base = scheme + "://" + endpoint + "/" + s3.Bucket
	}

	return &ImagesStorage{s3: s3, avatar: avatar, client: client, baseURL: base}, nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.ImagesStorage = (*ImagesStorage)(nil)
