// service содержит бизнес-логику сервиса сессий: регистрацию, вход,
// ротацию refresh-токена, выход, смену пароля и работу с профилем.
//
// Основные аспекты:
//   - Service не хранит состояние запроса и безопасен для конкурентного
//     использования, если потокобезопасны переданные хранилища;
//   - ожидаемые отказы возвращаются сентинел-ошибками ниже, всё остальное
//     оборачивается через op и на транспорте становится 500.
package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/pribylovaa/session-service/internal/config"
	"github.com/pribylovaa/session-service/internal/password"
	"github.com/pribylovaa/session-service/internal/session"
	"github.com/pribylovaa/session-service/internal/storage"
	"github.com/pribylovaa/session-service/internal/tokens"
)

var (
	// ErrInvalidCredentials — пользователь не найден или пароль неверен.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated — токен не прошёл проверку или refresh-токен уже
	// не совпадает с сохранённым. Транспорт: HTTP 401.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrConflict — username или email уже заняты. Транспорт: HTTP 409.
	ErrConflict = errors.New("username or email already taken")

	// ErrInvalidArgument — входные данные не прошли валидацию. Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound — пользователь или объект не найден. Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrAvatarsDisabled — объектное хранилище не сконфигурировано (аватары
	// и обложки). Транспорт: HTTP 501.
	ErrAvatarsDisabled = errors.New("image uploads are disabled")
)

// Service описывает бизнес-логику сервиса сессий.
type Service struct {
	users    storage.UserStorage
	sessions *session.Store
	tokens   *tokens.Manager
	hasher   *password.Hasher
	images   storage.ImagesStorage // может быть nil, если S3 не сконфигурирован
	cfg      config.AuthConfig
	validate *validator.Validate
}

// New создаёт новый экземпляр Service.
func New(users storage.UserStorage, sessions *session.Store, tm *tokens.Manager, hasher *password.Hasher, cfg config.AuthConfig) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tm,
		hasher:   hasher,
		cfg:      cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SetImages подключает объектное хранилище изображений профиля (опционально).
func (s *Service) SetImages(st storage.ImagesStorage) {
	s.images = st
}
