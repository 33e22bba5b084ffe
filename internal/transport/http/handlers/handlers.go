// handlers содержит REST-хендлеры сервиса сессий.
//
// Хендлер декодирует тело строго (неизвестные поля запрещены), валидирует
// DTO тегами validator, вызывает сервис и пишет JSON. Ошибки отдаются
// через apierrors.WriteError.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pribylovaa/session-service/internal/config"
	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/service"
	"github.com/pribylovaa/session-service/internal/storage"
	apierrors "github.com/pribylovaa/session-service/internal/transport/http/errors"
	"github.com/pribylovaa/session-service/internal/transport/http/middleware"
)

// maxBodyBytes ограничивает размер JSON-тела запроса.
const maxBodyBytes = 1 << 20

// Service — операции сервисного слоя, которые вызывает транспорт.
type Service interface {
	Register(ctx context.Context, in service.RegisterInput) (*models.Identity, error)
	Login(ctx context.Context, identifier, plaintext string) (*models.Session, error)
	Refresh(ctx context.Context, presented string) (*models.Session, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.Identity, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.Identity, error)
	ImageUploadURL(ctx context.Context, userID uuid.UUID, kind storage.ImageKind, contentType string, contentLength int64) (*storage.UploadInfo, error)
	ConfirmImage(ctx context.Context, userID uuid.UUID, kind storage.ImageKind, key string) (*models.Identity, error)
}

// AuthObserver учитывает исходы login/refresh. Может быть nil.
type AuthObserver interface {
	AuthOutcome(operation, outcome string)
}

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	svc      Service
	cookies  config.CookieConfig
	observer AuthObserver
	validate *validator.Validate
}

// New создаёт хендлеры.
func New(svc Service, cookies config.CookieConfig, observer AuthObserver) *Handlers {
	return &Handlers{
		svc:      svc,
		cookies:  cookies,
		observer: observer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// bind декодирует и валидирует тело. Любая ошибка — ErrInvalidArgument.
func (h *Handlers) bind(w http.ResponseWriter, r *http.Request, value any) error {
	if err := decodeStrict(w, r, value); err != nil {
		return fmt.Errorf("handlers.bind: decode: %w", service.ErrInvalidArgument)
	}

	if err := h.validate.Struct(value); err != nil {
		return fmt.Errorf("handlers.bind: %s: %w", validationField(err), service.ErrInvalidArgument)
	}

	return nil
}

// bindOptional — как bind, но пустое тело допустимо.
func (h *Handlers) bindOptional(w http.ResponseWriter, r *http.Request, value any) error {
	if err := decodeStrict(w, r, value); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("handlers.bindOptional: decode: %w", service.ErrInvalidArgument)
	}

	if err := h.validate.Struct(value); err != nil {
		return fmt.Errorf("handlers.bindOptional: %s: %w", validationField(err), service.ErrInvalidArgument)
	}

	return nil
}

func validationField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return "body"
}

// identity достаёт пользователя, положенного middleware.Authenticate.
func identity(w http.ResponseWriter, r *http.Request) (*models.Identity, bool) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrUnauthenticated)
		return nil, false
	}
	return id, true
}

func (h *Handlers) observe(operation string, err error) {
	if h.observer == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = apierrors.Code(err)
	}
	h.observer.AuthOutcome(operation, outcome)
}
