package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/pkg/log"
	"github.com/pribylovaa/session-service/internal/service"
	apierrors "github.com/pribylovaa/session-service/internal/transport/http/errors"
)

// CookieAccessToken — cookie с access-токеном.
const CookieAccessToken = "accessToken"

// Authenticator проверяет access-токен и возвращает пользователя.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.Identity, error)
}

type identityKey struct{}

// Authenticate пропускает запрос дальше только с валидным access-токеном.
// Токен берётся из cookie accessToken, иначе из Authorization: Bearer.
// Пользователь кладётся в контекст, user_id добавляется в логгер запроса.
func Authenticate(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := accessToken(r)
			if token == "" {
				apierrors.WriteError(w, r, fmt.Errorf("middleware.Authenticate: %w", service.ErrUnauthenticated))
				return
			}

			id, err := a.Authenticate(r.Context(), token)
			if err != nil {
				log.From(r.Context()).Debug("access_rejected", "err", err)
				apierrors.WriteError(w, r, err)
				return
			}

			ctx, _ := log.With(r.Context(), "user_id", id.ID.String())
			ctx = context.WithValue(ctx, identityKey{}, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom достаёт пользователя, положенного Authenticate.
func IdentityFrom(ctx context.Context) (*models.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*models.Identity)
	return id, ok && id != nil
}

// WithIdentity кладёт пользователя в контекст (для тестов хендлеров).
func WithIdentity(ctx context.Context, id *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func accessToken(r *http.Request) string {
	if c, err := r.Cookie(CookieAccessToken); err == nil && c.Value != "" {
		return c.Value
	}

	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, prefix) && len(auth) > len(prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}

	return ""
}
