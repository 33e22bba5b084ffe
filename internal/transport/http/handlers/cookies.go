package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/transport/http/middleware"
)

// CookieRefreshToken — cookie с refresh-токеном.
const CookieRefreshToken = "refreshToken"

func sameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (h *Handlers) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     h.cookies.Path,
		Domain:   h.cookies.Domain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   !h.cookies.Insecure,
		SameSite: sameSite(h.cookies.SameSite),
	}
}

// setTokenCookies отдаёт пару токенов в HttpOnly cookie.
func (h *Handlers) setTokenCookies(w http.ResponseWriter, pair *models.TokenPair) {
	http.SetCookie(w, h.cookie(middleware.CookieAccessToken, pair.AccessToken, pair.AccessExpiresAt))
	http.SetCookie(w, h.cookie(CookieRefreshToken, pair.RefreshToken, pair.RefreshExpiresAt))
}

// clearTokenCookies удаляет обе cookie у клиента.
func (h *Handlers) clearTokenCookies(w http.ResponseWriter) {
	for _, name := range []string{middleware.CookieAccessToken, CookieRefreshToken} {
		c := h.cookie(name, "", time.Unix(0, 0))
		c.MaxAge = -1
		http.SetCookie(w, c)
	}
}
