package handlers

import (
	"net/http"

	"github.com/pribylovaa/session-service/internal/service"
	apierrors "github.com/pribylovaa/session-service/internal/transport/http/errors"
)

// Register — POST /users/register. Сессию не открывает.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := h.bind(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	id, err := h.svc.Register(r.Context(), service.RegisterInput{
		FullName: in.FullName,
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userFromModel(id))
}

// Login — POST /users/login. Токены уходят и в cookie, и в теле.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := h.bind(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	sess, err := h.svc.Login(r.Context(), in.identifier(), in.Password)
	h.observe("login", err)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.setTokenCookies(w, sess.Tokens)
	writeJSON(w, http.StatusOK, sessionFromModel(sess))
}

// RefreshToken — POST /users/refresh-token.
// Refresh-токен берётся из cookie refreshToken, иначе из тела.
func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := h.bindOptional(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	presented := in.RefreshToken
	if c, err := r.Cookie(CookieRefreshToken); err == nil && c.Value != "" {
		presented = c.Value
	}

	if presented == "" {
		h.observe("refresh", service.ErrUnauthenticated)
		apierrors.WriteError(w, r, service.ErrUnauthenticated)
		return
	}

	sess, err := h.svc.Refresh(r.Context(), presented)
	h.observe("refresh", err)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.setTokenCookies(w, sess.Tokens)
	writeJSON(w, http.StatusOK, sessionFromModel(sess))
}

// Logout — DELETE /users/logout. Чистит слот и cookie.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.svc.Logout(r.Context(), id.ID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.clearTokenCookies(w)
	writeJSON(w, http.StatusOK, okResponse{Ok: true})
}

// ChangePassword — POST /users/change-password.
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var in changePasswordRequest
	if err := h.bind(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.ChangePassword(r.Context(), id.ID, in.OldPassword, in.NewPassword); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{Ok: true})
}
