package handlers

import (
	"net/http"

	"github.com/pribylovaa/session-service/internal/storage"
	apierrors "github.com/pribylovaa/session-service/internal/transport/http/errors"
)

// CurrentUser — GET /users/current-user.
func (h *Handlers) CurrentUser(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	user, err := h.svc.CurrentUser(r.Context(), id.ID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

// UpdateAccount — PATCH /users/update-account-details.
func (h *Handlers) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var in updateAccountRequest
	if err := h.bind(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	user, err := h.svc.UpdateAccount(r.Context(), id.ID, in.FullName, in.Email)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}

// AvatarPresign — POST /users/avatar/presign.
func (h *Handlers) AvatarPresign(w http.ResponseWriter, r *http.Request) {
	h.presignImage(w, r, storage.ImageAvatar)
}

// AvatarConfirm — POST /users/avatar/confirm (и PATCH /users/update-avatar).
func (h *Handlers) AvatarConfirm(w http.ResponseWriter, r *http.Request) {
	h.confirmImage(w, r, storage.ImageAvatar)
}

// CoverPresign — POST /users/cover-image/presign.
func (h *Handlers) CoverPresign(w http.ResponseWriter, r *http.Request) {
	h.presignImage(w, r, storage.ImageCover)
}

// CoverConfirm — POST /users/cover-image/confirm (и PATCH /users/update-cover-image).
func (h *Handlers) CoverConfirm(w http.ResponseWriter, r *http.Request) {
	h.confirmImage(w, r, storage.ImageCover)
}

func (h *Handlers) presignImage(w http.ResponseWriter, r *http.Request, kind storage.ImageKind) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var in imagePresignRequest
	if err := h.bind(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	info, err := h.svc.ImageUploadURL(r.Context(), id.ID, kind, in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presignFromModel(info))
}

func (h *Handlers) confirmImage(w http.ResponseWriter, r *http.Request, kind storage.ImageKind) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var in imageConfirmRequest
	if err := h.bind(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	user, err := h.svc.ConfirmImage(r.Context(), id.ID, kind, in.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(user))
}
