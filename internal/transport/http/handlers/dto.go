package handlers

import (
	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/storage"
)

type registerRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginRequest — вход по username или email.
type loginRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=Username"`
	Password string `json:"password" validate:"required"`
}

func (r loginRequest) identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type updateAccountRequest struct {
	FullName string `json:"full_name" validate:"required_without=Email"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type imagePresignRequest struct {
	ContentType   string `json:"content_type" validate:"required"`
	ContentLength int64  `json:"content_length" validate:"gt=0"`
}

type imageConfirmRequest struct {
	Key string `json:"key" validate:"required"`
}

// Ответы.

type userResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Avatar     string `json:"avatar,omitempty"`
	CoverImage string `json:"cover_image,omitempty"`
	CreatedAt  int64  `json:"created_at"` // Unix UTC
	UpdatedAt  int64  `json:"updated_at"` // Unix UTC
}

type sessionResponse struct {
	User             userResponse `json:"user"`
	AccessToken      string       `json:"access_token"`
	RefreshToken     string       `json:"refresh_token"`
	AccessExpiresAt  int64        `json:"access_expires_at"`  // Unix UTC
	RefreshExpiresAt int64        `json:"refresh_expires_at"` // Unix UTC
}

type okResponse struct {
	Ok bool `json:"ok"`
}

type imagePresignResponse struct {
	UploadURL      string            `json:"upload_url"`
	Key            string            `json:"key"`
	ExpiresSeconds int64             `json:"expires_seconds"`
	RequiredHeader map[string]string `json:"required_headers"`
}

func userFromModel(id *models.Identity) userResponse {
	return userResponse{
		ID:         id.ID.String(),
		Username:   id.Username,
		Email:      id.Email,
		FullName:   id.FullName,
		Avatar:     id.Avatar,
		CoverImage: id.CoverImage,
		CreatedAt:  id.CreatedAt.Unix(),
		UpdatedAt:  id.UpdatedAt.Unix(),
	}
}

func sessionFromModel(s *models.Session) sessionResponse {
	return sessionResponse{
		User:             userFromModel(&s.User),
		AccessToken:      s.Tokens.AccessToken,
		RefreshToken:     s.Tokens.RefreshToken,
		AccessExpiresAt:  s.Tokens.AccessExpiresAt.Unix(),
		RefreshExpiresAt: s.Tokens.RefreshExpiresAt.Unix(),
	}
}

func presignFromModel(info *storage.UploadInfo) imagePresignResponse {
	return imagePresignResponse{
		UploadURL:      info.UploadURL,
		Key:            info.Key,
		ExpiresSeconds: int64(info.Expires.Seconds()),
		RequiredHeader: info.RequiredHeader,
	}
}
