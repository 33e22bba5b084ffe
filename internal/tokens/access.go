package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/session-service/internal/models"
)

// AccessClaims — полезная нагрузка access-токена.
type AccessClaims struct {
	UserID   string `json:"_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Type     string `json:"typ"`
	jwt.RegisteredClaims
}

// Identity возвращает идентификатор пользователя из claims.
func (c *AccessClaims) Identity() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// IssueAccess подписывает access-токен для пользователя.
func (m *Manager) IssueAccess(id models.Identity) (string, time.Time, error) {
	const op = "tokens.IssueAccess"

	now := m.now()
	exp := now.Add(m.accessTTL)

	claims := AccessClaims{
		UserID:           id.ID.String(),
		Email:            id.Email,
		Username:         id.Username,
		FullName:         id.FullName,
		Type:             typeAccess,
		RegisteredClaims: m.registered(id.ID.String(), now, m.accessTTL),
	}

	signed, err := m.sign(claims, m.accessSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, exp, nil
}

// VerifyAccess проверяет access-токен и возвращает его claims.
func (m *Manager) VerifyAccess(tokenStr string) (*AccessClaims, error) {
	const op = "tokens.VerifyAccess"

	var claims AccessClaims
	if err := m.parse(tokenStr, &claims, m.accessSecret); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if claims.Type != typeAccess {
		return nil, fmt.Errorf("%s: %w", op, ErrClaims)
	}

	if _, err := uuid.Parse(claims.UserID); err != nil || claims.Subject != claims.UserID {
		return nil, fmt.Errorf("%s: %w", op, ErrClaims)
	}

	return &claims, nil
}
