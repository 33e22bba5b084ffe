package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RefreshClaims — полезная нагрузка refresh-токена: только идентификатор
// пользователя, чтобы смена профиля не инвалидировала выданные токены.
// ID (jti) случаен, поэтому два токена, выпущенные в одну секунду, различаются.
type RefreshClaims struct {
	UserID string `json:"_id"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

// IssueRefresh подписывает refresh-токен для пользователя.
func (m *Manager) IssueRefresh(userID uuid.UUID) (string, time.Time, error) {
	const op = "tokens.IssueRefresh"

	now := m.now()
	exp := now.Add(m.refreshTTL)

	claims := RefreshClaims{
		UserID:           userID.String(),
		Type:             typeRefresh,
		RegisteredClaims: m.registered(userID.String(), now, m.refreshTTL),
	}
	claims.ID = uuid.NewString()

	signed, err := m.sign(claims, m.refreshSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, exp, nil
}

// VerifyRefresh проверяет refresh-токен и возвращает идентификатор владельца.
func (m *Manager) VerifyRefresh(tokenStr string) (uuid.UUID, error) {
	const op = "tokens.VerifyRefresh"

	var claims RefreshClaims
	if err := m.parse(tokenStr, &claims, m.refreshSecret); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if claims.Type != typeRefresh || claims.ID == "" {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrClaims)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil || claims.Subject != claims.UserID {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrClaims)
	}

	return uid, nil
}
