// tokens выпускает и проверяет подписанные JWT (HS256) двух видов:
// access (короткий TTL, профиль пользователя в claims) и refresh
// (длинный TTL, только идентификатор пользователя).
//
// Виды подписываются независимыми секретами и дополнительно различаются
// claim'ом typ, поэтому access-токен никогда не проходит проверку как refresh
// и наоборот. Manager не делает I/O и безопасен для конкурентного использования.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pribylovaa/session-service/internal/config"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"

	leeway = 5 * time.Second
)

var (
	// ErrMalformed — строка не является корректным JWT.
	ErrMalformed = errors.New("token malformed")
	// ErrSignature — подпись не сходится (чужой секрет, подмена, чужой алгоритм).
	ErrSignature = errors.New("token signature invalid")
	// ErrExpired — срок действия истёк.
	ErrExpired = errors.New("token expired")
	// ErrClaims — подпись верна, но claims не те (issuer, audience, typ, subject).
	ErrClaims = errors.New("token claims invalid")

	// ErrMissingSecret — при создании Manager не задан один из секретов.
	ErrMissingSecret = errors.New("signing secret is missing")
	// ErrSharedSecret — секреты access и refresh совпадают.
	ErrSharedSecret = errors.New("access and refresh secrets must differ")
)

// Manager — Token Issuer + Token Verifier над неизменяемой конфигурацией.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	audience      []string
	now           func() time.Time
}

// NewManager проверяет конфигурацию и создаёт Manager.
// Отсутствие или совпадение секретов — фатальная ошибка старта.
func NewManager(cfg config.AuthConfig) (*Manager, error) {
	const op = "tokens.NewManager"

	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingSecret)
	}

	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return nil, fmt.Errorf("%s: %w", op, ErrSharedSecret)
	}

	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("%s: token ttl must be positive", op)
	}

	return &Manager{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		issuer:        cfg.Issuer,
		audience:      append([]string(nil), cfg.Audience...),
		now:           func() time.Time { return time.Now().UTC() },
	}, nil
}

// AccessTTL возвращает время жизни access-токена.
func (m *Manager) AccessTTL() time.Duration { return m.accessTTL }

// RefreshTTL возвращает время жизни refresh-токена.
func (m *Manager) RefreshTTL() time.Duration { return m.refreshTTL }

func (m *Manager) registered(subject string, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   subject,
		Audience:  jwt.ClaimStrings(m.audience),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (m *Manager) sign(claims jwt.Claims, secret []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// parse проверяет подпись, срок, issuer и audience и раскладывает ошибки
// jwt по типизированным ErrMalformed/ErrSignature/ErrExpired/ErrClaims.
func (m *Manager) parse(tokenStr string, claims jwt.Claims, secret []byte) error {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(leeway),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if len(m.audience) > 0 {
		opts = append(opts, jwt.WithAudience(m.audience...))
	}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, opts...)

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	default:
		return ErrClaims
	}

	if !token.Valid {
		return ErrClaims
	}

	return nil
}
