// redact маскирует данные, которые попадают в логи сервиса сессий:
// e-mail, идентификатор входа и токены. Пароли в логи не пишутся вовсе.
package redact

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const mask = "***"

// Email оставляет первые две руны локальной части и домен.
// Строка не с одним '@' маскируется целиком; локальная часть
// короче трёх рун заменяется маской.
//
//	"foobar@example.com" -> "fo***@example.com"
//	"ab@ex.com"          -> "***@ex.com"
func Email(s string) string {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return mask
	}

	r := []rune(local)
	if len(r) <= 2 {
		return mask + "@" + domain
	}

	return string(r[:2]) + mask + "@" + domain
}

// Login маскирует идентификатор входа: e-mail как Email,
// username — до первых двух рун.
func Login(s string) string {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "@") {
		return Email(s)
	}

	r := []rune(s)
	if len(r) <= 2 {
		return mask
	}

	return string(r[:2]) + mask
}

// Token возвращает короткий отпечаток токена (первые 8 hex SHA-256),
// по которому можно сопоставить записи лога, не раскрывая сам токен.
func Token(tok string) string {
	if tok == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(tok))
	return "sha256:" + hex.EncodeToString(sum[:4])
}
