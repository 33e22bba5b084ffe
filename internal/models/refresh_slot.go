package models

import (
	"crypto/subtle"
	"time"
)

// RefreshSlot — единственный «живой» refresh-токен пользователя.
// В хранилище лежит не сам токен, а его SHA-256 дайджест (TokenHash)
// и момент истечения. Пустой слот означает отсутствие сессии.
type RefreshSlot struct {
	TokenHash string
	ExpiresAt time.Time
}

// Empty сообщает, что сессии нет (logout или ещё не было login).
func (s RefreshSlot) Empty() bool {
	return s.TokenHash == ""
}

// Matches сравнивает дайджест предъявленного токена с сохранённым
// за постоянное время. Пустой слот не совпадает ни с чем.
func (s RefreshSlot) Matches(tokenHash string) bool {
	if s.Empty() || tokenHash == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(s.TokenHash), []byte(tokenHash)) == 1
}

// Expired сообщает, что срок слота истёк к моменту now.
func (s RefreshSlot) Expired(now time.Time) bool {
	return !s.Empty() && !now.Before(s.ExpiresAt)
}
