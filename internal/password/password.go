// password — одностороннее хэширование и проверка паролей (bcrypt).
// Пакет никогда не возвращает и не логирует открытый пароль.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinCost — нижняя граница work factor; меньшие значения поднимаются до неё.
const MinCost = bcrypt.DefaultCost

// dummyHash — заранее посчитанный bcrypt-хэш (cost 10) для выравнивания
// времени ответа, когда пользователь не найден.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3vmAkpWCMzFHw6bjBUfFGqK"

// Hasher хэширует и проверяет пароли с фиксированным cost.
type Hasher struct {
	cost int
}

// NewHasher создаёт Hasher; cost вне [MinCost, bcrypt.MaxCost] приводится к границе.
func NewHasher(cost int) *Hasher {
	if cost < MinCost {
		cost = MinCost
	}

	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	return &Hasher{cost: cost}
}

// Hash возвращает bcrypt-дайджест пароля.
// Ошибка примитива (например, bcrypt.ErrPasswordTooLong) — внутренняя ошибка,
// а не «неверный пароль».
func (h *Hasher) Hash(plain string) (string, error) {
	const op = "password.Hash"

	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(b), nil
}

// Verify сравнивает пароль с дайджестом. Любое несовпадение, включая
// битый дайджест, даёт false.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// VerifyDummy тратит столько же CPU, сколько настоящая проверка, и всегда
// возвращает false. Вызывается, когда пользователь не найден.
func (h *Hasher) VerifyDummy(plain string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
	return false
}

// Cost возвращает применяемый work factor.
func (h *Hasher) Cost() int {
	return h.cost
}
