// models содержит доменные сущности session-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity — неизменяемые для ядра данные пользователя, которые попадают
// в claims access-токена и в ответы клиенту. Credential сюда не входит.
type Identity struct {
	ID         uuid.UUID
	Username   string
	Email      string
	FullName   string
	Avatar     string
	CoverImage string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// User — запись каталога пользователей: Identity + bcrypt-хэш пароля.
// PasswordHash никогда не покидает сервисный слой.
type User struct {
	Identity
	PasswordHash string
}
