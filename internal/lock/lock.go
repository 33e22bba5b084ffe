// lock — блокировки по ключу (обычно ID пользователя), сериализующие
// операции над refresh-слотом.
package lock

import (
	"context"
	"errors"
)

// ErrNotAcquired — блокировку не удалось взять до отмены контекста.
var ErrNotAcquired = errors.New("lock not acquired")

// Locker берёт эксклюзивную блокировку по ключу. Вызов unlock обязателен
// и идемпотентен.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
