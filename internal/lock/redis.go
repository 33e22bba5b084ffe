package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/session-service/internal/pkg/log"
)

// releaseScript удаляет ключ, только если он всё ещё принадлежит владельцу.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

const (
	minRetry = 5 * time.Millisecond
	maxRetry = 100 * time.Millisecond
)

// Redis — распределённая блокировка на SET NX PX. TTL ограничивает время
// удержания, если процесс-владелец упал, не отпустив ключ.
type Redis struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "session:lock:".
func NewRedis(ctx context.Context, redisURL, prefix string, ttl time.Duration) (*Redis, error) {
	const op = "lock.NewRedis"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewRedisWithClient(rdb, prefix, ttl), nil
}

// NewRedisWithClient оборачивает уже созданный клиент.
func NewRedisWithClient(rdb redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = "session:lock:"
	}
	if ttl <= 0 {
		ttl = 5 * time.Second
	}

	return &Redis{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	const op = "lock.Redis.Lock"

	k := r.prefix + key
	token := uuid.NewString()
	wait := minRetry

	for {
		ok, err := r.rdb.SetNX(ctx, k, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if ok {
			break
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, fmt.Errorf("%s: %w: %w", op, ErrNotAcquired, ctx.Err())
		case <-t.C:
		}

		wait *= 2
		if wait > maxRetry {
			wait = maxRetry
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// Отпускаем даже если контекст запроса уже отменён; логгер
			// запроса (request_id и т.п.) сохраняется через WithoutCancel.
			relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
			defer cancel()

			if err := releaseScript.Run(relCtx, r.rdb, []string{k}, token).Err(); err != nil {
				log.From(ctx).Warn("lock_release_failed", "key", k, "err", err)
			}
		})
	}, nil
}

// Close закрывает клиент Redis.
func (r *Redis) Close() error { return r.rdb.Close() }

var _ Locker = (*Redis)(nil)
