package lock

import (
	"context"
	"fmt"
	"sync"
)

// entry — семафор ёмкостью 1 и число ожидающих/владеющих горутин.
type entry struct {
	sem  chan struct{}
	refs int
}

// Local — блокировки внутри одного процесса. Записи удаляются, когда
// ключ больше никому не нужен, так что карта не растёт без ограничений.
type Local struct {
	mu   sync.Mutex
	keys map[string]*entry
}

func NewLocal() *Local {
	return &Local{keys: make(map[string]*entry)}
}

func (l *Local) acquireEntry(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.keys[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		l.keys[key] = e
	}
	e.refs++

	return e
}

func (l *Local) releaseEntry(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.keys, key)
	}
}

func (l *Local) Lock(ctx context.Context, key string) (func(), error) {
	const op = "lock.Local.Lock"

	e := l.acquireEntry(key)

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseEntry(key, e)
		return nil, fmt.Errorf("%s: %w: %w", op, ErrNotAcquired, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			l.releaseEntry(key, e)
		})
	}, nil
}

// size — число живых ключей; нужен тестам.
func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.keys)
}

var _ Locker = (*Local)(nil)
