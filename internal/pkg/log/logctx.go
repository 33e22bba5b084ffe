// Package log переносит request-scoped *slog.Logger через context.Context.
// Логгер кладёт HTTP-мидлвар Logging, дополняет Authenticate (user_id),
// читают сервисный слой и распределённая блокировка.
package log

import (
	"context"
	"log/slog"
)

type key int

const loggerKey key = 0

// Into возвращает контекст-наследник с логгером l.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// From возвращает логгер запроса; без него — slog.Default().
func From(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}

	l, _ := ctx.Value(loggerKey).(*slog.Logger)
	if l == nil {
		return slog.Default()
	}

	return l
}

// With добавляет атрибуты к логгеру запроса. Новый логгер возвращается и
// сразу кладётся в контекст, чтобы нижние слои его унаследовали.
func With(ctx context.Context, args ...any) (context.Context, *slog.Logger) {
	l := From(ctx).With(args...)
	return Into(ctx, l), l
}
