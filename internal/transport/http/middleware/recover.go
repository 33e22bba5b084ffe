package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/pribylovaa/session-service/internal/transport/http/errors"
)

var errHandlerPanic = errors.New("handler panicked")

// Recover стоит первым в цепочке: request-scoped логгера здесь ещё нет,
// поэтому пишет в l (nil — slog.Default), а request_id берёт из заголовка,
// который выставил RequestID ниже по цепочке.
//
// Клиент получает 500/internal без деталей паники. Если ответ уже начат,
// конверт не пишется. http.ErrAbortHandler пробрасывается как есть.
func Recover(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				l.LogAttrs(r.Context(), slog.LevelError, "panic_recovered",
					slog.String("request_id", r.Header.Get(HeaderRequestID)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
					slog.Bool("response_started", sw.status != 0),
				)

				if sw.status == 0 {
					apierrors.WriteError(sw, r, errHandlerPanic)
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
