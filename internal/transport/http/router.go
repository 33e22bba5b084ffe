// http собирает HTTP-роутер сервиса сессий: chi, цепочку middleware,
// REST-маршруты /users и служебные эндпойнты /livez, /healthz, /metrics.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/session-service/internal/config"
	"github.com/pribylovaa/session-service/internal/metrics"
	"github.com/pribylovaa/session-service/internal/transport/http/handlers"
	"github.com/pribylovaa/session-service/internal/transport/http/middleware"
)

// Service — сервисный слой целиком: операции хендлеров и проверка access-токена.
type Service interface {
	handlers.Service
	middleware.Authenticator
}

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api/v1"; если пустой — роуты регистрируются на корне.
	Cookies  config.CookieConfig
	Metrics  *metrics.Metrics // nil — без /metrics и без учёта запросов
	Ready    func() bool      // nil — /healthz всегда ok
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc Service, opts Options) http.Handler {
	root := chi.NewRouter()

	var observer middleware.HTTPObserver
	var authObserver handlers.AuthObserver
	if opts.Metrics != nil {
		observer = opts.Metrics
		authObserver = opts.Metrics
	}

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(opts.Logger),
		middleware.RequestID(), // до логирования, чтобы request_id попал в логгер
		middleware.Logging(opts.Logger),
		middleware.Metrics(observer),
		middleware.Timeout(opts.Timeout),
	)

	registerOps(root, opts)

	h := handlers.New(svc, opts.Cookies, authObserver)

	if opts.BasePath != "" && opts.BasePath != "/" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, auth middleware.Authenticator) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh-token", h.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(auth))

			r.Delete("/logout", h.Logout)
			r.Post("/change-password", h.ChangePassword)
			r.Get("/current-user", h.CurrentUser)
			r.Patch("/update-account-details", h.UpdateAccount)
			r.Post("/avatar/presign", h.AvatarPresign)
			r.Post("/avatar/confirm", h.AvatarConfirm)
			r.Patch("/update-avatar", h.AvatarConfirm)
			r.Post("/cover-image/presign", h.CoverPresign)
			r.Post("/cover-image/confirm", h.CoverConfirm)
			r.Patch("/update-cover-image", h.CoverConfirm)
		})
	})
}

// registerOps — liveness/readiness/metrics.
func registerOps(r chi.Router, opts Options) {
	r.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if opts.Ready == nil || opts.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
}
