package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/session-service/internal/config"
	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/password"
	"github.com/pribylovaa/session-service/internal/session"
	"github.com/pribylovaa/session-service/internal/storage"
	"github.com/pribylovaa/session-service/internal/storage/memory"
	"github.com/pribylovaa/session-service/internal/tokens"
	"github.com/pribylovaa/session-service/mocks"
)

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		AccessTokenSecret:  "unit-access-secret",
		RefreshTokenSecret: "unit-refresh-secret",
		AccessTokenTTL:     time.Minute,
		RefreshTokenTTL:    time.Hour,
		Issuer:             "session-service",
		Audience:           []string{"web"},
		BcryptCost:         password.MinCost,
	}
}

func build(t *testing.T, cfg config.AuthConfig, st storage.Storage) *Service {
	t.Helper()

	tm, err := tokens.NewManager(cfg)
	require.NoError(t, err)

	return New(st, session.NewStore(st, nil), tm, password.NewHasher(cfg.BcryptCost), cfg)
}

func mocksStorage(ctrl *gomock.Controller) *mocks.MockStorage {
	return mocks.NewMockStorage(ctrl)
}

// newMockSvc — сервис поверх gomock-хранилища.
func newMockSvc(t *testing.T) (*Service, *mocks.MockStorage) {
	t.Helper()
	st := mocksStorage(gomock.NewController(t))

	return build(t, testCfg(), st), st
}

// newMemSvc — сервис поверх хранилища в памяти; для сценарных тестов.
func newMemSvc(t *testing.T, cfg config.AuthConfig) (*Service, *memory.Storage) {
	t.Helper()
	st := memory.New()

	return build(t, cfg, st), st
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := password.NewHasher(password.MinCost).Hash(pw)
	require.NoError(t, err)
	return h
}

func userWithPassword(t *testing.T, pw string) *models.User {
	t.Helper()
	return &models.User{
		Identity: models.Identity{
			ID:       uuid.New(),
			Username: "alice",
			Email:    "alice@example.com",
			FullName: "Alice",
		},
		PasswordHash: mustHash(t, pw),
	}
}

// seed регистрирует пользователя alice с паролем pw в хранилище в памяти.
func seed(t *testing.T, svc *Service, pw string) *models.Identity {
	t.Helper()
	id, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Alice Liddell",
		Username: "alice",
		Email:    "alice@example.com",
		Password: pw,
	})
	require.NoError(t, err)
	return id
}
