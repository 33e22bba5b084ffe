package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/storage"
)

// Интеграционные тесты пакета postgres:
// - поднимают PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяют встроенные goose-миграции через Storage.Migrate;
// - проверяют каталог пользователей и CAS-операции над refresh-слотом.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// startPostgres — поднимает временный PostgreSQL, применяет миграции и
// возвращает хранилище и функцию очистки. Без GO_TEST_INTEGRATION тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	st, err := New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, st.Migrate(ctx))

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func newUser(username, email string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		Identity: models.Identity{
			ID:        uuid.New(),
			Username:  username,
			Email:     email,
			FullName:  "Full " + username,
			CreatedAt: now,
			UpdatedAt: now,
		},
		PasswordHash: "hash",
	}
}

// TestIntegration_SaveUser_And_Lookup_OK — сохранение и поиск по username, email и ID.
func TestIntegration_SaveUser_And_Lookup_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := newUser("alice", "Alice@Example.Com")
	require.NoError(t, st.SaveUser(ctx, u))

	byName, err := st.UserByLogin(ctx, "ALICE")
	require.NoError(t, err)
	require.Equal(t, u.ID, byName.ID)
	require.Equal(t, "Full alice", byName.FullName)
	require.WithinDuration(t, u.CreatedAt, byName.CreatedAt, time.Second)

	byEmail, err := st.UserByLogin(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byID, err := st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "hash", byID.PasswordHash)
}

// TestIntegration_SaveUser_Unique_Violation — username и email уникальны без учета регистра.
func TestIntegration_SaveUser_Unique_Violation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, st.SaveUser(ctx, newUser("bob", "bob@example.com")))

	err := st.SaveUser(ctx, newUser("BOB", "other@example.com"))
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	err = st.SaveUser(ctx, newUser("bobby", "BOB@EXAMPLE.COM"))
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_UserLookup_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UserByLogin(context.Background(), "absent")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.UserByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_UpdateAccount_And_Password — частичное обновление профиля и смена хэша пароля.
func TestIntegration_UpdateAccount_And_Password(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := newUser("carol", "carol@example.com")
	require.NoError(t, st.SaveUser(ctx, u))
	require.NoError(t, st.SaveUser(ctx, newUser("dave", "dave@example.com")))

	got, err := st.UpdateAccount(ctx, u.ID, "Carol C", "")
	require.NoError(t, err)
	require.Equal(t, "Carol C", got.FullName)
	require.Equal(t, "carol@example.com", got.Email)

	_, err = st.UpdateAccount(ctx, u.ID, "", "dave@example.com")
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, err = st.UpdateAccount(ctx, uuid.New(), "x", "")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, st.UpdatePasswordHash(ctx, u.ID, "new-hash"))
	require.NoError(t, st.UpdateAvatar(ctx, u.ID, "http://cdn/a.png"))
	require.NoError(t, st.UpdateCoverImage(ctx, u.ID, "http://cdn/c.jpg"))

	got, err = st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
	require.Equal(t, "http://cdn/a.png", got.Avatar)
	require.Equal(t, "http://cdn/c.jpg", got.CoverImage)

	require.ErrorIs(t, st.UpdatePasswordHash(ctx, uuid.New(), "h"), storage.ErrNotFound)
	require.ErrorIs(t, st.UpdateCoverImage(ctx, uuid.New(), "x"), storage.ErrNotFound)
}

// TestIntegration_UserQueries_ContextCanceled — отменённый контекст «просачивается» в ошибки.
func TestIntegration_UserQueries_ContextCanceled(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.UserByLogin(ctx, "user@example.com")
	require.ErrorIs(t, err, context.Canceled)

	_, err = st.UserByID(ctx, uuid.New())
	require.ErrorIs(t, err, context.Canceled)
}
