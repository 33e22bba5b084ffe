package mongo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/storage"
)

// testTimeout — общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain запускает MongoDB в контейнере один раз на пакет. Каждый тест
// работает в своей базе с уникальным именем (см. newTestStorage).
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7.0",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	_ = os.Setenv("MONGO_URL", fmt.Sprintf("mongodb://%s:%s", host, port.Port()))

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	base := strings.TrimRight(os.Getenv("MONGO_URL"), "/")
	uri := base + "/sessions_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	st, err := New(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	return st
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

func TestDatabaseFromURI(t *testing.T) {
	require.Equal(t, "db1", databaseFromURI("mongodb://localhost:27017/db1"))
	require.Equal(t, defaultDBName, databaseFromURI("mongodb://localhost:27017"))
	require.Equal(t, defaultDBName, databaseFromURI("mongodb://localhost:27017/"))
}

func TestIntegration_SaveUser_And_Lookup(t *testing.T) {
	st := newTestStorage(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	u := newUser("Alice", "Alice@Example.com")
	require.NoError(t, st.SaveUser(ctx, u))

	got, err := st.UserByLogin(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "Alice", got.Username)

	got, err = st.UserByLogin(ctx, "ALICE@EXAMPLE.COM")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	got, err = st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "hash", got.PasswordHash)

	_, err = st.UserByID(ctx, uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_SaveUser_Duplicate(t *testing.T) {
	st := newTestStorage(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	require.NoError(t, st.SaveUser(ctx, newUser("bob", "bob@example.com")))
	require.ErrorIs(t, st.SaveUser(ctx, newUser("BOB", "x@example.com")), storage.ErrAlreadyExists)
	require.ErrorIs(t, st.SaveUser(ctx, newUser("bobby", "bob@EXAMPLE.com")), storage.ErrAlreadyExists)
}

func TestIntegration_UpdateAccount(t *testing.T) {
	st := newTestStorage(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	u := newUser("carol", "carol@example.com")
	require.NoError(t, st.SaveUser(ctx, u))
	require.NoError(t, st.SaveUser(ctx, newUser("dave", "dave@example.com")))

	got, err := st.UpdateAccount(ctx, u.ID, "Carol C", "")
	require.NoError(t, err)
	require.Equal(t, "Carol C", got.FullName)
	require.Equal(t, "carol@example.com", got.Email)

	_, err = st.UpdateAccount(ctx, u.ID, "", "DAVE@example.com")
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, err = st.UpdateAccount(ctx, uuid.New(), "x", "")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, st.UpdatePasswordHash(ctx, u.ID, "h2"))
	require.NoError(t, st.UpdateAvatar(ctx, u.ID, "http://cdn/a.png"))
	require.ErrorIs(t, st.UpdateAvatar(ctx, uuid.New(), "x"), storage.ErrNotFound)
	require.NoError(t, st.UpdateCoverImage(ctx, u.ID, "http://cdn/c.jpg"))
	require.ErrorIs(t, st.UpdateCoverImage(ctx, uuid.New(), "x"), storage.ErrNotFound)

	got, err = st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "h2", got.PasswordHash)
	require.Equal(t, "http://cdn/a.png", got.Avatar)
	require.Equal(t, "http://cdn/c.jpg", got.CoverImage)
}

func TestIntegration_RefreshSlot_CAS(t *testing.T) {
	st := newTestStorage(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	u := newUser("erin", "erin@example.com")
	require.NoError(t, st.SaveUser(ctx, u))

	slot, err := st.RefreshSlot(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, slot.Empty())

	exp := time.Now().Add(time.Hour)
	require.NoError(t, st.SetRefreshSlot(ctx, u.ID, models.RefreshSlot{TokenHash: "h1", ExpiresAt: exp}))

	slot, err = st.RefreshSlot(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "h1", slot.TokenHash)
	require.WithinDuration(t, exp, slot.ExpiresAt, time.Millisecond)

	ok, err := st.SwapRefreshSlot(ctx, u.ID, "other", models.RefreshSlot{TokenHash: "h2", ExpiresAt: exp})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.SwapRefreshSlot(ctx, u.ID, "h1", models.RefreshSlot{TokenHash: "h2", ExpiresAt: exp})
	require.NoError(t, err)
	require.True(t, ok)

	_, err = st.SwapRefreshSlot(ctx, uuid.New(), "h1", models.RefreshSlot{})
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, st.SetRefreshSlot(ctx, u.ID, models.RefreshSlot{}))
	slot, err = st.RefreshSlot(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, slot.Empty())
}

func TestIntegration_ClearExpiredRefreshSlots(t *testing.T) {
	st := newTestStorage(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	now := time.Now()
	a := newUser("a", "a@example.com")
	b := newUser("b", "b@example.com")
	require.NoError(t, st.SaveUser(ctx, a))
	require.NoError(t, st.SaveUser(ctx, b))
	require.NoError(t, st.SetRefreshSlot(ctx, a.ID, models.RefreshSlot{TokenHash: "x", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, st.SetRefreshSlot(ctx, b.ID, models.RefreshSlot{TokenHash: "y", ExpiresAt: now.Add(time.Hour)}))

	n, err := st.ClearExpiredRefreshSlots(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	slot, err := st.RefreshSlot(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "y", slot.TokenHash)
}
