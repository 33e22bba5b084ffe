package postgres

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/storage"
)

// TestIntegration_RefreshSlot_Lifecycle — новый пользователь без слота, set, swap, очистка.
func TestIntegration_RefreshSlot_Lifecycle(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := newUser("erin", "erin@example.com")
	require.NoError(t, st.SaveUser(ctx, u))

	slot, err := st.RefreshSlot(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, slot.Empty())

	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond)
	require.NoError(t, st.SetRefreshSlot(ctx, u.ID, models.RefreshSlot{TokenHash: "h1", ExpiresAt: exp}))

	slot, err = st.RefreshSlot(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "h1", slot.TokenHash)
	require.True(t, exp.Equal(slot.ExpiresAt))

	ok, err := st.SwapRefreshSlot(ctx, u.ID, "wrong", models.RefreshSlot{TokenHash: "h2", ExpiresAt: exp})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.SwapRefreshSlot(ctx, u.ID, "h1", models.RefreshSlot{TokenHash: "h2", ExpiresAt: exp})
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, st.SetRefreshSlot(ctx, u.ID, models.RefreshSlot{}))
	slot, err = st.RefreshSlot(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, slot.Empty())

	// Пустой слот ничему не соответствует.
	ok, err = st.SwapRefreshSlot(ctx, u.ID, "", models.RefreshSlot{TokenHash: "h3", ExpiresAt: exp})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIntegration_RefreshSlot_UnknownUser(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	_, err := st.RefreshSlot(ctx, uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)

	err = st.SetRefreshSlot(ctx, uuid.New(), models.RefreshSlot{})
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.SwapRefreshSlot(ctx, uuid.New(), "h", models.RefreshSlot{})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_SwapRefreshSlot_SingleWinner — из N параллельных swap с одним
// ожидаемым значением побеждает ровно один.
func TestIntegration_SwapRefreshSlot_SingleWinner(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := newUser("frank", "frank@example.com")
	require.NoError(t, st.SaveUser(ctx, u))
	exp := time.Now().Add(time.Hour)
	require.NoError(t, st.SetRefreshSlot(ctx, u.ID, models.RefreshSlot{TokenHash: "seed", ExpiresAt: exp}))

	const n = 16
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := st.SwapRefreshSlot(ctx, u.ID, "seed", models.RefreshSlot{TokenHash: uuid.NewString(), ExpiresAt: exp})
			require.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())
}

func TestIntegration_ClearExpiredRefreshSlots(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	expired := newUser("gina", "gina@example.com")
	live := newUser("hank", "hank@example.com")
	require.NoError(t, st.SaveUser(ctx, expired))
	require.NoError(t, st.SaveUser(ctx, live))
	require.NoError(t, st.SetRefreshSlot(ctx, expired.ID, models.RefreshSlot{TokenHash: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, st.SetRefreshSlot(ctx, live.ID, models.RefreshSlot{TokenHash: "new", ExpiresAt: now.Add(time.Hour)}))

	n, err := st.ClearExpiredRefreshSlots(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	slot, err := st.RefreshSlot(ctx, expired.ID)
	require.NoError(t, err)
	require.True(t, slot.Empty())

	slot, err = st.RefreshSlot(ctx, live.ID)
	require.NoError(t, err)
	require.Equal(t, "new", slot.TokenHash)
}
