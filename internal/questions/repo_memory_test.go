package questions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, q := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Append(ctx, UserQuestion{ID: q, UserID: "u-1", Question: q, CreatedAt: base.Add(time.Duration(i) * time.Minute)}))
	}
	require.NoError(t, repo.Append(ctx, UserQuestion{ID: "other", UserID: "u-2", Question: "x", CreatedAt: base}))

	all, err := repo.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

	recent, err := repo.Recent(ctx, "u-1", 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].ID)
}

func TestMemoryRepoBank(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo(ReferenceBank()...)

	top, err := repo.TopByCategory(ctx, "LABORAL", 3)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "lq-laboral-1", top[0].ID)

	require.NoError(t, repo.BumpFrequency(ctx, "Pensiones"))
	top, err = repo.TopByCategory(ctx, "pensiones", 1)
	require.NoError(t, err)
	assert.Equal(t, 11, top[0].Frequency)

	// Substring matching applies to lookups, not to bumps.
	require.NoError(t, repo.BumpFrequency(ctx, "pens"))
	top, _ = repo.TopByCategory(ctx, "pensiones", 1)
	assert.Equal(t, 11, top[0].Frequency)
}
