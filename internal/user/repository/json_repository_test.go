package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/growshop/internal/user/domain"
	"github.com/tair/growshop/pkg/jsonstore"
)

func TestJSONUserRepository(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewJSONUserRepository(jsonstore.New(dir))

	first := &domain.User{Email: "ana@example.com", Name: "Ana", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, "u1", first.ID)

	second := &domain.User{Email: "bo@example.com", Name: "Bo", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "u2", second.ID)

	t.Run("duplicate email ignores case", func(t *testing.T) {
		err := repo.Create(ctx, &domain.User{Email: "ANA@example.com", Name: "Other"})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("find by email ignores case", func(t *testing.T) {
		u, err := repo.FindByEmail(ctx, " Bo@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, "u2", u.ID)
	})

	t.Run("find by id", func(t *testing.T) {
		u, err := repo.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "Ana", u.Name)

		_, err = repo.FindByID(ctx, "u9")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("persisted with hash", func(t *testing.T) {
		raw, err := os.ReadFile(filepath.Join(dir, UsersFile))
		require.NoError(t, err)

		var stored []map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &stored))
		require.Len(t, stored, 2)
		assert.Equal(t, "h", stored[0]["passwordHash"])
	})
}

func TestJSONUserRepositoryConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewJSONUserRepository(jsonstore.New(t.TempDir()))

	var wg sync.WaitGroup
	ids := make([]string, 10)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := &domain.User{Email: string(rune('a'+i)) + "@example.com", Name: "n"}
			if err := repo.Create(ctx, u); err == nil {
				ids[i] = u.ID
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, id := range ids {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
