package fs

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

func newTestRepository(t *testing.T) *ProfileRepository {
	t.Helper()

	repository, err := NewProfileRepository("/profiles", afero.NewMemMapFs())
	require.NoError(t, err)

	return repository
}

func testProfile() agent.Profile {
	return agent.Profile{
		Role:        agent.RoleDeveloper,
		Description: "Fast-iterating developer profile",
		Overrides: map[string]any{
			"name":     "Speedy Dev",
			"priority": 8,
		},
	}
}

func TestProfileRepositorySaveAndGet(t *testing.T) {
	repository := newTestRepository(t)

	require.NoError(t, repository.Save(context.Background(), "fast-dev", testProfile()))

	loaded, err := repository.Get(context.Background(), "fast-dev")
	require.NoError(t, err)

	assert.Equal(t, agent.RoleDeveloper, loaded.Role)
	assert.Equal(t, "Speedy Dev", loaded.Overrides["name"])
	assert.False(t, loaded.CreatedAt.IsZero())
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestProfileRepositorySavePreservesCreatedAt(t *testing.T) {
	repository := newTestRepository(t)

	require.NoError(t, repository.Save(context.Background(), "fast-dev", testProfile()))

	first, err := repository.Get(context.Background(), "fast-dev")
	require.NoError(t, err)

	updated := testProfile()
	updated.Description = "changed"
	require.NoError(t, repository.Save(context.Background(), "fast-dev", updated))

	second, err := repository.Get(context.Background(), "fast-dev")
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, "changed", second.Description)
}

func TestProfileRepositorySaveRejectsInvalidInput(t *testing.T) {
	repository := newTestRepository(t)

	t.Run("invalid id", func(t *testing.T) {
		err := repository.Save(context.Background(), "Not Valid", testProfile())
		require.ErrorIs(t, err, agent.ErrProfileIDInvalid)
	})

	t.Run("unknown role", func(t *testing.T) {
		profile := testProfile()
		profile.Role = "wizard"

		err := repository.Save(context.Background(), "fast-dev", profile)
		require.ErrorIs(t, err, agent.ErrRoleUnknown)
	})
}

func TestProfileRepositoryGetMissing(t *testing.T) {
	repository := newTestRepository(t)

	_, err := repository.Get(context.Background(), "missing")
	require.ErrorIs(t, err, agent.ErrProfileNotFound)
}

func TestProfileRepositoryExists(t *testing.T) {
	repository := newTestRepository(t)

	exists, err := repository.Exists(context.Background(), "fast-dev")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repository.Save(context.Background(), "fast-dev", testProfile()))

	exists, err = repository.Exists(context.Background(), "fast-dev")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProfileRepositoryDelete(t *testing.T) {
	repository := newTestRepository(t)

	t.Run("missing", func(t *testing.T) {
		err := repository.Delete(context.Background(), "missing")
		require.ErrorIs(t, err, agent.ErrProfileNotFound)
	})

	t.Run("existing", func(t *testing.T) {
		require.NoError(t, repository.Save(context.Background(), "fast-dev", testProfile()))
		require.NoError(t, repository.Delete(context.Background(), "fast-dev"))

		exists, err := repository.Exists(context.Background(), "fast-dev")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestProfileRepositoryList(t *testing.T) {
	repository := newTestRepository(t)

	require.NoError(t, repository.Save(context.Background(), "zeta", testProfile()))
	require.NoError(t, repository.Save(context.Background(), "alpha", testProfile()))
	require.NoError(t, repository.Save(context.Background(), "mid-range", testProfile()))

	// Stray files that must not show up as profiles.
	require.NoError(t, afero.WriteFile(repository.fs, "/profiles/notes.txt", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(repository.fs, "/profiles/Bad Name.yaml", []byte("x"), 0o644))
	require.NoError(t, repository.fs.MkdirAll("/profiles/nested", 0o755))

	ids, err := repository.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []agent.ProfileID{"alpha", "mid-range", "zeta"}, ids)
}
