// Package fs stores customization profiles as YAML files on an afero
// filesystem, one file per profile id.
package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

const profileExtension = ".yaml"

// ProfileRepository implements agent.ProfileRepository on a filesystem.
type ProfileRepository struct {
	basePath string
	fs       afero.Fs
}

// NewProfileRepository creates the repository root when missing.
func NewProfileRepository(basePath string, fileSystem afero.Fs) (*ProfileRepository, error) {
	if err := fileSystem.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}

	return &ProfileRepository{
		basePath: basePath,
		fs:       fileSystem,
	}, nil
}

func (repository *ProfileRepository) profilePath(id agent.ProfileID) string {
	return filepath.Join(repository.basePath, string(id)+profileExtension)
}

// Exists reports whether a profile with the given identifier exists.
func (repository *ProfileRepository) Exists(_ context.Context, id agent.ProfileID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	exists, err := afero.Exists(repository.fs, repository.profilePath(id))
	if err != nil {
		return false, fmt.Errorf("check profile file: %w", err)
	}

	return exists, nil
}

// Get loads the profile for the given identifier.
func (repository *ProfileRepository) Get(_ context.Context, id agent.ProfileID) (agent.Profile, error) {
	if err := id.Validate(); err != nil {
		return agent.Profile{}, err
	}

	data, err := afero.ReadFile(repository.fs, repository.profilePath(id))
	if err != nil {
		return agent.Profile{}, agent.ErrProfileNotFound
	}

	var profile agent.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return agent.Profile{}, fmt.Errorf("unmarshal profile %s: %w", id, err)
	}

	return profile, nil
}

// Save persists the profile under the given identifier. The write goes
// through a temp file and a rename so readers never see partial content.
func (repository *ProfileRepository) Save(ctx context.Context, id agent.ProfileID, profile agent.Profile) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := profile.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		if existing, err := repository.Get(ctx, id); err == nil {
			profile.CreatedAt = existing.CreatedAt
		} else {
			profile.CreatedAt = now
		}
	}
	profile.UpdatedAt = now

	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", id, err)
	}

	path := repository.profilePath(id)
	tmpPath := path + "~"

	if err := afero.WriteFile(repository.fs, tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write profile file: %w", err)
	}

	if err := repository.fs.Rename(tmpPath, path); err != nil {
		_ = repository.fs.Remove(tmpPath)
		return fmt.Errorf("rename profile file: %w", err)
	}

	return nil
}

// Delete removes the profile.
func (repository *ProfileRepository) Delete(ctx context.Context, id agent.ProfileID) error {
	exists, err := repository.Exists(ctx, id)
	if err != nil {
		return err
	}

	if !exists {
		return agent.ErrProfileNotFound
	}

	if err := repository.fs.Remove(repository.profilePath(id)); err != nil {
		return fmt.Errorf("remove profile file: %w", err)
	}

	return nil
}

// List returns the identifiers of all stored profiles, sorted. Files that do
// not look like profile files are skipped.
func (repository *ProfileRepository) List(_ context.Context) ([]agent.ProfileID, error) {
	entries, err := afero.ReadDir(repository.fs, repository.basePath)
	if err != nil {
		return nil, fmt.Errorf("read profile dir: %w", err)
	}

	ids := make([]agent.ProfileID, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), profileExtension) {
			continue
		}

		id := agent.ProfileID(strings.TrimSuffix(entry.Name(), profileExtension))
		if err := id.Validate(); err != nil {
			continue
		}

		ids = append(ids, id)
	}

	sort.Slice(ids, func(left, right int) bool {
		return ids[left] < ids[right]
	})

	return ids, nil
}
