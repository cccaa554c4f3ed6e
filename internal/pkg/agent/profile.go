package agent

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
)

// ProfileID identifies a stored customization profile.
type ProfileID string

var profileIDPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate checks whether the profile identifier is a non-empty kebab-case slug.
func (id ProfileID) Validate() error {
	if id == "" || !profileIDPattern.MatchString(string(id)) {
		return ErrProfileIDInvalid
	}

	return nil
}

// Profile is a named, reusable set of customization overrides for a role's
// template. It stores caller input only; merged definitions are never
// persisted.
type Profile struct {
	// Role selects which template the overrides apply to.
	Role Role `json:"role"`

	// Overrides maps customization option ids to caller-supplied values.
	Overrides map[string]any `json:"overrides,omitempty"`

	// Description is optional free text about the profile's purpose.
	Description string `json:"description,omitempty"`

	// CreatedAt is the timestamp when the profile was first saved.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the most recent save.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks whether the profile is complete and well-formed.
func (profile Profile) Validate() error {
	if !profile.Role.Known() {
		return ErrRoleUnknown
	}

	for key := range profile.Overrides {
		if strings.TrimSpace(key) == "" {
			return ErrProfileOverrideKeyRequired
		}
	}

	return nil
}

// Clone returns a deep copy of the profile.
func (profile Profile) Clone() Profile {
	clone := profile

	if profile.Overrides != nil {
		overrides := make(map[string]any, len(profile.Overrides))
		for key, value := range profile.Overrides {
			overrides[key] = CloneValue(value)
		}
		clone.Overrides = overrides
	}

	return clone
}

// ProfileRepository provides access to stored customization profiles.
type ProfileRepository interface {
	// Exists reports whether a profile with the given identifier exists.
	// Returns ErrProfileIDInvalid when the identifier is malformed.
	Exists(ctx context.Context, id ProfileID) (bool, error)

	// Get loads the profile for the given identifier.
	// Returns ErrProfileNotFound when the profile does not exist.
	// Returns ErrProfileIDInvalid when the identifier is malformed.
	Get(ctx context.Context, id ProfileID) (Profile, error)

	// Save persists the profile under the given identifier.
	// Returns ErrProfileIDInvalid when the identifier is malformed.
	Save(ctx context.Context, id ProfileID, profile Profile) error

	// Delete removes the profile.
	// Returns ErrProfileNotFound when the profile does not exist.
	Delete(ctx context.Context, id ProfileID) error

	// List returns the identifiers of all stored profiles.
	List(ctx context.Context) ([]ProfileID, error)
}

var (
	// ErrProfileNotFound indicates the profile does not exist in the repository.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileIDInvalid indicates the profile identifier is missing or malformed.
	ErrProfileIDInvalid = errors.New("profile id invalid")

	// ErrProfileOverrideKeyRequired indicates an override key is empty.
	ErrProfileOverrideKeyRequired = errors.New("profile override key required")
)
