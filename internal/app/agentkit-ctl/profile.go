package agentkitctl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// ProfileAddCmd saves a customization profile for later reuse.
type ProfileAddCmd struct {
	ID          string   `arg:"" required:"" help:"Profile id (kebab-case slug)"`
	Role        string   `required:"" help:"Role the profile customizes"`
	Set         []string `short:"s" help:"Override as key=value; the value is parsed as JSON when possible"`
	Description string   `help:"What the profile is for"`
	Force       bool     `help:"Overwrite an existing profile"`
}

// Run executes the profile add command.
func (command *ProfileAddCmd) Run(ctx context.Context, profiles agent.ProfileRepository) error {
	id := agent.ProfileID(command.ID)

	exists, err := profiles.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check profile %s: %w", id, err)
	}

	if exists && !command.Force {
		return fmt.Errorf("profile %s already exists", id)
	}

	overrides := map[string]any{}
	for _, pair := range command.Set {
		key, value, err := parseSetPair(pair)
		if err != nil {
			return err
		}

		overrides[key] = value
	}

	profile := agent.Profile{
		Role:        agent.Role(command.Role),
		Overrides:   overrides,
		Description: strings.TrimSpace(command.Description),
	}

	if err := profiles.Save(ctx, id, profile); err != nil {
		return fmt.Errorf("save profile %s: %w", id, err)
	}

	slog.Info("Profile saved.", slog.String("profileId", string(id)), slog.String("role", command.Role))

	return nil
}

// ProfileListOutputItem represents a single profile entry in the list output.
type ProfileListOutputItem struct {
	ID   agent.ProfileID `json:"id"`
	Role agent.Role      `json:"role"`
}

// ProfileListOutput captures the list output payload for profiles.
type ProfileListOutput struct {
	Items []ProfileListOutputItem `json:"items"`
	Count int                     `json:"count"`
}

// ProfileListCmd lists stored profiles and their roles.
type ProfileListCmd struct{}

// Run executes the profile list command.
func (command *ProfileListCmd) Run(ctx context.Context, profiles agent.ProfileRepository, renderer *Renderer) error {
	ids, err := profiles.List(ctx)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}

	items := make([]ProfileListOutputItem, 0, len(ids))
	for _, id := range ids {
		profile, err := profiles.Get(ctx, id)
		if err != nil {
			slog.Warn(
				"Failed to load profile",
				slog.String("profileId", string(id)),
				slog.String("error", err.Error()),
			)
			continue
		}

		items = append(items, ProfileListOutputItem{
			ID:   id,
			Role: profile.Role,
		})
	}

	output := ProfileListOutput{
		Items: items,
		Count: len(items),
	}

	if err := renderer.Render(output); err != nil {
		return fmt.Errorf("render profile list: %w", err)
	}

	return nil
}

// ProfileShowCmd shows a stored profile.
type ProfileShowCmd struct {
	ID string `arg:"" required:"" help:"Profile id"`
}

// Run executes the profile show command.
func (command *ProfileShowCmd) Run(ctx context.Context, profiles agent.ProfileRepository, renderer *Renderer) error {
	profile, err := profiles.Get(ctx, agent.ProfileID(command.ID))
	if err != nil {
		return fmt.Errorf("get profile %s: %w", command.ID, err)
	}

	if err := renderer.Render(profile); err != nil {
		return fmt.Errorf("render profile: %w", err)
	}

	return nil
}

// ProfileRemoveCmd deletes a stored profile.
type ProfileRemoveCmd struct {
	ID string `arg:"" required:"" help:"Profile id"`
}

// Run executes the profile remove command.
func (command *ProfileRemoveCmd) Run(ctx context.Context, profiles agent.ProfileRepository) error {
	if err := profiles.Delete(ctx, agent.ProfileID(command.ID)); err != nil {
		return fmt.Errorf("delete profile %s: %w", command.ID, err)
	}

	slog.Info("Profile deleted.", slog.String("profileId", command.ID))

	return nil
}
