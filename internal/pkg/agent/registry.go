package agent

import (
	"context"
	"errors"
)

// DefinitionRegistry exposes the fixed catalog of canonical definitions,
// one per predefined role. Implementations must return copies so callers
// cannot mutate the shared catalog.
type DefinitionRegistry interface {
	// Definition returns a deep copy of the canonical definition for the role.
	// Returns ErrDefinitionNotFound when the role has no canonical definition.
	Definition(ctx context.Context, role Role) (Definition, error)

	// Definitions returns a fresh list with one copy per predefined role.
	Definitions(ctx context.Context) ([]Definition, error)
}

// TemplateRegistry exposes the fixed catalog of templates, one per predefined
// role plus exactly one fallback for RoleCustom. Same copy discipline as the
// definition registry.
type TemplateRegistry interface {
	// Template returns a deep copy of the template for the role.
	// Returns ErrTemplateNotFound when the role has no template.
	Template(ctx context.Context, role Role) (Template, error)

	// Templates returns a fresh list with one copy per registered role.
	Templates(ctx context.Context) ([]Template, error)

	// Has reports whether the role has a template.
	Has(ctx context.Context, role Role) (bool, error)

	// Roles lists every role with a template, including RoleCustom.
	Roles(ctx context.Context) ([]Role, error)
}

var (
	// ErrDefinitionNotFound indicates the role has no canonical definition.
	ErrDefinitionNotFound = errors.New("definition not found")

	// ErrTemplateNotFound indicates the role has no template.
	ErrTemplateNotFound = errors.New("template not found")
)
