package agent

// Role categorizes an agent's intended function.
type Role string

const (
	// RoleArchitect designs system structure and technical direction.
	RoleArchitect Role = "architect"

	// RoleDeveloper implements features and fixes defects.
	RoleDeveloper Role = "developer"

	// RoleTester designs and runs verification work.
	RoleTester Role = "tester"

	// RoleReviewer audits changes for quality and consistency.
	RoleReviewer Role = "reviewer"

	// RoleDocumenter produces and maintains documentation.
	RoleDocumenter Role = "documenter"

	// RoleDevOps manages build, release and infrastructure concerns.
	RoleDevOps Role = "devops"

	// RoleResearcher gathers and distills external knowledge.
	RoleResearcher Role = "researcher"

	// RoleCustom is the fallback for agents that fit no predefined role.
	// It has templates but no canonical definition.
	RoleCustom Role = "custom"
)

// PredefinedRoles returns the fixed set of roles with canonical definitions.
// RoleCustom is deliberately excluded.
func PredefinedRoles() []Role {
	return []Role{
		RoleArchitect,
		RoleDeveloper,
		RoleTester,
		RoleReviewer,
		RoleDocumenter,
		RoleDevOps,
		RoleResearcher,
	}
}

// Predefined reports whether the role is one of the predefined roles.
// The check is case-sensitive. RoleCustom and the empty role are not predefined.
func (role Role) Predefined() bool {
	switch role {
	case RoleArchitect, RoleDeveloper, RoleTester, RoleReviewer, RoleDocumenter, RoleDevOps, RoleResearcher:
		return true
	default:
		return false
	}
}

// Known reports whether the role belongs to the role enumeration,
// including the RoleCustom fallback.
func (role Role) Known() bool {
	return role.Predefined() || role == RoleCustom
}
