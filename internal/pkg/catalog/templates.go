package catalog

import (
	"fmt"
	"time"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/utils"
)

func intPtr(value int) *int {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

// commonOptions are the customization options shared by every template.
func commonOptions(defaultName string) []agent.CustomizationOption {
	return []agent.CustomizationOption{
		{
			ID:          "name",
			Name:        "Agent Name",
			Description: "Display name of the customized agent.",
			Type:        agent.OptionString,
			DefaultValue: defaultName,
			Required:    true,
			Rules: []agent.ValidationRule{
				{
					Type:    agent.RuleMin,
					Params:  agent.RuleParams{Length: intPtr(3)},
					Message: "Agent Name must be at least 3 characters long",
				},
				{
					Type:    agent.RuleMax,
					Params:  agent.RuleParams{Length: intPtr(50)},
					Message: "Agent Name must be at most 50 characters long",
				},
			},
		},
		{
			ID:           "priority",
			Name:         "Priority",
			Description:  "Scheduling priority from 1 (lowest) to 10 (highest).",
			Type:         agent.OptionNumber,
			DefaultValue: 5,
			Required:     false,
			Rules: []agent.ValidationRule{
				{
					Type:    agent.RuleMin,
					Params:  agent.RuleParams{Value: floatPtr(1)},
					Message: "Priority must be at least 1",
				},
				{
					Type:    agent.RuleMax,
					Params:  agent.RuleParams{Value: floatPtr(10)},
					Message: "Priority must be at most 10",
				},
			},
		},
		{
			ID:           "learningMode",
			Name:         "Learning Mode",
			Description:  "How the agent adapts its behavior over time.",
			Type:         agent.OptionString,
			DefaultValue: string(agent.LearningAdaptive),
			Required:     false,
			Rules: []agent.ValidationRule{
				{
					Type: agent.RuleEnum,
					Params: agent.RuleParams{Values: []any{
						string(agent.LearningAdaptive),
						string(agent.LearningStatic),
						string(agent.LearningCollaborative),
						string(agent.LearningAutonomous),
					}},
					Message: "Learning Mode must be one of: adaptive, static, collaborative, autonomous",
				},
			},
		},
		{
			ID:           "collaborationEnabled",
			Name:         "Collaboration Enabled",
			Description:  "Whether the agent cooperates with other agents.",
			Type:         agent.OptionBoolean,
			DefaultValue: true,
			Required:     false,
		},
		{
			ID:           "allowedTools",
			Name:         "Allowed Tools",
			Description:  "Tool names the agent may invoke.",
			Type:         agent.OptionArray,
			DefaultValue: []any{"read-file", "search"},
			Required:     false,
		},
	}
}

// roleOptions are the per-role flavor options added after the common set.
func roleOptions(role agent.Role) []agent.CustomizationOption {
	switch role {
	case agent.RoleArchitect:
		return []agent.CustomizationOption{
			{
				ID:           "designScope",
				Name:         "Design Scope",
				Description:  "Breadth of the architecture work the agent takes on.",
				Type:         agent.OptionString,
				DefaultValue: "system",
				Rules: []agent.ValidationRule{
					{
						Type:    agent.RuleEnum,
						Params:  agent.RuleParams{Values: []any{"module", "service", "system"}},
						Message: "Design Scope must be one of: module, service, system",
					},
				},
			},
		}
	case agent.RoleDeveloper:
		return []agent.CustomizationOption{
			{
				ID:           "experienceLevel",
				Name:         "Experience Level",
				Description:  "Seniority the agent emulates when making implementation choices.",
				Type:         agent.OptionString,
				DefaultValue: "senior",
				Rules: []agent.ValidationRule{
					{
						Type:    agent.RuleEnum,
						Params:  agent.RuleParams{Values: []any{"junior", "mid", "senior", "expert"}},
						Message: "Experience Level must be one of: junior, mid, senior, expert",
					},
				},
			},
			{
				ID:           "testCoverageTarget",
				Name:         "Test Coverage Target",
				Description:  "Minimum test coverage percentage the agent aims for.",
				Type:         agent.OptionNumber,
				DefaultValue: 80,
				Rules: []agent.ValidationRule{
					{
						Type:    agent.RuleMin,
						Params:  agent.RuleParams{Value: floatPtr(0)},
						Message: "Test Coverage Target must be at least 0",
					},
					{
						Type:    agent.RuleMax,
						Params:  agent.RuleParams{Value: floatPtr(100)},
						Message: "Test Coverage Target must be at most 100",
					},
				},
			},
		}
	case agent.RoleTester:
		return []agent.CustomizationOption{
			{
				ID:           "testStrategy",
				Name:         "Test Strategy",
				Description:  "Primary strategy the agent applies when designing tests.",
				Type:         agent.OptionString,
				DefaultValue: "risk-based",
				Rules: []agent.ValidationRule{
					{
						Type:    agent.RuleEnum,
						Params:  agent.RuleParams{Values: []any{"risk-based", "exploratory", "regression"}},
						Message: "Test Strategy must be one of: risk-based, exploratory, regression",
					},
				},
			},
		}
	case agent.RoleReviewer:
		return []agent.CustomizationOption{
			{
				ID:           "strictness",
				Name:         "Review Strictness",
				Description:  "How strictly the agent enforces conventions, from 1 to 5.",
				Type:         agent.OptionNumber,
				DefaultValue: 3,
				Rules: []agent.ValidationRule{
					{
						Type:    agent.RuleMin,
						Params:  agent.RuleParams{Value: floatPtr(1)},
						Message: "Review Strictness must be at least 1",
					},
					{
						Type:    agent.RuleMax,
						Params:  agent.RuleParams{Value: floatPtr(5)},
						Message: "Review Strictness must be at most 5",
					},
				},
			},
		}
	case agent.RoleDocumenter:
		return []agent.CustomizationOption{
			{
				ID:           "audience",
				Name:         "Audience",
				Description:  "Primary readership the agent writes for.",
				Type:         agent.OptionString,
				DefaultValue: "developers",
				Rules: []agent.ValidationRule{
					{
						Type:    agent.RuleEnum,
						Params:  agent.RuleParams{Values: []any{"developers", "operators", "end-users"}},
						Message: "Audience must be one of: developers, operators, end-users",
					},
				},
			},
		}
	case agent.RoleDevOps:
		return []agent.CustomizationOption{
			{
				ID:           "environments",
				Name:         "Environments",
				Description:  "Deployment environments the agent manages.",
				Type:         agent.OptionArray,
				DefaultValue: []any{"staging", "production"},
			},
		}
	case agent.RoleResearcher:
		return []agent.CustomizationOption{
			{
				ID:           "maxSources",
				Name:         "Max Sources",
				Description:  "Upper bound on sources consulted per research task.",
				Type:         agent.OptionNumber,
				DefaultValue: 10,
				Rules: []agent.ValidationRule{
					{
						Type:    agent.RuleMin,
						Params:  agent.RuleParams{Value: floatPtr(1)},
						Message: "Max Sources must be at least 1",
					},
				},
			},
		}
	default:
		return nil
	}
}

func templates() []agent.Template {
	list := make([]agent.Template, 0, len(agent.PredefinedRoles())+1)

	for _, definition := range definitions() {
		options := append(commonOptions(definition.Name), roleOptions(definition.Role)...)

		list = append(list, agent.Template{
			ID:          fmt.Sprintf("template-%s", definition.Role),
			Name:        fmt.Sprintf("%s Template", definition.Name),
			Description: fmt.Sprintf("Customizable template for %s agents.", definition.Role),
			BaseRole:    definition.Role,
			Base:        definition,
			Options:     options,
			Metadata: agent.TemplateMetadata{
				CreatedAt: catalogTime,
				Author:    "agentkit",
				Version:   "1.0.0",
				Rating:    0,
			},
		})
	}

	list = append(list, customTemplate())

	return list
}

// customTemplate is the fallback for agents that fit no predefined role.
// It carries its own neutral base rather than borrowing another role's.
func customTemplate() agent.Template {
	base := agent.Definition{
		ID:          "agent-custom",
		Name:        "Custom Agent",
		Role:        agent.RoleCustom,
		Description: "A blank agent profile customized entirely by the caller.",
		Backstory:   "An unshaped generalist awaiting instructions.",
		Goals:       []string{},
		CoreSkills:  []string{},
		LearningMode: agent.LearningAdaptive,
		Configuration: agent.Configuration{
			Performance: agent.PerformanceSettings{
				MaxExecutionTime:   utils.Duration(10 * time.Minute),
				MaxMemoryMB:        1024,
				MaxConcurrentTasks: 2,
				Priority:           5,
			},
			Capabilities: agent.Capabilities{
				AllowedTools: []string{"read-file"},
				FileSystem: agent.FileSystemAccess{
					Read: true,
				},
				Network:          agent.NetworkAccess{},
				AgentIntegration: false,
			},
			Communication: agent.CommunicationSettings{
				Style:  agent.StyleAdaptive,
				Format: agent.FormatConversational,
				Collaboration: agent.CollaborationSettings{
					Enabled:            false,
					ConflictResolution: agent.ResolveByConsensus,
				},
			},
		},
		Metadata: catalogMetadata("custom"),
	}

	options := append(commonOptions(base.Name), agent.CustomizationOption{
		ID:          "purpose",
		Name:        "Purpose",
		Description: "Free-text statement of what the custom agent is for.",
		Type:        agent.OptionString,
		Required:    true,
		Rules: []agent.ValidationRule{
			{
				Type:    agent.RuleMin,
				Params:  agent.RuleParams{Length: intPtr(10)},
				Message: "Purpose must be at least 10 characters long",
			},
		},
	})

	return agent.Template{
		ID:          "template-custom",
		Name:        "Custom Agent Template",
		Description: "Fallback template for agents that fit no predefined role.",
		BaseRole:    agent.RoleCustom,
		Base:        base,
		Options:     options,
		Metadata: agent.TemplateMetadata{
			CreatedAt: catalogTime,
			Author:    "agentkit",
			Version:   "1.0.0",
			Rating:    0,
		},
	}
}
