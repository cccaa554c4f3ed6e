package agent

import (
	"errors"
	"regexp"
	"time"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/utils"
)

// LearningMode describes how an agent adapts its behavior over time.
type LearningMode string

const (
	// LearningAdaptive adjusts behavior from observed outcomes.
	LearningAdaptive LearningMode = "adaptive"

	// LearningStatic keeps behavior fixed after configuration.
	LearningStatic LearningMode = "static"

	// LearningCollaborative adapts from feedback of other agents.
	LearningCollaborative LearningMode = "collaborative"

	// LearningAutonomous adapts without external supervision.
	LearningAutonomous LearningMode = "autonomous"
)

// Known reports whether the learning mode belongs to the enumeration.
func (mode LearningMode) Known() bool {
	switch mode {
	case LearningAdaptive, LearningStatic, LearningCollaborative, LearningAutonomous:
		return true
	default:
		return false
	}
}

// CommunicationStyle describes the tone an agent uses in its responses.
type CommunicationStyle string

const (
	StyleFormal    CommunicationStyle = "formal"
	StyleCasual    CommunicationStyle = "casual"
	StyleTechnical CommunicationStyle = "technical"
	StyleAdaptive  CommunicationStyle = "adaptive"
)

// Known reports whether the communication style belongs to the enumeration.
func (style CommunicationStyle) Known() bool {
	switch style {
	case StyleFormal, StyleCasual, StyleTechnical, StyleAdaptive:
		return true
	default:
		return false
	}
}

// ResponseFormat describes the shape of an agent's responses.
type ResponseFormat string

const (
	FormatStructured     ResponseFormat = "structured"
	FormatConversational ResponseFormat = "conversational"
	FormatMarkdown       ResponseFormat = "markdown"
	FormatJSON           ResponseFormat = "json"
)

// Known reports whether the response format belongs to the enumeration.
func (format ResponseFormat) Known() bool {
	switch format {
	case FormatStructured, FormatConversational, FormatMarkdown, FormatJSON:
		return true
	default:
		return false
	}
}

// ConflictResolution describes how collaborating agents settle disagreements.
type ConflictResolution string

const (
	ResolveByConsensus  ConflictResolution = "consensus"
	ResolveByPriority   ConflictResolution = "priority"
	ResolveByEscalation ConflictResolution = "escalation"
	ResolveByVote       ConflictResolution = "vote"
)

// Known reports whether the conflict resolution strategy belongs to the enumeration.
func (resolution ConflictResolution) Known() bool {
	switch resolution {
	case ResolveByConsensus, ResolveByPriority, ResolveByEscalation, ResolveByVote:
		return true
	default:
		return false
	}
}

// Definition is a fully specified, ready-to-use agent profile.
type Definition struct {
	// ID uniquely identifies the definition across the catalog.
	ID string `json:"id"`

	// Name is the unique display name of the agent.
	Name string `json:"name"`

	// Role identifies the agent's intended function.
	Role Role `json:"role"`

	// Description is free text used for downstream generation and docs.
	Description string `json:"description"`

	// Backstory gives the agent persona context for downstream generation.
	Backstory string `json:"backstory"`

	// Goals is the ordered list of objectives the agent pursues.
	Goals []string `json:"goals"`

	// CoreSkills lists the capabilities the agent is expected to have.
	CoreSkills []string `json:"coreSkills"`

	// LearningMode describes how the agent adapts over time.
	LearningMode LearningMode `json:"learningMode"`

	// Configuration carries the runtime settings of the agent.
	Configuration Configuration `json:"configuration"`

	// Metadata carries versioning and provenance information.
	Metadata Metadata `json:"metadata"`
}

// Configuration groups the runtime settings of an agent.
type Configuration struct {
	Performance   PerformanceSettings   `json:"performance"`
	Capabilities  Capabilities          `json:"capabilities"`
	Communication CommunicationSettings `json:"communication"`

	// CustomParams carries free-form parameters merged in from template
	// customization.
	CustomParams map[string]any `json:"customParams,omitempty"`
}

// PerformanceSettings bounds the agent's resource usage.
type PerformanceSettings struct {
	// MaxExecutionTime is the ceiling for a single task run.
	MaxExecutionTime utils.Duration `json:"maxExecutionTime"`

	// MaxMemoryMB is the memory ceiling in megabytes.
	MaxMemoryMB int `json:"maxMemoryMb"`

	// MaxConcurrentTasks caps how many tasks run at once.
	MaxConcurrentTasks int `json:"maxConcurrentTasks"`

	// Priority ranks the agent for scheduling, from 1 (lowest) to 10 (highest).
	Priority int `json:"priority"`
}

// Capabilities is the allow-list of what the agent may touch.
type Capabilities struct {
	// AllowedTools lists the tool names the agent may invoke.
	AllowedTools []string `json:"allowedTools"`

	// FileSystem grants filesystem access.
	FileSystem FileSystemAccess `json:"fileSystemAccess"`

	// Network grants network access.
	Network NetworkAccess `json:"networkAccess"`

	// AgentIntegration allows the agent to cooperate with other agents.
	AgentIntegration bool `json:"agentIntegration"`
}

// FileSystemAccess grants filesystem permissions to an agent.
type FileSystemAccess struct {
	Read    bool `json:"read"`
	Write   bool `json:"write"`
	Execute bool `json:"execute"`

	// AllowedPaths restricts access to the listed path prefixes when set.
	AllowedPaths []string `json:"allowedPaths,omitempty"`

	// DeniedPaths blocks the listed path prefixes even when otherwise allowed.
	DeniedPaths []string `json:"deniedPaths,omitempty"`
}

// NetworkAccess grants network permissions to an agent.
type NetworkAccess struct {
	HTTP         bool `json:"http"`
	HTTPS        bool `json:"https"`
	ExternalAPIs bool `json:"externalApis"`

	// AllowedDomains restricts outbound access to the listed domains when set.
	AllowedDomains []string `json:"allowedDomains,omitempty"`
}

// CommunicationSettings describes how the agent talks to users and peers.
type CommunicationSettings struct {
	Style         CommunicationStyle    `json:"style"`
	Format        ResponseFormat        `json:"responseFormat"`
	Collaboration CollaborationSettings `json:"collaboration"`
}

// CollaborationSettings describes how the agent cooperates with peers.
type CollaborationSettings struct {
	Enabled bool `json:"enabled"`

	// Roles tags the collaboration roles the agent can take.
	Roles []string `json:"roles,omitempty"`

	ConflictResolution ConflictResolution `json:"conflictResolution"`
}

// Metadata carries versioning and provenance information for a definition.
type Metadata struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Version is a semantic version string (MAJOR.MINOR.PATCH[-prerelease]).
	Version string `json:"version"`

	Author string `json:"author"`

	Tags []string `json:"tags,omitempty"`

	// Dependencies lists the ids of definitions this agent builds on.
	Dependencies []string `json:"dependencies,omitempty"`

	// Metrics is an optional performance snapshot.
	Metrics *PerformanceMetrics `json:"performanceMetrics,omitempty"`
}

// PerformanceMetrics is a snapshot of observed agent performance.
type PerformanceMetrics struct {
	// SuccessRate is the fraction of tasks completed successfully, in [0,1].
	SuccessRate float64 `json:"successRate"`

	TasksCompleted int `json:"tasksCompleted"`

	// Satisfaction is the average user rating, in [0,5].
	Satisfaction float64 `json:"satisfaction"`

	LastEvaluatedAt time.Time `json:"lastEvaluatedAt"`
}

var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z][0-9A-Za-z.-]*)?$`)

var (
	// ErrDefinitionIDRequired indicates the definition id is missing.
	ErrDefinitionIDRequired = errors.New("definition id required")

	// ErrDefinitionNameRequired indicates the definition name is missing.
	ErrDefinitionNameRequired = errors.New("definition name required")

	// ErrRoleUnknown indicates the role is not part of the role enumeration.
	ErrRoleUnknown = errors.New("role unknown")

	// ErrLearningModeUnknown indicates the learning mode is not part of the enumeration.
	ErrLearningModeUnknown = errors.New("learning mode unknown")

	// ErrPriorityOutOfRange indicates the performance priority is outside [1,10].
	ErrPriorityOutOfRange = errors.New("priority out of range")

	// ErrCeilingNegative indicates a performance ceiling is negative.
	ErrCeilingNegative = errors.New("performance ceiling negative")

	// ErrVersionInvalid indicates the metadata version is not a semantic version.
	ErrVersionInvalid = errors.New("version invalid")

	// ErrCommunicationUnknown indicates a communication enumeration value is unknown.
	ErrCommunicationUnknown = errors.New("communication setting unknown")
)

// Validate checks the structural invariants of the definition.
func (definition Definition) Validate() error {
	if definition.ID == "" {
		return ErrDefinitionIDRequired
	}

	if definition.Name == "" {
		return ErrDefinitionNameRequired
	}

	if !definition.Role.Known() {
		return ErrRoleUnknown
	}

	if !definition.LearningMode.Known() {
		return ErrLearningModeUnknown
	}

	if err := definition.Configuration.Performance.Validate(); err != nil {
		return err
	}

	communication := definition.Configuration.Communication
	if !communication.Style.Known() || !communication.Format.Known() || !communication.Collaboration.ConflictResolution.Known() {
		return ErrCommunicationUnknown
	}

	if !semverPattern.MatchString(definition.Metadata.Version) {
		return ErrVersionInvalid
	}

	return nil
}

// Validate checks the performance bounds.
func (settings PerformanceSettings) Validate() error {
	if settings.Priority < 1 || settings.Priority > 10 {
		return ErrPriorityOutOfRange
	}

	if settings.MaxExecutionTime < 0 || settings.MaxMemoryMB < 0 || settings.MaxConcurrentTasks < 0 {
		return ErrCeilingNegative
	}

	return nil
}

// Clone returns a deep copy of the definition.
func (definition Definition) Clone() Definition {
	clone := definition
	clone.Goals = cloneStrings(definition.Goals)
	clone.CoreSkills = cloneStrings(definition.CoreSkills)
	clone.Configuration = definition.Configuration.Clone()
	clone.Metadata = definition.Metadata.Clone()
	return clone
}

// Clone returns a deep copy of the configuration.
func (configuration Configuration) Clone() Configuration {
	clone := configuration
	clone.Capabilities.AllowedTools = cloneStrings(configuration.Capabilities.AllowedTools)
	clone.Capabilities.FileSystem.AllowedPaths = cloneStrings(configuration.Capabilities.FileSystem.AllowedPaths)
	clone.Capabilities.FileSystem.DeniedPaths = cloneStrings(configuration.Capabilities.FileSystem.DeniedPaths)
	clone.Capabilities.Network.AllowedDomains = cloneStrings(configuration.Capabilities.Network.AllowedDomains)
	clone.Communication.Collaboration.Roles = cloneStrings(configuration.Communication.Collaboration.Roles)

	if configuration.CustomParams != nil {
		params := make(map[string]any, len(configuration.CustomParams))
		for key, value := range configuration.CustomParams {
			params[key] = CloneValue(value)
		}
		clone.CustomParams = params
	}

	return clone
}

// Clone returns a deep copy of the metadata.
func (metadata Metadata) Clone() Metadata {
	clone := metadata
	clone.Tags = cloneStrings(metadata.Tags)
	clone.Dependencies = cloneStrings(metadata.Dependencies)

	if metadata.Metrics != nil {
		metrics := *metadata.Metrics
		clone.Metrics = &metrics
	}

	return clone
}

// CloneValue deep-copies plain data values: maps, slices and scalars.
// Values of other kinds are returned as-is.
func CloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for key, item := range typed {
			clone[key] = CloneValue(item)
		}
		return clone
	case []any:
		clone := make([]any, len(typed))
		for index, item := range typed {
			clone[index] = CloneValue(item)
		}
		return clone
	default:
		return value
	}
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string(nil), values...)
}
