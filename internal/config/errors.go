package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidAgentConfigs indicates missing catalog credentials
	// (AGENT_PUBLIC_KEY / AGENT_PRIVATE_KEY).
	ErrInvalidAgentConfigs = errors.New("invalid agent configuration")
	// ErrInvalidCatalogConfigs indicates an unusable catalog endpoint
	// (for example, a base URL without scheme or host).
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, empty default target name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid console adapter settings
	// (for example, missing portal address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
