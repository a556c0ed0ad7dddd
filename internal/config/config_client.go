package config

import (
	"fmt"
	"os"
)

// ClientConfig is the top-level console configuration assembled from
// [StructuredConfig]. The console needs neither catalog credentials nor
// storage: everything goes through the portal.
type ClientConfig struct {
	// Adapter contains the portal address and request timeout.
	Adapter Adapter
	// Log contains the console log file and level.
	Log Log
}

// GetClientConfig builds and validates a console-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}
