package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. Earlier configs take precedence: a
// later config only fills fields that are still zero.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		// mergo treats an explicit false behind a pointer as empty,
		// so AutoMigrate is resolved separately.
		layer := *cfg
		layer.Storage.DB.AutoMigrate = nil
		if err := mergo.Merge(config, &layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.Storage.DB.AutoMigrate = firstAutoMigrate(b.configs)

	return config, nil
}

// firstAutoMigrate returns a copy of the first AutoMigrate value that is set.
func firstAutoMigrate(configs []*StructuredConfig) *bool {
	for _, cfg := range configs {
		if cfg.Storage.DB.AutoMigrate != nil {
			v := *cfg.Storage.DB.AutoMigrate
			return &v
		}
	}
	return nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withFile loads the config file named by the first config that sets
// FilePath.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
			break
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}
