// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// agent-portal application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON/YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - validate : go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level settings such as the default
	// synchronization target.
	App App `envPrefix:"APP_"`

	// Agent holds the catalog credentials. Both keys are mandatory for the
	// server.
	Agent Agent `envPrefix:"AGENT_"`

	// Catalog holds the remote catalog endpoint settings.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// Storage holds configuration for the character store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the terminal console uses to reach the
	// portal's JSON API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TargetName is the character a synchronization run is anchored on when
	// the caller does not name one.
	// Env: APP_TARGET_NAME
	TargetName string `env:"TARGET_NAME" validate:"required"`
}

// Agent holds the catalog credential pair.
type Agent struct {
	// PublicKey is sent as the "apikey" query parameter.
	// Env: AGENT_PUBLIC_KEY
	PublicKey string `env:"PUBLIC_KEY" validate:"required"`

	// PrivateKey only ever participates in the request digest and is never
	// sent over the wire.
	// Env: AGENT_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY" validate:"required"`
}

// Catalog holds the remote catalog endpoint settings.
type Catalog struct {
	// BaseURL is the catalog gateway root, e.g. "https://gateway.marvel.com".
	// Env: CATALOG_BASE_URL
	BaseURL string `env:"BASE_URL" validate:"required,http_url"`

	// RequestTimeout bounds a single catalog call. Zero means no timeout.
	// Env: CATALOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
}

// Storage groups the configuration for the storage backends used by the
// application.
type Storage struct {
	// DB holds the character store connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the character store.
type DB struct {
	// DSN selects the backend: "memory" for the in-process store, a
	// postgres:// URL for PostgreSQL, anything else is a SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" validate:"required"`

	// AutoMigrate runs the embedded schema migrations at startup.
	// Env: STORAGE_DB_AUTO_MIGRATE
	AutoMigrate *bool `env:"AUTO_MIGRATE"`
}

// ShouldMigrate reports whether migrations must run. Unset means yes.
func (d DB) ShouldMigrate() bool {
	return d.AutoMigrate == nil || *d.AutoMigrate
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// GRPCAddress is the TCP address of the gRPC health endpoint. Empty
	// disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Zero means no timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the console's view of the portal.
type Adapter struct {
	// HTTPAddress is the portal base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// RequestTimeout bounds a single console request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the rotating log file used by the console.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (first source
// with a non-zero field wins):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON/YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation. Missing catalog
// credentials are reported as [ErrInvalidAgentConfigs].
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}
