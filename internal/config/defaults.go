package config

import "time"

const (
	defaultTargetName     = "Spectrum"
	defaultCatalogBaseURL = "https://gateway.marvel.com"
	defaultDSN            = "agent.db"
	defaultHTTPAddress    = "0.0.0.0:5000"
	defaultPortalAddress  = "localhost:5000"
	defaultClientTimeout  = 5 * time.Minute
	defaultLogLevel       = "info"
	defaultClientLogFile  = "agent-portal-client.log"
)

func defaults() *StructuredConfig {
	autoMigrate := true

	return &StructuredConfig{
		App:     App{TargetName: defaultTargetName},
		Catalog: Catalog{BaseURL: defaultCatalogBaseURL},
		Storage: Storage{
			DB: DB{DSN: defaultDSN, AutoMigrate: &autoMigrate},
		},
		Server: Server{HTTPAddress: defaultHTTPAddress},
		Adapter: Adapter{
			HTTPAddress:    defaultPortalAddress,
			RequestTimeout: defaultClientTimeout,
		},
		Log: Log{Level: defaultLogLevel, File: defaultClientLogFile},
	}
}
