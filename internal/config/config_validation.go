package config

import "time"

const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "go-notes-keeper"

	// defaultTokenDuration is the fixed 7-day bearer token TTL.
	defaultTokenDuration = 168 * time.Hour

	defaultClientServerURL      = "http://localhost:8080"
	defaultClientSessionDBPath  = "notes-session.db"
	defaultClientRequestTimeout = 15 * time.Second
)

// applyDefaults fills in every optional field left zero by all sources.
// Secrets have no defaults on purpose.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = defaultClientServerURL
	}
	if cfg.Client.SessionDBPath == "" {
		cfg.Client.SessionDBPath = defaultClientSessionDBPath
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = defaultClientRequestTimeout
	}
}

// validateServer checks the invariants the notes server cannot start
// without. The token signing secret is process-wide state supplied only
// externally — an empty one is a hard startup failure, never a fallback.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
