package config

import "errors"

var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// supplied by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrMissingDatabaseDSN indicates that the server has no database
	// connection string to work with.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")

	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty session database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
