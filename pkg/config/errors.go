package config

import "errors"

var (
	ErrNilPointer    = errors.New("config: nil destination")
	ErrParsingConfig = errors.New("config: cannot parse environment")

	// ErrLoadingEnvFile is returned by LoadEnv for unreadable files. The
	// implicit .env read by Load never fails.
	ErrLoadingEnvFile = errors.New("config: cannot load env file")

	// ErrCacheMiss means a parsed value vanished from the cache or has an
	// unexpected type, typically after a concurrent ResetCache.
	ErrCacheMiss = errors.New("config: cached value unavailable")
)
