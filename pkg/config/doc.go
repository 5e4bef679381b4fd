// Package config loads typed configuration from environment variables.
//
// Parsing is delegated to github.com/caarlos0/env/v11 and .env files are
// read with github.com/joho/godotenv. A `.env` in the working directory is
// applied once on first use; LoadEnv applies further files without
// overriding variables that are already set.
//
// Each configuration type, together with its prefix, is parsed once per
// process and served from a cache afterwards:
//
//	type Config struct {
//	    Lang      string `env:"LANG" envDefault:"en"`
//	    OutputDir string `env:"OUTPUT_DIR"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//	var cfg Config
//	if err := config.LoadWithPrefix(&cfg, "IMAGEFORM_"); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// A failed parse is not cached, so it can be retried after the environment
// is fixed. Tests that change the environment call ResetCache.
//
// Errors are sentinels for errors.Is: ErrParsingConfig, ErrNilPointer,
// ErrLoadingEnvFile and ErrCacheMiss.
package config
