// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - The default `.env` file in the working directory is read once, if present.
//   - LoadEnv reads additional `.env` files without overriding variables that
//     are already set.
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type, so each type is parsed once per process.
//   - MustLoad panics on failure, for configuration a program cannot start without.
//
// # Usage
//
//	type Config struct {
//	    Output   string `env:"TEXTKIT_OUTPUT" envDefault:"text"`
//	    LogLevel string `env:"TEXTKIT_LOG_LEVEL" envDefault:"warn"`
//	}
//
//	import "github.com/dmitrymomot/textkit/pkg/config"
//
//	func main() {
//	    var cfg Config
//	    if err := config.Load(&cfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// # Error Handling
//
// Errors wrap the sentinels below and can be matched with errors.Is:
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – an explicitly requested .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load or MustLoad.
//
// # Testing Helpers
//
// ResetCache clears every cached type so tests can change the environment
// with t.Setenv and load again.
package config
