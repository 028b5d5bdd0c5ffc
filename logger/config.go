package logger

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvDefaultFile names the environment variable holding the default log path
const EnvDefaultFile = "MANUSCRIT_DEFAULT_FILE"

// Config holds process-wide settings resolved once and injected at
// construction
type Config struct {
	// DefaultPath is used when no explicit path is given (empty = unset)
	DefaultPath string
}

// ConfigFromEnv builds a Config from the process environment
func ConfigFromEnv() Config {
	return Config{DefaultPath: os.Getenv(EnvDefaultFile)}
}

// ConfigFromDotenv builds a Config from the process environment, falling
// back to the given dotenv files in order. The process environment wins
// so that an exported variable overrides a checked-in file.
func ConfigFromDotenv(files ...string) (Config, error) {
	cfg := ConfigFromEnv()
	if cfg.DefaultPath != "" {
		return cfg, nil
	}

	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", file, err)
		}
		if path := values[EnvDefaultFile]; path != "" {
			cfg.DefaultPath = path
			return cfg, nil
		}
	}
	return cfg, nil
}
