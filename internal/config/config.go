package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultCleanInput  = "6.1.txt"
	DefaultCleanOutput = "6.1_clean.txt"
)

type Config struct {
	LogLevel    string
	LogFormat   string
	CleanInput  string
	CleanOutput string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envFile is read from the working directory.
const envFile = ".env"

// loadEnvFile applies path to the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// Load reads configuration from the environment after applying .env. The
// returned Config is always usable; a non-nil error reports an unreadable or
// malformed .env that was skipped, for the caller to log once logging is up.
func Load() (Config, error) {
	envErr := loadEnvFile(envFile)
	return Config{
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "console"),
		CleanInput:  getenv("TSCLEAN_INPUT", DefaultCleanInput),
		CleanOutput: getenv("TSCLEAN_OUTPUT", DefaultCleanOutput),
	}, envErr
}
