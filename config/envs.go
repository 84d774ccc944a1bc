// Package config loads gridpath's runtime settings from the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrBadEnv is returned when an environment variable cannot be parsed.
var ErrBadEnv = errors.New("config: invalid environment variable")

// Config holds the application's configuration values.
type Config struct {
	HostIP     string // Host IP for the server
	RESTPort   int    // Port for the REST API
	GinMode    string // Mode for the Gin framework (e.g., release, debug, test)
	CORSOrigin string // Allowed browser origin for the API
	Rows       int    // Default grid height when no map is given
	Cols       int    // Default grid width when no map is given
	MaxRuns    int    // Number of search results the API keeps in memory
	MaxCells   int    // Largest map, in cells, the API accepts
}

// Addr returns host:port for the HTTP listener.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// Load reads a .env file if one exists, then the environment.
// Unset variables fall back to defaults; malformed or non-positive integers
// return ErrBadEnv.
func Load(files ...string) (Config, error) {
	// Load .env file if available
	if err := godotenv.Load(files...); err != nil {
		Info("config", ".env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		HostIP:     getEnvWithDefault("GRIDPATH_HOST", "0.0.0.0"),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
		CORSOrigin: getEnvWithDefault("GRIDPATH_CORS_ORIGIN", "*"),
	}
	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"GRIDPATH_PORT", 8080, &cfg.RESTPort},
		{"GRIDPATH_ROWS", gridgraph.DefaultRows, &cfg.Rows},
		{"GRIDPATH_COLS", gridgraph.DefaultCols, &cfg.Cols},
		{"GRIDPATH_MAX_RUNS", 128, &cfg.MaxRuns},
		{"GRIDPATH_MAX_CELLS", 250_000, &cfg.MaxCells},
	}
	for _, e := range ints {
		v, err := getEnvAsIntWithDefault(e.key, e.def)
		if err != nil {
			return Config{}, err
		}
		*e.dst = v
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses a positive integer variable, or returns defaultValue if unset.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrBadEnv, key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrBadEnv, key, value)
	}
	return value, nil
}
