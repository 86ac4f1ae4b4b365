package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP         string // Host IP for the server
	RESTPort       int    // Port for the REST API
	GinMode        string // Mode for the Gin framework (e.g., release, debug, test)
	RedisHost      string // Hostname or IP address for Redis
	RedisPort      int    // Port number for Redis
	RedisPassword  string // Password for Redis (empty for none)
	MazeTTLSeconds int    // Seconds a generated maze stays downloadable
	MaxWidth       int    // Largest accepted maze width
	MaxHeight      int    // Largest accepted maze height
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:         getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:       getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		RedisHost:      getEnvWithDefault("REDIS_HOST", "localhost"),
		RedisPort:      getEnvAsIntWithDefault("REDIS_PORT", 6379),
		RedisPassword:  getEnvWithDefault("REDIS_PASS", ""),
		MazeTTLSeconds: getEnvAsIntWithDefault("MAZE_TTL_SECONDS", 3600),
		MaxWidth:       getEnvAsIntWithDefault("MAX_WIDTH", 200),
		MaxHeight:      getEnvAsIntWithDefault("MAX_HEIGHT", 200),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// or returns a default value if not set. A set but unparsable value is a fatal error.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
