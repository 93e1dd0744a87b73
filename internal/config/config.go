package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  The dashboard owns no data
// of its own: everything except the session store points at the
// clinical backend.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port the dashboard listens on
	BackendBaseURL string // base URL of the clinical backend API
	SessionSecret  string // secret used to sign session cookie tokens
	SessionTTLMin  int    // session lifetime in minutes
	HTTPTimeoutSec int    // timeout for outbound backend calls in seconds
	AMQPURL        string // broker URL for action events (empty disables publishing)
}

// Load reads configuration from the environment, falling back to a
// .env file when one exists.  SESSION_SECRET is the only required
// value; everything else has a development default.
func Load() Config {
	_ = godotenv.Load() // ignore error — plain env vars are fine without a .env
	return Config{
		Env:            getEnv("APP_ENV", "dev"),
		Port:           getEnv("APP_PORT", "8080"),
		BackendBaseURL: getEnv("BACKEND_API_URL", "http://localhost:8081/api"),
		SessionSecret:  must("SESSION_SECRET"),
		SessionTTLMin:  getEnvInt("SESSION_TTL_MIN", 30),
		HTTPTimeoutSec: getEnvInt("HTTP_TIMEOUT_SEC", 15),
		AMQPURL:        os.Getenv("AMQP_URL"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getEnv returns the variable's value or the given fallback when it is
// unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt is like getEnv but converts the value to an integer.  An
// unparsable value is a fatal configuration error.
func getEnvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
