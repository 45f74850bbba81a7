package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default. A missing gateway credential does not stop the
// process; each send request reports it instead.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// SMS gateway
	GatewayCredential string
	GatewayBaseURL    string
	GatewaySimNumber  int
	GatewayTimeout    time.Duration

	// Ingress limiting: requests per second per send route, 0 disables it.
	RateLimit int

	CORSAllowedOrigins []string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return &Config{
		HTTPPort:        getEnv("PORT", "5000"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		GatewayCredential: os.Getenv("SMS_GATEWAY_CREDENTIALS"),
		GatewayBaseURL:    getEnv("SMS_GATEWAY_URL", "https://api.sms-gate.app"),
		GatewaySimNumber:  getInt("SMS_GATEWAY_SIM_NUMBER", 1),
		GatewayTimeout:    getDuration("SMS_GATEWAY_TIMEOUT", 0),

		RateLimit: getInt("RATE_LIMIT_PER_SECOND", 0),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
