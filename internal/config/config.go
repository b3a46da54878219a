package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	LogLevel string

	AuthType            string // none | basic | session
	SessionName         string
	SessionDuration     time.Duration
	SessionStore        string // memory | redis
	SessionCookieSecure bool

	RedisAddr     string
	RedisPassword string

	DatabaseDSN string

	PersonalData PersonalData
}

// PersonalData locates the database read by the filtered logger.
type PersonalData struct {
	Username string
	Password string
	Host     string
	Name     string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	duration, err := getEnvAsSeconds("SESSION_DURATION", 0)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AuthType:            getEnv("AUTH_TYPE", "session"),
		SessionName:         getEnv("SESSION_NAME", "_my_session_id"),
		SessionDuration:     duration,
		SessionStore:        getEnv("SESSION_STORE", "memory"),
		SessionCookieSecure: getEnvAsBool("SESSION_COOKIE_SECURE", false),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		PersonalData: PersonalData{
			Username: getEnv("PERSONAL_DATA_DB_USERNAME", "root"),
			Password: os.Getenv("PERSONAL_DATA_DB_PASSWORD"),
			Host:     getEnv("PERSONAL_DATA_DB_HOST", "localhost"),
			Name:     os.Getenv("PERSONAL_DATA_DB_NAME"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.AuthType {
	case "none", "basic", "session":
	default:
		return fmt.Errorf("config: AUTH_TYPE must be none, basic or session, got %q", c.AuthType)
	}

	switch c.SessionStore {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: SESSION_STORE must be memory or redis, got %q", c.SessionStore)
	}

	if c.AuthType == "session" && c.SessionName == "" {
		return fmt.Errorf("config: SESSION_NAME is required for session auth")
	}
	if c.SessionDuration < 0 {
		return fmt.Errorf("config: SESSION_DURATION must not be negative")
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSeconds(key string, defaultValue int) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(defaultValue) * time.Second, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a number of seconds: %w", key, err)
	}
	return time.Duration(n) * time.Second, nil
}
