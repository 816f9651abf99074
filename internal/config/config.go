package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultProjectionHorizonDays = 30

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string

	// MaxProjectionHorizonDays caps the cash-flow projection window a
	// single request may ask for.
	MaxProjectionHorizonDays int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:          "localhost",
		PostgresPort:             "5433",
		PostgresDB:               "postgres",
		PostgresUsername:         "postgres",
		PostgresPassword:         "testpassword",
		HTTPPort:                 "9446",
		MaxProjectionHorizonDays: defaultProjectionHorizonDays,
	}

	if v := os.Getenv("POSTGRES_ADDRESS"); v != "" {
		env.PostgresAddress = v
	}

	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		env.PostgresPort = v
	}

	if v := os.Getenv("POSTGRES_DB"); v != "" {
		env.PostgresDB = v
	}

	if v := os.Getenv("POSTGRES_USERNAME"); v != "" {
		env.PostgresUsername = v
	}

	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		env.PostgresPassword = v
	}

	if v := os.Getenv("HTTP_PORT"); v != "" {
		env.HTTPPort = v
	}

	if v := os.Getenv("MAX_PROJECTION_HORIZON_DAYS"); v != "" {
		horizon, err := strconv.Atoi(v)
		if err == nil && horizon > 0 {
			env.MaxProjectionHorizonDays = horizon
		}
	}

	return &env, nil
}

// PostgresDSN assembles the connection string for both the server and the
// migration runner.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" + c.PostgresPassword +
		"@" + c.PostgresAddress + ":" + c.PostgresPort + "/" + c.PostgresDB +
		"?sslmode=disable"
}
