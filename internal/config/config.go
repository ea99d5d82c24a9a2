package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string
	LogLevel string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine, the process environment still applies.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		LogLevel:         "info",
	}

	overrides := map[string]*string{
		"POSTGRES_ADDRESS":  &env.PostgresAddress,
		"POSTGRES_PORT":     &env.PostgresPort,
		"POSTGRES_DB":       &env.PostgresDB,
		"POSTGRES_USERNAME": &env.PostgresUsername,
		"POSTGRES_PASSWORD": &env.PostgresPassword,
		"HTTP_PORT":         &env.HTTPPort,
		"LOG_LEVEL":         &env.LogLevel,
	}
	for key, target := range overrides {
		if value := os.Getenv(key); len(value) != 0 {
			*target = value
		}
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	var errs []error

	for name, value := range map[string]string{"HTTP_PORT": c.HTTPPort, "POSTGRES_PORT": c.PostgresPort} {
		port, err := strconv.Atoi(value)
		if err != nil || port < 1 || port > 65535 {
			errs = append(errs, fmt.Errorf("invalid %s %q: must be a number between 1 and 65535", name, value))
		}
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err))
	}

	if c.PostgresAddress == "" || c.PostgresDB == "" || c.PostgresUsername == "" {
		errs = append(errs, errors.New("postgres address, db and username must not be empty"))
	}

	return errors.Join(errs...)
}

// PostgresURL returns the connection string used by the app and the migration script.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" + c.PostgresPassword + "@" +
		c.PostgresAddress + ":" + c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
