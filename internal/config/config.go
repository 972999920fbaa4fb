package config

import (
	"fmt"
	"os"
)

type Config struct {
	ServerAddr     string
	DatabaseDSN    string
	MigrationsDir  string
	AllowedOrigins []string
}

func NewConfig(serverAddr, databaseDSN, migrationsDir string, allowedOrigins []string) (*Config, error) {
	if serverAddr == "" {
		return nil, fmt.Errorf("server address cannot be empty")
	}
	if databaseDSN == "" {
		return nil, fmt.Errorf("database DSN cannot be empty")
	}
	if migrationsDir == "" {
		return nil, fmt.Errorf("migrations directory cannot be empty")
	}

	return &Config{
		ServerAddr:     serverAddr,
		DatabaseDSN:    databaseDSN,
		MigrationsDir:  migrationsDir,
		AllowedOrigins: allowedOrigins,
	}, nil
}

// EnvOr returns the environment variable's value, or fallback when unset.
// Combined with godotenv in main, this lets a .env file provide flag defaults.
func EnvOr(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
