package config

import (
	"fmt"
	"net/url"
)

type Config struct {
	DatabaseDSN    string
	ServerAddr     string
	AllowedOrigins []string
	Migrate        bool
}

func NewConfig(serverAddr, databaseDSN string, allowedOrigins []string, migrate bool) (*Config, error) {
	if serverAddr == "" {
		return nil, fmt.Errorf("server address cannot be empty")
	}
	if databaseDSN == "" {
		return nil, fmt.Errorf("database DSN cannot be empty")
	}

	for _, origin := range allowedOrigins {
		if err := validateOrigin(origin); err != nil {
			return nil, fmt.Errorf("allowed origin %q: %w", origin, err)
		}
	}

	return &Config{
		DatabaseDSN:    databaseDSN,
		ServerAddr:     serverAddr,
		AllowedOrigins: allowedOrigins,
		Migrate:        migrate,
	}, nil
}

func validateOrigin(origin string) error {
	if origin == "*" {
		return nil
	}

	u, err := url.Parse(origin)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("origin must be scheme://host[:port]")
	}
	return nil
}
