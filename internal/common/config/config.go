package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/versionverse/backend/internal/common/constants"
	commonerrors "github.com/versionverse/backend/internal/common/errors"
)

// Config is built once at startup and passed explicitly; business logic
// never reads the environment directly.
type Config struct {
	HTTPPort       string
	DatabaseURL    string
	JWTSecret      string
	BcryptCost     int
	TokenTTL       time.Duration
	RequestTimeout time.Duration
}

func Load() (Config, error) {
	jwtSecret, err := mustEnv("JWT_SECRET")
	if err != nil {
		return Config{}, err
	}

	if len(jwtSecret) < constants.JWTSecretMinLength {
		return Config{}, fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidJWTSecret, len(jwtSecret))
	}

	saltValue, err := mustEnv("PASSWORD_SALT")
	if err != nil {
		return Config{}, err
	}

	cost, err := strconv.Atoi(saltValue)
	if err != nil || cost < constants.BcryptMinCost || cost > constants.BcryptMaxCost {
		return Config{}, fmt.Errorf("%w: %q", commonerrors.ErrInvalidBcryptCost, saltValue)
	}

	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:       getEnv("HTTP_PORT", constants.DefaultHTTPPort),
		DatabaseURL:    databaseURL,
		JWTSecret:      jwtSecret,
		BcryptCost:     cost,
		TokenTTL:       getDurationEnv("TOKEN_TTL", 0),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
	}, nil
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
