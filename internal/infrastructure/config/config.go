package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	CredentialsSourceEnv      = "env"
	CredentialsSourceDynamoDB = "dynamodb"
)

var (
	ErrInvalidConfig            = errors.New("invalid configuration")
	ErrUnknownCredentialsSource = errors.New("unknown credentials source")
)

// AppConfig is read once in cmd/api and passed down explicitly; nothing
// below the routes package reads the process environment.
//
// Supported env vars:
//   - APP_ENV (prod selects production keys; default test)
//   - CREDENTIALS_SOURCE (env | dynamodb, default env)
//   - PORT (default 8080)
//   - MPESA_HTTP_TIMEOUT (default 30s)
//   - PAYMENT_GATEWAY_MOCK (1/true/yes/on/mock)
//   - MPESA_BREAKER_MAX_FAILURES (default 5, 0 disables)
//   - MPESA_BREAKER_OPEN_TIMEOUT (default 30s)
//   - CORS_ALLOWED_ORIGINS (comma separated, default *)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT,
//     GATEWAY_CREDENTIALS_TABLE (dynamodb source only)
type AppConfig struct {
	Environment        string
	CredentialsSource  string
	Port               int
	HTTPTimeout        time.Duration
	MockMode           bool
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
	CORSAllowedOrigins []string
	DynamoDB           DynamoDBConfig
}

type DynamoDBConfig struct {
	Region           string
	Endpoint         string
	AccessKeyID      string
	SecretAccessKey  string
	CredentialsTable string
}

func LoadAppConfig() (AppConfig, error) {
	cfg := AppConfig{
		Environment:        strings.ToLower(getenvDefault("APP_ENV", "test")),
		CredentialsSource:  strings.ToLower(getenvDefault("CREDENTIALS_SOURCE", CredentialsSourceEnv)),
		MockMode:           isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
		DynamoDB: DynamoDBConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:         os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:      os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
			CredentialsTable: getenvDefault("GATEWAY_CREDENTIALS_TABLE", "gateway_credentials"),
		},
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getenvDefault("PORT", "8080")); err != nil || cfg.Port <= 0 {
		return AppConfig{}, fmt.Errorf("%w: PORT=%q", ErrInvalidConfig, os.Getenv("PORT"))
	}
	if cfg.HTTPTimeout, err = time.ParseDuration(getenvDefault("MPESA_HTTP_TIMEOUT", "30s")); err != nil {
		return AppConfig{}, fmt.Errorf("%w: MPESA_HTTP_TIMEOUT: %v", ErrInvalidConfig, err)
	}
	if cfg.BreakerOpenTimeout, err = time.ParseDuration(getenvDefault("MPESA_BREAKER_OPEN_TIMEOUT", "30s")); err != nil {
		return AppConfig{}, fmt.Errorf("%w: MPESA_BREAKER_OPEN_TIMEOUT: %v", ErrInvalidConfig, err)
	}
	maxFailures, err := strconv.ParseUint(getenvDefault("MPESA_BREAKER_MAX_FAILURES", "5"), 10, 32)
	if err != nil {
		return AppConfig{}, fmt.Errorf("%w: MPESA_BREAKER_MAX_FAILURES: %v", ErrInvalidConfig, err)
	}
	cfg.BreakerMaxFailures = uint32(maxFailures)

	switch cfg.CredentialsSource {
	case CredentialsSourceEnv, CredentialsSourceDynamoDB:
	default:
		return AppConfig{}, fmt.Errorf("%w: %q", ErrUnknownCredentialsSource, cfg.CredentialsSource)
	}

	log.Printf("[config] loaded environment=%s credentials_source=%s port=%d mock=%v", cfg.Environment, cfg.CredentialsSource, cfg.Port, cfg.MockMode)
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
