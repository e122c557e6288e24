package config

import (
	"context"
	"log"
	"os"
	"strings"

	"mpesa_c2b/internal/domain/entities"
	"mpesa_c2b/internal/usecase/interfaces"
)

// EnvCredentialsProvider reads PRODUCTION_* keys for "prod" and TEST_* keys
// for every other environment.
type EnvCredentialsProvider struct{}

var _ interfaces.ICredentialsProvider = EnvCredentialsProvider{}

func NewEnvCredentialsProvider() EnvCredentialsProvider {
	return EnvCredentialsProvider{}
}

func (EnvCredentialsProvider) Load(_ context.Context, environment string) (entities.Credentials, error) {
	prefix := "TEST_"
	if strings.EqualFold(strings.TrimSpace(environment), entities.EnvironmentProduction) {
		prefix = "PRODUCTION_"
	}

	creds := entities.Credentials{
		APIKey:              strings.TrimSpace(os.Getenv(prefix + "API_KEY")),
		PublicKey:           strings.TrimSpace(os.Getenv(prefix + "PUBLIC_KEY")),
		ServiceProviderCode: strings.TrimSpace(os.Getenv(prefix + "SHORT_CODE")),
		Origin:              strings.TrimSpace(os.Getenv(prefix + "ORIGIN")),
		APIHost:             strings.TrimSpace(os.Getenv(prefix + "API_HOST")),
	}
	if err := creds.Validate(); err != nil {
		log.Printf("[config] env credentials incomplete prefix=%s err=%v", prefix, err)
		return entities.Credentials{}, err
	}
	log.Printf("[config] env credentials loaded prefix=%s creds=%s", prefix, creds)
	return creds, nil
}
