package interfaces

import (
	"context"

	"mpesa_c2b/internal/domain/entities"
)

// ICredentialsProvider loads gateway credentials for an environment.
//
// environment "prod" selects production keys; any other value selects the
// test keys. Implementations return entities.ErrMissingCredential when a
// field is absent.
type ICredentialsProvider interface {
	Load(ctx context.Context, environment string) (entities.Credentials, error)
}
