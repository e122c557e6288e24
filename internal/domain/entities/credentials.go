package entities

import (
	"errors"
	"fmt"
	"strings"
)

const (
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

var ErrMissingCredential = errors.New("missing gateway credential")

// Credentials are the gateway keys for one environment.
//
// APIKey and PublicKey are secrets; String and GoString redact them so a
// Credentials value can be passed to log.Printf safely.
type Credentials struct {
	APIKey              string
	PublicKey           string
	ServiceProviderCode string
	Origin              string
	APIHost             string
}

// Validate reports every empty field at once.
func (c Credentials) Validate() error {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"api_key", c.APIKey},
		{"public_key", c.PublicKey},
		{"service_provider_code", c.ServiceProviderCode},
		{"origin", c.Origin},
		{"api_host", c.APIHost},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredential, strings.Join(missing, ", "))
	}
	return nil
}

func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{api_key=%s public_key=%s service_provider_code=%s origin=%s api_host=%s}",
		redact(c.APIKey), redact(c.PublicKey), c.ServiceProviderCode, c.Origin, c.APIHost)
}

func (c Credentials) GoString() string {
	return c.String()
}

func redact(s string) string {
	if s == "" {
		return "<empty>"
	}
	return "<redacted>"
}
