package entities

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCredentials_Validate(t *testing.T) {
	c := Credentials{APIKey: "k", PublicKey: "p", ServiceProviderCode: "171717", Origin: "developer.mpesa.vm.co.mz", APIHost: "api.sandbox.vm.co.mz"}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Credentials{APIKey: "k", Origin: " "}.Validate()
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	for _, field := range []string{"public_key", "service_provider_code", "origin", "api_host"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s in %q", field, err.Error())
		}
	}
	if strings.Contains(err.Error(), "api_key") {
		t.Fatalf("api_key is set and should not be reported: %q", err.Error())
	}
}

func TestCredentials_StringRedactsSecrets(t *testing.T) {
	c := Credentials{APIKey: "super-secret", PublicKey: "MIIBIjANBgkq", ServiceProviderCode: "171717"}
	for _, s := range []string{c.String(), fmt.Sprintf("%v", c), fmt.Sprintf("%+v", c), fmt.Sprintf("%#v", c)} {
		if strings.Contains(s, "super-secret") || strings.Contains(s, "MIIBIjANBgkq") {
			t.Fatalf("secret leaked: %s", s)
		}
		if !strings.Contains(s, "171717") {
			t.Fatalf("expected short code in %s", s)
		}
	}
}
