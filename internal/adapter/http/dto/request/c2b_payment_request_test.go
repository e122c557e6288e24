package request

import (
	"encoding/json"
	"testing"
)

func TestC2BPaymentCreateRequest_ToEntity(t *testing.T) {
	var r C2BPaymentCreateRequest
	body := `{"transaction_reference":"T1","customer_msisdn":"258841234567","amount":"10.50","third_party_reference":"TP1"}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := r.ToEntity()
	if e.TransactionReference != "T1" || e.CustomerMSISDN != "258841234567" || e.ThirdPartyReference != "TP1" {
		t.Fatalf("unexpected entity: %+v", e)
	}
	if e.Amount.String() != "10.5" {
		t.Fatalf("expected 10.5, got %s", e.Amount.String())
	}
	if e.ServiceProviderCode != "" {
		t.Fatalf("expected empty short code, got %q", e.ServiceProviderCode)
	}
}

func TestC2BPaymentCreateRequest_NumericAmount(t *testing.T) {
	var r C2BPaymentCreateRequest
	if err := json.Unmarshal([]byte(`{"amount":10.0}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.ToEntity().Amount.String(); got != "10" {
		t.Fatalf("expected 10, got %s", got)
	}
}

func TestC2BPaymentCreateRequest_MissingAmount(t *testing.T) {
	r := C2BPaymentCreateRequest{TransactionReference: "T1"}
	if !r.ToEntity().Amount.IsZero() {
		t.Fatalf("expected zero amount")
	}
}
