package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidC2BPaymentField = errors.New("invalid c2b payment field")

// C2BPaymentRequest is a single customer-to-business payment.
//
// Wire mapping (M-Pesa OpenAPI):
//   - TransactionReference => input_TransactionReference
//   - CustomerMSISDN       => input_CustomerMSISDN
//   - Amount               => input_Amount (decimal string)
//   - ThirdPartyReference  => input_ThirdPartyReference
//   - ServiceProviderCode  => input_ServiceProviderCode
//
// ServiceProviderCode is usually left blank by callers and filled from the
// configured Credentials.
type C2BPaymentRequest struct {
	TransactionReference string          `json:"transaction_reference"`
	CustomerMSISDN       string          `json:"customer_msisdn"`
	Amount               decimal.Decimal `json:"amount"`
	ThirdPartyReference  string          `json:"third_party_reference"`
	ServiceProviderCode  string          `json:"service_provider_code"`
}

// Normalize trims surrounding whitespace from every text field.
func (r C2BPaymentRequest) Normalize() C2BPaymentRequest {
	r.TransactionReference = strings.TrimSpace(r.TransactionReference)
	r.CustomerMSISDN = strings.TrimSpace(r.CustomerMSISDN)
	r.ThirdPartyReference = strings.TrimSpace(r.ThirdPartyReference)
	r.ServiceProviderCode = strings.TrimSpace(r.ServiceProviderCode)
	return r
}

// Validate checks the fields a caller must supply. ServiceProviderCode is
// checked separately by the gateway once credentials are applied.
func (r C2BPaymentRequest) Validate() error {
	var missing []string
	if r.TransactionReference == "" {
		missing = append(missing, "transaction_reference")
	}
	if r.CustomerMSISDN == "" {
		missing = append(missing, "customer_msisdn")
	}
	if r.ThirdPartyReference == "" {
		missing = append(missing, "third_party_reference")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidC2BPaymentField, strings.Join(missing, ", "))
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidC2BPaymentField)
	}
	return nil
}
