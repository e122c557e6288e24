package request

import (
	"mpesa_c2b/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// C2BPaymentCreateRequest is the payload for POST /v1/payments/c2b.
//
// amount accepts a JSON number or a decimal string ("10.50").
// service_provider_code is optional; the configured short code is used when
// it is empty.
type C2BPaymentCreateRequest struct {
	TransactionReference string           `json:"transaction_reference" binding:"required"`
	CustomerMSISDN       string           `json:"customer_msisdn" binding:"required"`
	Amount               *decimal.Decimal `json:"amount" binding:"required"`
	ThirdPartyReference  string           `json:"third_party_reference" binding:"required"`
	ServiceProviderCode  string           `json:"service_provider_code"`
}

func (r C2BPaymentCreateRequest) ToEntity() entities.C2BPaymentRequest {
	amount := decimal.Zero
	if r.Amount != nil {
		amount = *r.Amount
	}
	return entities.C2BPaymentRequest{
		TransactionReference: r.TransactionReference,
		CustomerMSISDN:       r.CustomerMSISDN,
		Amount:               amount,
		ThirdPartyReference:  r.ThirdPartyReference,
		ServiceProviderCode:  r.ServiceProviderCode,
	}
}
