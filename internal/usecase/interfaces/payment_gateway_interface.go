package interfaces

import (
	"context"

	"mpesa_c2b/internal/domain/entities"
	"mpesa_c2b/pkg/result"
)

// IPaymentGateway abstracts the M-Pesa C2B endpoint.
//
// Business and transport failures come back as a failure Result. The error
// return is reserved for faults that make the request impossible to build
// (token encoding), which callers must not retry.
type IPaymentGateway interface {
	C2BPayment(ctx context.Context, req entities.C2BPaymentRequest) (result.Result[string], error)
}
