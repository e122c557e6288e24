package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"mpesa_c2b/internal/domain/entities"
	"mpesa_c2b/internal/usecase/interfaces"
	"mpesa_c2b/pkg/result"
)

var (
	ErrInvalidC2BPayment           = errors.New("invalid c2b payment")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// IC2BPaymentUseCase is the caller-facing submit operation.
//
// The Result is the outcome of the payment; the error is reserved for
// requests rejected before reaching the gateway (validation) and for fatal
// gateway faults (token encoding). When the error is non-nil the Result is a
// failure carrying the same message.
type IC2BPaymentUseCase interface {
	Submit(ctx context.Context, req entities.C2BPaymentRequest) (result.Result[string], error)
}

type C2BPaymentUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IC2BPaymentUseCase = (*C2BPaymentUseCase)(nil)

func NewC2BPaymentUseCase(gateway interfaces.IPaymentGateway) *C2BPaymentUseCase {
	return &C2BPaymentUseCase{gateway: gateway}
}

func (u *C2BPaymentUseCase) Submit(ctx context.Context, req entities.C2BPaymentRequest) (result.Result[string], error) {
	req = req.Normalize()
	log.Printf("[c2b][usecase] submit start transaction_reference=%q third_party_reference=%q amount=%s",
		req.TransactionReference, req.ThirdPartyReference, req.Amount.String())

	if err := req.Validate(); err != nil {
		log.Printf("[c2b][usecase] invalid request transaction_reference=%q err=%v", req.TransactionReference, err)
		err = fmt.Errorf("%w: %w", ErrInvalidC2BPayment, err)
		return result.Failure[string](err.Error()), err
	}
	if u.gateway == nil {
		log.Printf("[c2b][usecase] gateway not configured transaction_reference=%s", req.TransactionReference)
		return result.Failure[string](ErrPaymentGatewayNotConfigured.Error()), ErrPaymentGatewayNotConfigured
	}

	res, err := u.gateway.C2BPayment(ctx, req)
	if err != nil {
		log.Printf("[c2b][usecase] gateway fatal error transaction_reference=%s err=%v", req.TransactionReference, err)
		return result.Failure[string](err.Error()), err
	}

	if res.IsSuccess() {
		log.Printf("[c2b][usecase] submit success transaction_reference=%s", req.TransactionReference)
	} else {
		log.Printf("[c2b][usecase] submit failed transaction_reference=%s reason=%q", req.TransactionReference, res.Error())
	}
	return res, nil
}
