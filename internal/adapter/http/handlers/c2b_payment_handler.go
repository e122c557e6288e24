package handlers

import (
	"errors"
	"log"
	"net/http"

	request "mpesa_c2b/internal/adapter/http/dto/request"
	response "mpesa_c2b/internal/adapter/http/dto/response"
	"mpesa_c2b/internal/infrastructure/crypto"
	"mpesa_c2b/internal/usecase"
	"mpesa_c2b/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidC2BPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// C2BPaymentHandler handles HTTP requests for M-Pesa C2B payments.
type C2BPaymentHandler struct {
	usecase usecase.IC2BPaymentUseCase
}

func NewC2BPaymentHandler(uc usecase.IC2BPaymentUseCase) *C2BPaymentHandler {
	return &C2BPaymentHandler{usecase: uc}
}

// CreateC2BPayment submits a single stage C2B payment.
//
// @Summary      Submit C2B payment
// @Description  Sends a customer-to-business payment to M-Pesa and returns the classified outcome.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.C2BPaymentCreateRequest  true  "C2B payment"
// @Success      200      {object}  response.C2BPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  response.C2BPaymentResponse
// @Failure      500      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /payments/c2b [post]
func (h *C2BPaymentHandler) CreateC2BPayment(c *gin.Context) {
	var payload request.C2BPaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[c2b][handler] invalid payload request_id=%s err=%v", c.GetString(RequestIDKey), err)
		c.JSON(errInvalidC2BPayload.HTTPStatus, errInvalidC2BPayload.ToHTTPError())
		return
	}
	log.Printf("[c2b][handler] create start request_id=%s transaction_reference=%s", c.GetString(RequestIDKey), payload.TransactionReference)

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[c2b][handler] create failed request_id=%s transaction_reference=%s err=%v", c.GetString(RequestIDKey), payload.TransactionReference, err)
		appErr := mapC2BPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	body := response.FromC2BResult(payload.TransactionReference, res)
	if !res.IsSuccess() {
		log.Printf("[c2b][handler] create rejected request_id=%s transaction_reference=%s", c.GetString(RequestIDKey), payload.TransactionReference)
		c.JSON(http.StatusUnprocessableEntity, body)
		return
	}
	log.Printf("[c2b][handler] create success request_id=%s transaction_reference=%s", c.GetString(RequestIDKey), payload.TransactionReference)
	c.JSON(http.StatusOK, body)
}

func mapC2BPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidC2BPayment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, crypto.ErrEncoding):
		return pkg.NewDomainError("CREDENTIAL_ENCODING_ERROR", "Gateway credentials could not be encoded", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
