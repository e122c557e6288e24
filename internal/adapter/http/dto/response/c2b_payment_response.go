package response

import "mpesa_c2b/pkg/result"

type C2BPaymentResponse struct {
	TransactionReference string `json:"transaction_reference"`
	Success              bool   `json:"success"`
	Message              string `json:"message,omitempty"`
	Error                string `json:"error,omitempty"`
}

func FromC2BResult(transactionReference string, r result.Result[string]) C2BPaymentResponse {
	value, errMsg := r.Unwrap()
	return C2BPaymentResponse{
		TransactionReference: transactionReference,
		Success:              r.IsSuccess(),
		Message:              value,
		Error:                errMsg,
	}
}
