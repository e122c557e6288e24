package payments

import (
	"errors"
	"fmt"
	"net/http"

	"mpesa_c2b/internal/domain/entities"
	"mpesa_c2b/pkg/result"
)

var ErrOutcomeEscalated = errors.New("gateway outcome escalated")

// EscalationError is returned next to the failure Result for outcomes marked
// Escalate in the code table (today only INS-993).
type EscalationError struct {
	Outcome entities.Outcome
	Message string
}

func (e *EscalationError) Error() string {
	return e.Message
}

func (e *EscalationError) Unwrap() error {
	return ErrOutcomeEscalated
}

// ClassifyResponse maps a gateway reply to a Result.
//
// A non-2xx reply short-circuits on the HTTP status alone. Otherwise the
// branch is chosen by vendorCode only; description is copied into the
// message and never inspected. Unknown codes fall through to a generic
// failure. The returned error is non-nil only for escalating outcomes, and
// even then the Result is a populated failure.
func ClassifyResponse(httpStatus int, vendorCode, description string, httpOK bool) (result.Result[string], error) {
	if !httpOK {
		return ClassifyHTTPFailure(httpStatus, ""), nil
	}

	outcome, known := entities.LookupOutcome(entities.ResponseCode(vendorCode))
	if !known {
		return result.Failure[string](fmt.Sprintf("Erro 400 - Código: %s, Descrição: %s", vendorCode, description)), nil
	}

	if outcome.Severity == entities.SeveritySuccess {
		return result.Success(description), nil
	}

	msg := outcomeMessage(outcome, description)
	if outcome.Escalate {
		return result.Failure[string](msg), &EscalationError{Outcome: outcome, Message: msg}
	}
	return result.Failure[string](msg), nil
}

// ClassifyHTTPFailure builds the failure for a non-2xx reply. reason is the
// phrase from the status line; http.StatusText is used when it is empty.
func ClassifyHTTPFailure(status int, reason string) result.Result[string] {
	return result.Failure[string](requestFailureMessage(httpErrorMessage(status, reason)))
}

func outcomeMessage(o entities.Outcome, description string) string {
	if o.Status == 0 {
		return fmt.Sprintf("%s: %s", o.Label, description)
	}
	return fmt.Sprintf("Erro %d - %s: %s", o.Status, o.Label, description)
}

func httpErrorMessage(status int, reason string) string {
	if reason == "" {
		reason = http.StatusText(status)
	}
	return fmt.Sprintf("HTTP Error %d - %s", status, reason)
}

// requestFailureMessage is the prefix used for every failure raised outside
// the code table: transport, decoding and escalations.
func requestFailureMessage(cause string) string {
	return "Erro na requisição: " + cause
}
