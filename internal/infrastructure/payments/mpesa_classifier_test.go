package payments

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"mpesa_c2b/internal/domain/entities"
)

func TestClassifyResponse_Success(t *testing.T) {
	r, err := ClassifyResponse(http.StatusOK, "INS-0", "Request processed successfully", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.IsSuccess() || r.Value() != "Request processed successfully" {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestClassifyResponse_KnownFailures(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"INS-1", "Erro 500 - Internal Error: desc"},
		{"INS-2", "Erro 401 - Invalid API Key: desc"},
		{"INS-5", "Erro 401 - Transaction cancelled by customer: desc"},
		{"INS-9", "Erro 408 - Request timeout: desc"},
		{"INS-10", "Erro 409 - Duplicate Transaction: desc"},
		{"INS-14", "Erro 400 - Invalid Reference: desc"},
		{"INS-16", "Unable to handle the request due to: desc"},
		{"INS-2006", "Erro 400 - Insufficient Balance: desc"},
		{"INS-2057", "Erro 400 - Invalid Language Code: desc"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			r, err := ClassifyResponse(http.StatusOK, tc.code, "desc", true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.IsSuccess() {
				t.Fatalf("expected failure")
			}
			if r.Error() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, r.Error())
			}
		})
	}
}

func TestClassifyResponse_EveryKnownCodeIsHandled(t *testing.T) {
	for _, o := range entities.KnownOutcomes() {
		r, err := ClassifyResponse(http.StatusCreated, string(o.Code), "d", true)
		if o.Code == entities.CodeSuccess {
			if !r.IsSuccess() || err != nil {
				t.Fatalf("%s: expected success", o.Code)
			}
			continue
		}
		if r.IsSuccess() {
			t.Fatalf("%s: expected failure", o.Code)
		}
		if !strings.Contains(r.Error(), o.Label) {
			t.Fatalf("%s: message %q lacks label %q", o.Code, r.Error(), o.Label)
		}
		if (err != nil) != o.Escalate {
			t.Fatalf("%s: escalate=%v but err=%v", o.Code, o.Escalate, err)
		}
	}
}

func TestClassifyResponse_Escalation(t *testing.T) {
	r, err := ClassifyResponse(http.StatusOK, "INS-993", "no mandate", true)
	if !errors.Is(err, ErrOutcomeEscalated) {
		t.Fatalf("expected ErrOutcomeEscalated, got %v", err)
	}
	var esc *EscalationError
	if !errors.As(err, &esc) || esc.Outcome.Code != entities.CodeMissingDirectDebit {
		t.Fatalf("expected EscalationError for INS-993, got %#v", err)
	}
	if r.IsSuccess() || r.Error() != "Erro 400 - Missing Direct Debit: no mandate" {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestClassifyResponse_UnknownCode(t *testing.T) {
	r, err := ClassifyResponse(http.StatusOK, "INS-9999-unknown", "weird", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(r.Error(), "INS-9999-unknown") || !strings.Contains(r.Error(), "weird") {
		t.Fatalf("expected raw code and description echoed, got %q", r.Error())
	}
}

func TestClassifyResponse_EmptyCode(t *testing.T) {
	r, err := ClassifyResponse(http.StatusOK, "", "", true)
	if err != nil || r.IsSuccess() {
		t.Fatalf("expected plain failure, got %+v err=%v", r, err)
	}
}

func TestClassifyResponse_HTTPNotOK(t *testing.T) {
	r, err := ClassifyResponse(http.StatusInternalServerError, "INS-0", "Request processed successfully", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.IsSuccess() {
		t.Fatalf("expected failure regardless of body")
	}
	if !strings.Contains(r.Error(), "500") || !strings.Contains(r.Error(), "Internal Server Error") {
		t.Fatalf("expected status 500 in message, got %q", r.Error())
	}
}

func TestClassifyResponse_DescriptionDoesNotDriveBranching(t *testing.T) {
	r, _ := ClassifyResponse(http.StatusOK, "INS-14", "INS-0 Request processed successfully", true)
	if r.IsSuccess() {
		t.Fatalf("description must not change the outcome")
	}
}

func TestClassifyHTTPFailure(t *testing.T) {
	cases := []struct {
		name   string
		status int
		reason string
		want   string
	}{
		{"gateway reason", http.StatusServiceUnavailable, "Gateway Maintenance", "Erro na requisição: HTTP Error 503 - Gateway Maintenance"},
		{"standard fallback", http.StatusBadGateway, "", "Erro na requisição: HTTP Error 502 - Bad Gateway"},
		{"nonstandard status", 599, "Network Connect Timeout", "Erro na requisição: HTTP Error 599 - Network Connect Timeout"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := ClassifyHTTPFailure(tc.status, tc.reason)
			if r.IsSuccess() || r.Error() != tc.want {
				t.Fatalf("expected %q, got %+v", tc.want, r)
			}
		})
	}
}
