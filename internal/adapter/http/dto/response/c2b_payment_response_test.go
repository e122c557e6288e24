package response

import (
	"testing"

	"mpesa_c2b/pkg/result"
)

func TestFromC2BResult(t *testing.T) {
	ok := FromC2BResult("T1", result.Success("Request processed successfully"))
	if !ok.Success || ok.Message != "Request processed successfully" || ok.Error != "" || ok.TransactionReference != "T1" {
		t.Fatalf("unexpected response: %+v", ok)
	}

	failed := FromC2BResult("T2", result.Failure[string]("Erro 400 - Invalid Amount: x"))
	if failed.Success || failed.Message != "" || failed.Error != "Erro 400 - Invalid Amount: x" {
		t.Fatalf("unexpected response: %+v", failed)
	}
}
