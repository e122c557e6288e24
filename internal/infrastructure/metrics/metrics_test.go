package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncOutcome(t *testing.T) {
	before := testutil.ToFloat64(GatewayOutcomesTotal.WithLabelValues("INS-14", "permanent-caller-error"))
	IncOutcome("INS-14", "permanent-caller-error")
	after := testutil.ToFloat64(GatewayOutcomesTotal.WithLabelValues("INS-14", "permanent-caller-error"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestIncEscalation(t *testing.T) {
	before := testutil.ToFloat64(GatewayEscalationsTotal.WithLabelValues("INS-993"))
	IncEscalation("INS-993")
	if got := testutil.ToFloat64(GatewayEscalationsTotal.WithLabelValues("INS-993")) - before; got != 1 {
		t.Fatalf("expected 1 escalation, got %v", got)
	}
}

func TestObserveDuration(t *testing.T) {
	ObserveDuration("success", 0.2)
	if n := testutil.CollectAndCount(GatewayRequestDuration); n < 1 {
		t.Fatalf("expected at least one histogram series, got %d", n)
	}
}
