package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRegistration(t *testing.T) {
	m := New()
	m.ObserveRegistration(OutcomeCreated)
	m.ObserveRegistration(OutcomeCreated)
	m.ObserveRegistration(OutcomeDuplicate)

	if got := testutil.ToFloat64(m.Registrations.WithLabelValues(OutcomeCreated)); got != 2 {
		t.Fatalf("expected 2 created registrations, got %v", got)
	}
	if got := testutil.ToFloat64(m.Registrations.WithLabelValues(OutcomeDuplicate)); got != 1 {
		t.Fatalf("expected 1 duplicate registration, got %v", got)
	}

	var nilMetrics *Metrics
	nilMetrics.ObserveRegistration(OutcomeInvalid)
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("/alunos", 302)
	m.ObserveRequest("/alunos", 302)

	if got := testutil.ToFloat64(m.Requests.WithLabelValues("/alunos", "302")); got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}

	var nilMetrics *Metrics
	nilMetrics.ObserveRequest("/", 200)
}
