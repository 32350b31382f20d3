package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordLoaded("room")
	m.RecordLoaded("room")
	m.RecordLoaded("portal")
	m.LoadFailed()
	m.RecordSaved("character")
	m.ReferencesResolved(5, 2)
	m.EventDispatched("movement", 3)
	m.SetEntities(12)

	testutil.AssertEqual(t, "rooms loaded", promtest.ToFloat64(m.recordsLoaded.WithLabelValues("room")), 2.0)
	testutil.AssertEqual(t, "portals loaded", promtest.ToFloat64(m.recordsLoaded.WithLabelValues("portal")), 1.0)
	testutil.AssertEqual(t, "load failures", promtest.ToFloat64(m.loadFailures), 1.0)
	testutil.AssertEqual(t, "saved", promtest.ToFloat64(m.recordsSaved.WithLabelValues("character")), 1.0)
	testutil.AssertEqual(t, "resolved", promtest.ToFloat64(m.references.WithLabelValues("resolved")), 5.0)
	testutil.AssertEqual(t, "absent", promtest.ToFloat64(m.references.WithLabelValues("absent")), 2.0)
	testutil.AssertEqual(t, "events", promtest.ToFloat64(m.eventsDispatched.WithLabelValues("movement")), 1.0)
	testutil.AssertEqual(t, "messages", promtest.ToFloat64(m.messagesSent), 3.0)
	testutil.AssertEqual(t, "entities", promtest.ToFloat64(m.entities), 12.0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordLoaded("room")
	m.LoadFailed()
	m.RecordSaved("room")
	m.ReferencesResolved(1, 1)
	m.EventDispatched("sound", 1)
	m.SetEntities(1)
}

func TestServer_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.RecordSaved("room")

	srv := httptest.NewServer(NewServer(0, reg).Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "status", resp.StatusCode, 200)
	testutil.AssertEqual(t, "has counter", strings.Contains(string(body), `realm_records_saved_total{type="room"} 1`), true)
}
