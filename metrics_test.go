package registro

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilCollectorIsSafe(t *testing.T) {
	var mc *MetricsCollector

	mc.RecordRequest("GET", "/v1/catalog/nodes", 200, time.Millisecond)
	mc.RecordRequestStart("GET", "/v1/catalog/nodes")
	mc.RecordRequestEnd("GET", "/v1/catalog/nodes")
	mc.RecordBlockingQueryStart("/v1/catalog/nodes")
	mc.RecordBlockingQueryEnd("/v1/catalog/nodes")
	mc.RecordWatchRestart("/v1/catalog/nodes")
	mc.RecordError(ErrorTypeTransport, "GET", "/v1/catalog/nodes")
}

func TestCollectorRecordsRequests(t *testing.T) {
	registry := prometheus.NewRegistry()
	mc := NewMetricsCollectorWithRegistry(registry)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(indexHeader, "1")
		if _, err := w.Write([]byte("[]")); err != nil {
			t.Fatalf(failedWriteMsg, err)
		}
	}))
	defer server.Close()

	c := testClient(server.URL, WithMetricsCollector(mc))
	if _, _, err := Get[[]Node](context.Background(), c, "/v1/catalog/nodes", nil, nil); err != nil {
		t.Fatalf(unexpectedErrorMsg, err)
	}

	count := testutil.ToFloat64(mc.requestsTotal.WithLabelValues("GET", "200", "/v1/catalog/nodes"))
	if count != 1 {
		t.Errorf("Expected 1 request recorded, got %v", count)
	}

	inFlight := testutil.ToFloat64(mc.requestsInFlight.WithLabelValues("GET", "/v1/catalog/nodes"))
	if inFlight != 0 {
		t.Errorf("Expected in-flight gauge back to 0, got %v", inFlight)
	}
}

func TestCollectorRecordsErrors(t *testing.T) {
	registry := prometheus.NewRegistry()
	mc := NewMetricsCollectorWithRegistry(registry)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := testClient(server.URL, WithMetricsCollector(mc))
	if _, _, err := Get[[]Node](context.Background(), c, "/v1/catalog/nodes", nil, nil); err == nil {
		t.Fatal("Expected API error")
	}

	count := testutil.ToFloat64(mc.errorsTotal.WithLabelValues(ErrorTypeAPI, "GET", "/v1/catalog/nodes"))
	if count != 1 {
		t.Errorf("Expected 1 API error recorded, got %v", count)
	}
}

func TestCollectorBlockingGauge(t *testing.T) {
	registry := prometheus.NewRegistry()
	mc := NewMetricsCollectorWithRegistry(registry)

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set(indexHeader, "2")
		if _, err := w.Write([]byte("[]")); err != nil {
			t.Fatalf(failedWriteMsg, err)
		}
	}))
	defer server.Close()

	c := testClient(server.URL, WithMetricsCollector(mc))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = Get[[]Node](context.Background(), c, "/v1/catalog/nodes", nil, &QueryOptions{WaitIndex: 1, WaitTime: time.Second})
	}()

	deadline := time.After(2 * time.Second)
	for testutil.ToFloat64(mc.blockingInFlight.WithLabelValues("/v1/catalog/nodes")) != 1 {
		select {
		case <-deadline:
			t.Fatal("Blocking gauge never incremented")
		case <-time.After(5 * time.Millisecond):
		}
	}

	close(release)
	<-done

	if got := testutil.ToFloat64(mc.blockingInFlight.WithLabelValues("/v1/catalog/nodes")); got != 0 {
		t.Errorf("Expected blocking gauge back to 0, got %v", got)
	}
}

func TestGetRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	mc := NewMetricsCollectorWithRegistry(registry)

	if mc.GetRegistry() != registry {
		t.Error("Expected GetRegistry to return the supplied registry")
	}
}
