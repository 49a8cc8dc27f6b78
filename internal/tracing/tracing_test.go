package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
	"go.opentelemetry.io/otel"
)

func TestInit(t *testing.T) {
	c := qt.New(t)

	shutdown, err := Init(context.Background(), Config{ServiceName: "neynar"})
	c.Assert(err, qt.IsNil)
	c.Assert(shutdown(context.Background()), qt.IsNil)

	_, err = Init(context.Background(), Config{ServiceName: "neynar", Exporter: "jaeger"})
	c.Assert(err, qt.ErrorMatches, "unknown tracing exporter 'jaeger'")

	shutdown, err = Init(context.Background(), Config{ServiceName: "neynar", Exporter: ExporterStdout})
	c.Assert(err, qt.IsNil)
	c.Assert(shutdown(context.Background()), qt.IsNil)
}

func TestInitOTLP(t *testing.T) {
	c := qt.New(t)

	var (
		mtx   sync.Mutex
		paths []string
	)
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mtx.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mtx.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	c.Cleanup(collector.Close)

	// the endpoint is a base url, as in OTEL_EXPORTER_OTLP_ENDPOINT
	shutdown, err := Init(context.Background(), Config{
		ServiceName:  "neynar",
		Exporter:     ExporterOTLP,
		OTLPEndpoint: collector.URL + "/",
	})
	c.Assert(err, qt.IsNil)

	_, span := otel.Tracer("neynar-test").Start(context.Background(), "export")
	span.End()
	c.Assert(shutdown(context.Background()), qt.IsNil)

	mtx.Lock()
	defer mtx.Unlock()
	c.Assert(paths, qt.Not(qt.HasLen), 0)
	c.Assert(paths[0], qt.Equals, "POST /v1/traces")
}
