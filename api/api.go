package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	// APIKeyHeader is the header that carries the api key on every request.
	APIKeyHeader = "api_key"
	// DefaultV1BasePath and DefaultV2BasePath are the Neynar REST endpoints.
	DefaultV1BasePath = "https://api.neynar.com/v1"
	DefaultV2BasePath = "https://api.neynar.com/v2"
	// DefaultHubEndpoint is the Neynar hosted Farcaster hub HTTP API.
	DefaultHubEndpoint = "https://hub-api.neynar.com/v1"
)

var tracer = otel.Tracer("neynar")

// HTTPClient is the subset of *http.Client used by the transport, it allows
// to plug a custom client for testing or interception.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Request describes a single call to the API: the method, the path relative
// to the base path, the query parameters and the optional JSON body. Binary
// payloads are sent through RawBody with their ContentType instead.
type Request struct {
	Method      string
	Path        string
	Query       *Query
	Body        any
	RawBody     []byte
	ContentType string
}

// URL composes the request URL over the base path provided.
func (r *Request) URL(basePath string) string {
	endpoint := strings.TrimSuffix(basePath, "/") + "/" + strings.TrimPrefix(r.Path, "/")
	if q := r.Query.Encode(); q != "" {
		endpoint += "?" + q
	}
	return endpoint
}

// Transport executes request descriptors against a base path, injecting the
// api key and decoding the JSON responses. It holds no mutable state and can
// be shared by every endpoint group of the same API version.
type Transport struct {
	basePath string
	apiKey   string
	client   HTTPClient
	logger   Logger
}

// Config is the construction configuration of a versioned client.
type Config struct {
	// APIKey is required and sent in the api_key header of every request.
	APIKey string
	// BasePath overrides the default base path of the API version.
	BasePath string
	// Logger receives the remote API errors, DefaultLogger if nil.
	Logger Logger
	// HTTPClient performs the requests, http.DefaultClient if nil.
	HTTPClient HTTPClient
}

// NewTransport returns a transport for the configuration provided, using
// defaultBasePath if the configuration does not override it. It fails if the
// api key is empty.
func NewTransport(cfg Config, defaultBasePath string) (*Transport, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyNotSet
	}
	if cfg.BasePath == "" {
		cfg.BasePath = defaultBasePath
	}
	if cfg.BasePath == "" {
		return nil, ErrBasePathNotSet
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	return &Transport{
		basePath: cfg.BasePath,
		apiKey:   cfg.APIKey,
		client:   cfg.HTTPClient,
		logger:   cfg.Logger,
	}, nil
}

// BasePath returns the base path of the transport.
func (t *Transport) BasePath() string {
	return t.basePath
}

// Logger returns the logger used by the transport.
func (t *Transport) Logger() Logger {
	return t.logger
}

// Do performs the request and decodes the response body into out, if out is
// not nil. Any non-2xx response is logged at warning level and returned as an
// *APIError.
func (t *Transport) Do(ctx context.Context, r *Request, out any) error {
	ctx, span := tracer.Start(ctx, "Neynar.Transport.Do", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	endpoint := r.URL(t.basePath)
	span.SetAttributes(
		attribute.String("http.method", r.Method),
		attribute.String("neynar.path", r.Path),
	)
	// encode the body, if any
	var body io.Reader
	contentType := "application/json"
	switch {
	case r.RawBody != nil:
		body = bytes.NewReader(r.RawBody)
		if r.ContentType != "" {
			contentType = r.ContentType
		}
	case r.Body != nil:
		encoded, err := json.Marshal(r.Body)
		if err != nil {
			span.RecordError(errors.Wrap(err, "encoding request body"))
			span.SetStatus(codes.Error, "encoding request body")
			return fmt.Errorf("error encoding request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, endpoint, body)
	if err != nil {
		span.RecordError(errors.Wrap(err, "creating request"))
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set(APIKeyHeader, t.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	t.logger.Debugw("neynar request", "method", r.Method, "path", r.Path)
	res, err := t.client.Do(req)
	if err != nil {
		span.RecordError(errors.Wrap(err, "performing request"))
		span.SetStatus(codes.Error, "performing request")
		return fmt.Errorf("error performing request: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			t.logger.Debugw("error closing response body", "error", err)
		}
	}()
	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode))
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		span.RecordError(errors.Wrap(err, "reading response body"))
		return fmt.Errorf("error reading response body: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := newAPIError(res.StatusCode, resBody)
		t.logger.Warnw("API errors", "status", res.StatusCode, "path", r.Path, "body", string(resBody))
		span.RecordError(apiErr)
		span.SetStatus(codes.Error, res.Status)
		return apiErr
	}
	if out == nil || len(resBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(resBody, out); err != nil {
		span.RecordError(errors.Wrap(err, "decoding response body"))
		return fmt.Errorf("error decoding response body: %w", err)
	}
	return nil
}

// Ptr returns a pointer to the value provided, it helps to fill the optional
// fields of the request params.
func Ptr[T any](v T) *T {
	return &v
}
