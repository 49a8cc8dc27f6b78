// Package config loads the client configuration from the environment.
package config

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/vocdoni/neynar-go/api"
	"github.com/vocdoni/neynar-go/api/hub"
	"github.com/vocdoni/neynar-go/api/neynar"
	"github.com/vocdoni/neynar-go/internal/tracing"
)

type Config struct {
	APIKey      string        `env:"NEYNAR_API_KEY,required,notEmpty"`
	V1BasePath  string        `env:"NEYNAR_V1_BASE_PATH"              envDefault:"https://api.neynar.com/v1"`
	V2BasePath  string        `env:"NEYNAR_V2_BASE_PATH"              envDefault:"https://api.neynar.com/v2"`
	HubEndpoint string        `env:"NEYNAR_HUB_ENDPOINT"              envDefault:"https://hub-api.neynar.com/v1"`
	HTTPTimeout time.Duration `env:"NEYNAR_HTTP_TIMEOUT"              envDefault:"30s"`
	LogLevel    string        `env:"LOG_LEVEL"                        envDefault:"info"`
	// TraceExporter is "stdout", "otlp" or empty to disable tracing.
	TraceExporter string `env:"NEYNAR_TRACE_EXPORTER"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	// FID and PrivateKey are only required by the hub client.
	FID        uint64 `env:"NEYNAR_FID"`
	PrivateKey string `env:"NEYNAR_PRIVATE_KEY"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return &cfg, nil
}

// ClientConfig returns the facade configuration.
func (c *Config) ClientConfig() neynar.Config {
	return neynar.Config{
		APIKey:     c.APIKey,
		V1BasePath: c.V1BasePath,
		V2BasePath: c.V2BasePath,
		HTTPClient: c.httpClient(),
	}
}

// TracingConfig returns the tracing configuration.
func (c *Config) TracingConfig() tracing.Config {
	return tracing.Config{
		ServiceName:  "neynar",
		Exporter:     c.TraceExporter,
		OTLPEndpoint: c.OTLPEndpoint,
	}
}

// HubConfig returns the hub client configuration, decoding the hex encoded
// private key.
func (c *Config) HubConfig() (hub.Config, error) {
	privKey, err := hex.DecodeString(strings.TrimPrefix(c.PrivateKey, "0x"))
	if err != nil {
		return hub.Config{}, fmt.Errorf("%w: %w", hub.ErrInvalidPrivateKey, err)
	}
	return hub.Config{
		Endpoint:   c.HubEndpoint,
		APIKey:     c.APIKey,
		FID:        c.FID,
		PrivateKey: privKey,
		HTTPClient: c.httpClient(),
	}, nil
}

func (c *Config) httpClient() api.HTTPClient {
	return &http.Client{Timeout: c.HTTPTimeout}
}
