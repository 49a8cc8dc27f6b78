package config

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/neynar-go/api"
	"github.com/vocdoni/neynar-go/api/hub"
)

func TestLoad(t *testing.T) {
	c := qt.New(t)

	t.Setenv("NEYNAR_API_KEY", "")
	_, err := Load()
	c.Assert(err, qt.ErrorMatches, "error loading config: .*NEYNAR_API_KEY.*")

	t.Setenv("NEYNAR_API_KEY", "secret")
	t.Setenv("NEYNAR_HTTP_TIMEOUT", "5s")
	t.Setenv("NEYNAR_FID", "42")
	cfg, err := Load()
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.APIKey, qt.Equals, "secret")
	c.Assert(cfg.V1BasePath, qt.Equals, api.DefaultV1BasePath)
	c.Assert(cfg.V2BasePath, qt.Equals, api.DefaultV2BasePath)
	c.Assert(cfg.HubEndpoint, qt.Equals, api.DefaultHubEndpoint)
	c.Assert(cfg.HTTPTimeout, qt.Equals, 5*time.Second)
	c.Assert(cfg.LogLevel, qt.Equals, "info")
	c.Assert(cfg.FID, qt.Equals, uint64(42))

	clientConfig := cfg.ClientConfig()
	c.Assert(clientConfig.APIKey, qt.Equals, "secret")
	c.Assert(clientConfig.V1BasePath, qt.Equals, api.DefaultV1BasePath)
	c.Assert(clientConfig.HTTPClient, qt.IsNotNil)
}

func TestHubConfig(t *testing.T) {
	c := qt.New(t)

	cfg := &Config{APIKey: "secret", FID: 42, PrivateKey: "0xzz"}
	_, err := cfg.HubConfig()
	c.Assert(err, qt.ErrorIs, hub.ErrInvalidPrivateKey)

	cfg.PrivateKey = "0x0101010101010101010101010101010101010101010101010101010101010101"
	hubConfig, err := cfg.HubConfig()
	c.Assert(err, qt.IsNil)
	c.Assert(hubConfig.PrivateKey, qt.HasLen, 32)
	c.Assert(hubConfig.FID, qt.Equals, uint64(42))

	_, err = hub.New(hubConfig)
	c.Assert(err, qt.IsNil)
}
