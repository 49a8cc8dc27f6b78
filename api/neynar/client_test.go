package neynar

import (
	"context"
	"net/http"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/neynar-go/api"
	v1 "github.com/vocdoni/neynar-go/api/v1"
	v2 "github.com/vocdoni/neynar-go/api/v2"
	"github.com/vocdoni/neynar-go/internal/apitest"
)

func TestNew(t *testing.T) {
	c := qt.New(t)

	_, err := NewClient("")
	c.Assert(err, qt.ErrorIs, api.ErrAPIKeyNotSet)
	_, err = New(Config{V1BasePath: "http://localhost"})
	c.Assert(err, qt.ErrorIs, api.ErrAPIKeyNotSet)

	client, err := NewClient("key")
	c.Assert(err, qt.IsNil)
	c.Assert(client.V1(), qt.IsNotNil)
	c.Assert(client.V2(), qt.IsNotNil)
}

func TestDelegation(t *testing.T) {
	c := qt.New(t)

	srv := apitest.NewServer(c, func(r apitest.Request) apitest.Response {
		switch r.Path {
		case "/v1/farcaster/followers":
			return apitest.OK(`{"result":{"users":[{"fid":2}],"next":{"cursor":"abc"}}}`)
		case "/v1/farcaster/user":
			return apitest.JSON(http.StatusNotFound, `{"message":"not found"}`)
		case "/v2/farcaster/cast":
			return apitest.OK(`{"success":true,"cast":{"hash":"0x1","author":{"fid":2},"text":"hello"}}`)
		case "/v2/farcaster/signer":
			return apitest.JSON(http.StatusNotFound, `{"message":"not found"}`)
		default:
			return apitest.JSON(http.StatusInternalServerError, `{"message":"unexpected path"}`)
		}
	})
	client, err := New(Config{
		APIKey:     "test-key",
		V1BasePath: srv.URL + "/v1",
		V2BasePath: srv.URL + "/v2",
		Logger:     api.SilentLogger,
	})
	c.Assert(err, qt.IsNil)
	ctx := context.Background()

	followers, err := client.FetchUserFollowers(ctx, 3, v1.PageOptions{Limit: api.Ptr[int32](50)})
	c.Assert(err, qt.IsNil)
	c.Assert(*followers.Result.Next.Cursor, qt.Equals, "abc")
	c.Assert(srv.Last(c).RawQuery, qt.Equals, "fid=3&limit=50")

	user, err := client.LookupUserByFID(ctx, 999999999, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(user, qt.IsNil)

	cast, err := client.PublishCast(ctx, "u1", "hello", v2.PublishCastOptions{})
	c.Assert(err, qt.IsNil)
	c.Assert(cast.Text, qt.Equals, "hello")
	c.Assert(string(srv.Last(c).Body), qt.Equals, `{"signer_uuid":"u1","text":"hello"}`)

	signer, err := client.LookupSigner(ctx, "u1")
	c.Assert(err, qt.IsNil)
	c.Assert(signer, qt.IsNil)

	_, err = client.FetchRecentCasts(ctx, v1.PageOptions{})
	apiErr, ok := api.IsAPIError(err)
	c.Assert(ok, qt.IsTrue)
	c.Assert(apiErr.StatusCode, qt.Equals, http.StatusInternalServerError)

	for _, req := range srv.Requests() {
		c.Assert(req.Header.Get(api.APIKeyHeader), qt.Equals, "test-key")
	}
}
