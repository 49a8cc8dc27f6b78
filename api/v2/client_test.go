package v2_test

import (
	"context"
	"net/http"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/neynar-go/api"
	v2 "github.com/vocdoni/neynar-go/api/v2"
	"github.com/vocdoni/neynar-go/internal/apitest"
)

const (
	notFoundBody = `{"code":"NotFound","message":"not found"}`
	testAddress  = "0x5a927ac639636e534b678e81768ca19e2c6280b7"
	testContract = "0x60e4d786628fea6478f785a6d7e704777c86a7c6"
)

func newClient(c *qt.C, srv *apitest.Server) *v2.Client {
	client, err := v2.New(api.Config{APIKey: "test-key", BasePath: srv.URL, Logger: api.SilentLogger})
	c.Assert(err, qt.IsNil)
	return client
}

func TestNew(t *testing.T) {
	c := qt.New(t)

	_, err := v2.New(api.Config{BasePath: "http://localhost"})
	c.Assert(err, qt.ErrorIs, api.ErrAPIKeyNotSet)

	client, err := v2.New(api.Config{APIKey: "key"})
	c.Assert(err, qt.IsNil)
	c.Assert(client.APIs().Signer, qt.IsNotNil)
	c.Assert(client.APIs().Frame, qt.IsNotNil)
}

func TestPublishCast(t *testing.T) {
	c := qt.New(t)

	srv := apitest.NewServer(c, func(apitest.Request) apitest.Response {
		return apitest.OK(`{"success":true,"cast":{"hash":"0x71d5225f77e0164388b1d4c120825f3a2c1f131c","author":{"fid":2},"text":"hello"}}`)
	})
	client := newClient(c, srv)

	cast, err := client.PublishCast(context.Background(), "u1", "hello", v2.PublishCastOptions{})
	c.Assert(err, qt.IsNil)
	c.Assert(cast.Hash, qt.Equals, "0x71d5225f77e0164388b1d4c120825f3a2c1f131c")
	c.Assert(cast.Author.FID, qt.Equals, uint64(2))

	req := srv.Last(c)
	c.Assert(req.Method, qt.Equals, http.MethodPost)
	c.Assert(req.Path, qt.Equals, "/farcaster/cast")
	c.Assert(req.Header.Get("api_key"), qt.Equals, "test-key")
	c.Assert(req.Header.Get("Content-Type"), qt.Equals, "application/json")
	c.Assert(string(req.Body), qt.Equals, `{"signer_uuid":"u1","text":"hello"}`)

	// a reply with embeds
	_, err = client.PublishCast(context.Background(), "u1", "hello", v2.PublishCastOptions{
		Embeds:  []v2.EmbeddedCast{{URL: "https://farcaster.vote"}},
		ReplyTo: api.Ptr("0xabc"),
	})
	c.Assert(err, qt.IsNil)
	c.Assert(string(srv.Last(c).Body), qt.Equals,
		`{"signer_uuid":"u1","text":"hello","embeds":[{"url":"https://farcaster.vote"}],"parent":"0xabc"}`)

	_, err = client.PublishCast(context.Background(), "", "hello", v2.PublishCastOptions{})
	c.Assert(err, qt.ErrorIs, api.ErrMissingParam)
	c.Assert(srv.Requests(), qt.HasLen, 2)
}

func TestLookupsNotFound(t *testing.T) {
	c := qt.New(t)

	srv := apitest.NewServer(c, func(apitest.Request) apitest.Response {
		return apitest.JSON(http.StatusNotFound, notFoundBody)
	})
	client := newClient(c, srv)
	ctx := context.Background()

	signer, err := client.LookupSigner(ctx, "19d0c5fd-9b33-4a48-a0e2-bc7b0555baec")
	c.Assert(err, qt.IsNil)
	c.Assert(signer, qt.IsNil)
	c.Assert(srv.Last(c).RawQuery, qt.Equals, "signer_uuid=19d0c5fd-9b33-4a48-a0e2-bc7b0555baec")

	cast, err := client.LookupCastByHashOrWarpcastURL(ctx, "0xdeadbeef", v2.CastParamHash)
	c.Assert(err, qt.IsNil)
	c.Assert(cast, qt.IsNil)
	c.Assert(srv.Last(c).RawQuery, qt.Equals, "identifier=0xdeadbeef&type=hash")

	// bulk lookups keep the 404 as an error
	_, err = client.FetchBulkCastsByHash(ctx, "0xdeadbeef")
	c.Assert(api.IsNotFound(err), qt.IsTrue)
}

func TestLookupCastByWarpcastURL(t *testing.T) {
	c := qt.New(t)

	srv := apitest.Fixtures(c, map[string]apitest.Response{
		"/farcaster/cast": apitest.OK(`{"cast":{"object":"cast","hash":"0xabc","author":{"fid":3,"username":"dwr"},"text":"gm"}}`),
	})
	client := newClient(c, srv)

	cast, err := client.LookupCastByHashOrWarpcastURL(context.Background(),
		"https://warpcast.com/dwr/0xabc", v2.CastParamURL)
	c.Assert(err, qt.IsNil)
	c.Assert(cast.Hash, qt.Equals, "0xabc")
	c.Assert(cast.Author.Username, qt.Equals, "dwr")
	c.Assert(srv.Last(c).RawQuery, qt.Equals, "identifier=https%3A%2F%2Fwarpcast.com%2Fdwr%2F0xabc&type=url")
}

func TestServerErrorPropagates(t *testing.T) {
	c := qt.New(t)

	srv := apitest.NewServer(c, func(apitest.Request) apitest.Response {
		return apitest.JSON(http.StatusInternalServerError, `{"message":"boom"}`)
	})
	client := newClient(c, srv)

	signer, err := client.LookupSigner(context.Background(), "u1")
	c.Assert(signer, qt.IsNil)
	apiErr, ok := api.IsAPIError(err)
	c.Assert(ok, qt.IsTrue)
	c.Assert(apiErr.StatusCode, qt.Equals, http.StatusInternalServerError)
	c.Assert(string(apiErr.Body), qt.Equals, `{"message":"boom"}`)
}

func TestFetchFeedPage(t *testing.T) {
	c := qt.New(t)

	srv := apitest.NewServer(c, func(apitest.Request) apitest.Response {
		return apitest.OK(`{"casts":[{"hash":"0x1"},{"hash":"0x2"}],"next":{"cursor":"next"}}`)
	})
	client := newClient(c, srv)
	ctx := context.Background()

	feed, err := client.FetchFeedPage(ctx, v2.FeedFollowing, v2.FeedOptions{
		FID:         api.Ptr[uint64](3),
		WithRecasts: api.Ptr(false),
	})
	c.Assert(err, qt.IsNil)
	c.Assert(feed.Casts, qt.HasLen, 2)
	c.Assert(*feed.Next.Cursor, qt.Equals, "next")
	req := srv.Last(c)
	c.Assert(req.Path, qt.Equals, "/farcaster/feed")
	c.Assert(req.RawQuery, qt.Equals, "feed_type=following&fid=3&with_recasts=false")

	_, err = client.FetchFeedPage(ctx, v2.FeedFilter, v2.FeedOptions{
		FilterType: api.Ptr(v2.FilterParentURL),
		ParentURL:  api.Ptr("https://ethereum.org"),
		Limit:      api.Ptr[int32](25),
		Cursor:     feed.Next.Cursor,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(srv.Last(c).RawQuery, qt.Equals,
		"feed_type=filter&filter_type=parent_url&parent_url=https%3A%2F%2Fethereum.org&limit=25&cursor=next")

	_, err = client.FetchFeedPage(ctx, "", v2.FeedOptions{})
	c.Assert(err, qt.ErrorIs, api.ErrMissingParam)
	c.Assert(srv.Requests(), qt.HasLen, 2)
}

func TestCastRefRequests(t *testing.T) {
	c := qt.New(t)

	srv := apitest.NewServer(c, func(apitest.Request) apitest.Response {
		return apitest.OK(`{"success":true}`)
	})
	client := newClient(c, srv)
	ctx := context.Background()
	entity := &v2.Cast{Hash: "0xabc"}

	res, err := client.ReactToCast(ctx, "u1", v2.ReactionLike, api.CastByHash("0xabc"))
	c.Assert(err, qt.IsNil)
	c.Assert(res.Success, qt.IsTrue)
	_, err = client.ReactToCast(ctx, "u1", v2.ReactionLike, api.CastByEntity(entity))
	c.Assert(err, qt.IsNil)
	_, err = client.RemoveReactionFromCast(ctx, "u1", v2.ReactionRecast, api.CastByHash("0xabc"))
	c.Assert(err, qt.IsNil)
	_, err = client.RemoveReactionFromCast(ctx, "u1", v2.ReactionRecast, api.CastByEntity(entity))
	c.Assert(err, qt.IsNil)
	_, err = client.DeleteCast(ctx, "u1", api.CastByHash("0xabc"))
	c.Assert(err, qt.IsNil)
	_, err = client.DeleteCast(ctx, "u1", api.CastByEntity(entity))
	c.Assert(err, qt.IsNil)

	reqs := srv.Requests()
	c.Assert(reqs, qt.HasLen, 6)
	for i := 0; i < len(reqs); i += 2 {
		c.Assert(reqs[i].Method, qt.Equals, reqs[i+1].Method)
		c.Assert(reqs[i].Path, qt.Equals, reqs[i+1].Path)
		c.Assert(string(reqs[i].Body), qt.Equals, string(reqs[i+1].Body))
	}
	c.Assert(reqs[0].Method, qt.Equals, http.MethodPost)
	c.Assert(string(reqs[0].Body), qt.Equals, `{"signer_uuid":"u1","reaction_type":"like","target":"0xabc"}`)
	c.Assert(reqs[2].Method, qt.Equals, http.MethodDelete)
	c.Assert(reqs[4].Path, qt.Equals, "/farcaster/cast")
	c.Assert(string(reqs[4].Body), qt.Equals, `{"signer_uuid":"u1","target_hash":"0xabc"}`)
}

func TestUserOperations(t *testing.T) {
	c := qt.New(t)

	srv := apitest.NewServer(c, func(r apitest.Request) apitest.Response {
		switch r.Path {
		case "/farcaster/user/follow":
			return apitest.OK(`{"success":true,"details":[{"success":true,"target_fid":3,"hash":"0x1"}]}`)
		case "/farcaster/user/search":
			return apitest.OK(`{"result":{"users":[{"fid":3,"username":"dwr"}]}}`)
		case "/farcaster/user/bulk":
			return apitest.OK(`{"users":[{"fid":2},{"fid":3}]}`)
		default:
			return apitest.OK(`{"success":true}`)
		}
	})
	client := newClient(c, srv)
	ctx := context.Background()

	follow, err := client.FollowUser(ctx, "u1", []uint64{3})
	c.Assert(err, qt.IsNil)
	c.Assert(follow.Details, qt.HasLen, 1)
	c.Assert(follow.Details[0].TargetFID, qt.Equals, uint64(3))
	c.Assert(string(srv.Last(c).Body), qt.Equals, `{"signer_uuid":"u1","target_fids":[3]}`)

	_, err = client.UnfollowUser(ctx, "u1", nil)
	c.Assert(err, qt.ErrorIs, api.ErrMissingParam)

	_, err = client.UpdateUserProfile(ctx, "u1", v2.UpdateUserProfileOptions{Bio: api.Ptr("")})
	c.Assert(err, qt.IsNil)
	req := srv.Last(c)
	c.Assert(req.Method, qt.Equals, http.MethodPatch)
	c.Assert(string(req.Body), qt.Equals, `{"signer_uuid":"u1","bio":""}`)

	search, err := client.SearchUser(ctx, "dw", 2)
	c.Assert(err, qt.IsNil)
	c.Assert(search.Result.Users[0].Username, qt.Equals, "dwr")
	c.Assert(srv.Last(c).RawQuery, qt.Equals, "q=dw&viewer_fid=2")

	bulk, err := client.FetchUsersInBulk(ctx, "2,3", nil)
	c.Assert(err, qt.IsNil)
	c.Assert(bulk.Users, qt.HasLen, 2)
	c.Assert(srv.Last(c).RawQuery, qt.Equals, "fids=2%2C3")
}

func TestVerificationAddresses(t *testing.T) {
	c := qt.New(t)

	srv := apitest.NewServer(c, func(apitest.Request) apitest.Response {
		return apitest.OK(`{"success":true}`)
	})
	client := newClient(c, srv)
	ctx := context.Background()

	_, err := client.AddVerification(ctx, "u1", "not-an-address", "0xblock", "0xsig")
	c.Assert(err, qt.ErrorIs, api.ErrInvalidParam)
	_, err = client.RemoveVerification(ctx, "u1", "0x1234")
	c.Assert(err, qt.ErrorIs, api.ErrInvalidParam)
	_, err = client.RemoveVerification(ctx, "u1", "")
	c.Assert(err, qt.ErrorIs, api.ErrMissingParam)
	_, err = client.FetchRelevantMints(ctx, testAddress, "0xnope", nil)
	c.Assert(err, qt.ErrorIs, api.ErrInvalidParam)
	c.Assert(srv.Requests(), qt.HasLen, 0)

	res, err := client.RemoveVerification(ctx, "u1", testAddress)
	c.Assert(err, qt.IsNil)
	c.Assert(res.Success, qt.IsTrue)
	req := srv.Last(c)
	c.Assert(req.Method, qt.Equals, http.MethodDelete)
	c.Assert(req.Path, qt.Equals, "/farcaster/user/verification")
	c.Assert(string(req.Body), qt.Equals, `{"signer_uuid":"u1","address":"`+testAddress+`"}`)
}

func TestFetchRelevantMints(t *testing.T) {
	c := qt.New(t)

	srv := apitest.Fixtures(c, map[string]apitest.Response{
		"/nft/relevant_mints": apitest.OK(`{"relevant_mints":[{"contract_address":"` + testContract + `","num_tokens":2}]}`),
	})
	client := newClient(c, srv)

	res, err := client.FetchRelevantMints(context.Background(), testAddress, testContract, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(res.RelevantMints, qt.HasLen, 1)
	c.Assert(res.RelevantMints[0].NumTokens, qt.Equals, uint64(2))
	c.Assert(srv.Last(c).RawQuery, qt.Equals, "address="+testAddress+"&contract_address="+testContract)
}

func TestSigners(t *testing.T) {
	c := qt.New(t)

	srv := apitest.NewServer(c, func(apitest.Request) apitest.Response {
		return apitest.OK(`{"signer_uuid":"u1","public_key":"0xkey","status":"pending_approval","signer_approval_url":"https://client.warpcast.com/deeplinks/signed-key-request?token=x"}`)
	})
	client := newClient(c, srv)
	ctx := context.Background()

	signer, err := client.CreateSigner(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(signer.Status, qt.Equals, v2.SignerPendingApproval)
	req := srv.Last(c)
	c.Assert(req.Method, qt.Equals, http.MethodPost)
	c.Assert(req.Path, qt.Equals, "/farcaster/signer")
	c.Assert(req.Body, qt.HasLen, 0)

	_, err = client.RegisterSigner(ctx, "u1", 3, 1700000000, "0xsig")
	c.Assert(err, qt.IsNil)
	req = srv.Last(c)
	c.Assert(req.Path, qt.Equals, "/farcaster/signer/signed_key")
	c.Assert(string(req.Body), qt.Equals, `{"signer_uuid":"u1","app_fid":3,"deadline":1700000000,"signature":"0xsig"}`)

	_, err = client.RegisterSigner(ctx, "u1", 3, 0, "0xsig")
	c.Assert(err, qt.ErrorIs, api.ErrMissingParam)
	c.Assert(srv.Requests(), qt.HasLen, 2)
}

func TestNotificationsAndFrames(t *testing.T) {
	c := qt.New(t)

	srv := apitest.NewServer(c, func(r apitest.Request) apitest.Response {
		if r.Path == "/farcaster/frame/validate" {
			return apitest.OK(`{"valid":true,"action":{"object":"validated_frame_action","url":"https://frame.xyz","tapped_button":{"title":"Yes","index":1}}}`)
		}
		return apitest.OK(`{"notifications":[{"object":"notification","type":"follows"}],"next":{"cursor":null}}`)
	})
	client := newClient(c, srv)
	ctx := context.Background()

	notifications, err := client.FetchAllNotifications(ctx, 3, v2.NotificationsOptions{Limit: api.Ptr[int32](10)})
	c.Assert(err, qt.IsNil)
	c.Assert(notifications.Notifications, qt.HasLen, 1)
	c.Assert(notifications.Next.Cursor, qt.IsNil)
	c.Assert(srv.Last(c).RawQuery, qt.Equals, "fid=3&limit=10")

	frame, err := client.ValidateFrameAction(ctx, "0a49", nil, api.Ptr(true))
	c.Assert(err, qt.IsNil)
	c.Assert(frame.Valid, qt.IsTrue)
	c.Assert(frame.Action.TappedButton.Index, qt.Equals, 1)
	c.Assert(string(srv.Last(c).Body), qt.Equals, `{"message_bytes_in_hex":"0a49","follow_context":true}`)
}
