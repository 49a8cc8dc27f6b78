package v1

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

// APIs are the v1 endpoint groups, all sharing the same transport.
type APIs struct {
	User          *UserAPI
	Cast          *CastAPI
	Follows       *FollowsAPI
	Verification  *VerificationAPI
	Notifications *NotificationsAPI
	Reactions     *ReactionsAPI
}

// Client is the Neynar v1 API client. It is safe for concurrent use.
type Client struct {
	apis *APIs
}

// CastsOptions are the optional parameters of FetchAllCastsCreatedByUser.
type CastsOptions struct {
	// ParentURL restricts the casts to the ones under the parent url
	// provided, e.g. a channel.
	ParentURL *string
	PageOptions
}

// New returns a v1 client for the configuration provided. It fails if the api
// key is not set. The base path defaults to api.DefaultV1BasePath.
func New(cfg api.Config) (*Client, error) {
	transport, err := api.NewTransport(cfg, api.DefaultV1BasePath)
	if err != nil {
		return nil, err
	}
	return &Client{
		apis: &APIs{
			User:          &UserAPI{transport},
			Cast:          &CastAPI{transport},
			Follows:       &FollowsAPI{transport},
			Verification:  &VerificationAPI{transport},
			Notifications: &NotificationsAPI{transport},
			Reactions:     &ReactionsAPI{transport},
		},
	}, nil
}

// APIs returns the endpoint groups of the client.
func (c *Client) APIs() *APIs {
	return c.apis
}

// FetchRecentUsers returns the users in reverse chronological order based on
// sign up.
func (c *Client) FetchRecentUsers(ctx context.Context, opts PageOptions) (*RecentUsersResponse, error) {
	return c.apis.User.RecentUsers(ctx, RecentUsersParams{opts})
}

// FetchAllCastsLikedByUser returns the casts liked by the user.
func (c *Client) FetchAllCastsLikedByUser(ctx context.Context, fid uint64, opts PageOptions) (*UserCastLikeResponse, error) {
	return c.apis.User.UserCastLikes(ctx, UserCastLikesParams{FID: fid, PageOptions: opts})
}

// LookupUserByFID returns the user with the fid provided, or nil if it is not
// found.
func (c *Client) LookupUserByFID(ctx context.Context, fid uint64, viewerFID *uint64) (*User, error) {
	res, err := api.NilOnNotFound(c.apis.User.User(ctx, UserParams{FID: fid, ViewerFID: viewerFID}))
	if res == nil || err != nil {
		return nil, err
	}
	return res.Result.User, nil
}

// LookupUserByUsername returns the user with the username provided, or nil if
// it is not found. The API omits the user instead of responding with a 404
// for unknown usernames, both cases are reported as nil.
func (c *Client) LookupUserByUsername(ctx context.Context, username string, viewerFID *uint64) (*User, error) {
	res, err := api.NilOnNotFound(c.apis.User.UserByUsername(ctx, UserByUsernameParams{
		Username:  username,
		ViewerFID: viewerFID,
	}))
	if res == nil || err != nil {
		return nil, err
	}
	return res.Result.User, nil
}

// LookupCustodyAddressForUser returns the custody address of the user.
func (c *Client) LookupCustodyAddressForUser(ctx context.Context, fid uint64) (string, error) {
	res, err := c.apis.User.CustodyAddress(ctx, CustodyAddressParams{FID: fid})
	if err != nil {
		return "", err
	}
	return res.Result.CustodyAddress, nil
}

// LookupCastByHash returns the cast with the hash provided, or nil if it is
// not found.
func (c *Client) LookupCastByHash(ctx context.Context, hash string, viewerFID *uint64) (*Cast, error) {
	res, err := api.NilOnNotFound(c.apis.Cast.Cast(ctx, CastParams{Hash: hash, ViewerFID: viewerFID}))
	if res == nil || err != nil {
		return nil, err
	}
	return res.Result.Cast, nil
}

// FetchAllCastsInThread returns every cast of the thread, including the
// parent provided and replies at any depth.
func (c *Client) FetchAllCastsInThread(ctx context.Context, threadParent api.CastRef, viewerFID *uint64) ([]Cast, error) {
	res, err := c.apis.Cast.AllCastsInThread(ctx, AllCastsInThreadParams{
		ThreadHash: threadParent.Hash(),
		ViewerFID:  viewerFID,
	})
	if err != nil {
		return nil, err
	}
	return res.Result.Casts, nil
}

// FetchAllCastsCreatedByUser returns the casts, replies and recasts included,
// created by the user.
func (c *Client) FetchAllCastsCreatedByUser(ctx context.Context, fid uint64, opts CastsOptions) (*CastsResponse, error) {
	return c.apis.Cast.Casts(ctx, CastsParams{FID: fid, ParentURL: opts.ParentURL, PageOptions: opts.PageOptions})
}

// FetchRecentCasts returns the most recent casts of the network.
func (c *Client) FetchRecentCasts(ctx context.Context, opts PageOptions) (*RecentCastsResponse, error) {
	return c.apis.Cast.RecentCasts(ctx, RecentCastsParams{opts})
}

// FetchUserVerifications returns the verified addresses of the user.
func (c *Client) FetchUserVerifications(ctx context.Context, fid uint64) (*VerificationResponseResult, error) {
	res, err := c.apis.Verification.Verifications(ctx, VerificationsParams{FID: fid})
	if err != nil {
		return nil, err
	}
	return res.Result, nil
}

// LookupUserByVerification returns the user that most recently verified the
// address provided, or nil if no user has verified it.
func (c *Client) LookupUserByVerification(ctx context.Context, address string) (*User, error) {
	res, err := api.NilOnNotFound(c.apis.Verification.UserByVerification(ctx, UserByVerificationParams{
		Address: address,
	}))
	if res == nil || err != nil {
		return nil, err
	}
	return res.Result.User, nil
}

// FetchMentionAndReplyNotifications returns the mentions of the user and the
// replies to its casts in reverse chronological order.
func (c *Client) FetchMentionAndReplyNotifications(ctx context.Context, fid uint64, opts PageOptions) (*MentionsAndRepliesResponse, error) {
	return c.apis.Notifications.MentionsAndReplies(ctx, NotificationsParams{FID: fid, PageOptions: opts})
}

// FetchUserLikesAndRecasts returns the likes and recasts of the casts of the
// user in reverse chronological order.
func (c *Client) FetchUserLikesAndRecasts(ctx context.Context, fid uint64, opts PageOptions) (*ReactionsAndRecastsResponse, error) {
	return c.apis.Notifications.ReactionsAndRecasts(ctx, NotificationsParams{FID: fid, PageOptions: opts})
}

// FetchCastLikes returns the likes of the cast.
func (c *Client) FetchCastLikes(ctx context.Context, cast api.CastRef, opts PageOptions) (*CastLikesResponse, error) {
	return c.apis.Reactions.CastLikes(ctx, CastReactionsParams{CastHash: cast.Hash(), PageOptions: opts})
}

// FetchCastReactions returns every reaction to the cast.
func (c *Client) FetchCastReactions(ctx context.Context, cast api.CastRef, opts PageOptions) (*CastReactionsResponse, error) {
	return c.apis.Reactions.CastReactions(ctx, CastReactionsParams{CastHash: cast.Hash(), PageOptions: opts})
}

// FetchRecasters returns the users that recasted the cast.
func (c *Client) FetchRecasters(ctx context.Context, cast api.CastRef, opts PageOptions) (*CastRecasterResponse, error) {
	return c.apis.Reactions.CastRecasters(ctx, CastReactionsParams{CastHash: cast.Hash(), PageOptions: opts})
}

// FetchUserFollowers returns the users that follow the user.
func (c *Client) FetchUserFollowers(ctx context.Context, fid uint64, opts PageOptions) (*FollowResponse, error) {
	return c.apis.Follows.Followers(ctx, FollowsParams{FID: fid, PageOptions: opts})
}

// FetchUserFollowing returns the users followed by the user.
func (c *Client) FetchUserFollowing(ctx context.Context, fid uint64, opts PageOptions) (*FollowResponse, error) {
	return c.apis.Follows.Following(ctx, FollowsParams{FID: fid, PageOptions: opts})
}
