// Package neynar provides a single client over both versions of the Neynar
// API. Every method delegates to the v1 or v2 client and returns its result
// unchanged.
//
// Lookups of a single resource (user by fid, username or verification
// address, cast by hash and signer by uuid) return nil without error when the
// resource does not exist. Any other failure is returned as an error, remote
// errors as *api.APIError.
package neynar

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
	v1 "github.com/vocdoni/neynar-go/api/v1"
	v2 "github.com/vocdoni/neynar-go/api/v2"
)

// Config is the configuration of the client. Only APIKey is required.
type Config struct {
	APIKey     string
	V1BasePath string
	V2BasePath string
	Logger     api.Logger
	HTTPClient api.HTTPClient
}

// Client exposes every operation of the Neynar v1 and v2 APIs.
type Client struct {
	v1 *v1.Client
	v2 *v2.Client
}

// NewClient returns a client with the default configuration for the api key
// provided.
func NewClient(apiKey string) (*Client, error) {
	return New(Config{APIKey: apiKey})
}

// New returns a client for the configuration provided. It fails if the api
// key is not set, before any request is issued.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, api.ErrAPIKeyNotSet
	}
	if cfg.Logger == nil {
		cfg.Logger = api.DefaultLogger
	}
	v1Client, err := v1.New(api.Config{
		APIKey:     cfg.APIKey,
		BasePath:   cfg.V1BasePath,
		Logger:     cfg.Logger,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, err
	}
	v2Client, err := v2.New(api.Config{
		APIKey:     cfg.APIKey,
		BasePath:   cfg.V2BasePath,
		Logger:     cfg.Logger,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debugw("neynar client initialized")
	return &Client{v1: v1Client, v2: v2Client}, nil
}

// V1 returns the underlying v1 client.
func (c *Client) V1() *v1.Client { return c.v1 }

// V2 returns the underlying v2 client.
func (c *Client) V2() *v2.Client { return c.v2 }

// ============ v1 ============

// ------------ User ------------

// FetchRecentUsers returns the users in reverse chronological order based on
// sign up.
func (c *Client) FetchRecentUsers(ctx context.Context, opts v1.PageOptions) (*v1.RecentUsersResponse, error) {
	return c.v1.FetchRecentUsers(ctx, opts)
}

// FetchAllCastsLikedByUser returns the casts liked by the user.
func (c *Client) FetchAllCastsLikedByUser(ctx context.Context, fid uint64, opts v1.PageOptions) (*v1.UserCastLikeResponse, error) {
	return c.v1.FetchAllCastsLikedByUser(ctx, fid, opts)
}

// LookupUserByFID returns the user, or nil if it is not found.
func (c *Client) LookupUserByFID(ctx context.Context, fid uint64, viewerFID *uint64) (*v1.User, error) {
	return c.v1.LookupUserByFID(ctx, fid, viewerFID)
}

// LookupUserByUsername returns the user, or nil if it is not found.
func (c *Client) LookupUserByUsername(ctx context.Context, username string, viewerFID *uint64) (*v1.User, error) {
	return c.v1.LookupUserByUsername(ctx, username, viewerFID)
}

// LookupCustodyAddressForUser returns the custody address of the user.
func (c *Client) LookupCustodyAddressForUser(ctx context.Context, fid uint64) (string, error) {
	return c.v1.LookupCustodyAddressForUser(ctx, fid)
}

// ------------ Cast ------------

// LookupCastByHash returns the cast, or nil if it is not found.
func (c *Client) LookupCastByHash(ctx context.Context, hash string, viewerFID *uint64) (*v1.Cast, error) {
	return c.v1.LookupCastByHash(ctx, hash, viewerFID)
}

// FetchAllCastsInThread returns the parent cast and all the replies of the
// thread.
func (c *Client) FetchAllCastsInThread(ctx context.Context, threadParent api.CastRef, viewerFID *uint64) ([]v1.Cast, error) {
	return c.v1.FetchAllCastsInThread(ctx, threadParent, viewerFID)
}

// FetchAllCastsCreatedByUser returns the casts created by the user.
func (c *Client) FetchAllCastsCreatedByUser(ctx context.Context, fid uint64, opts v1.CastsOptions) (*v1.CastsResponse, error) {
	return c.v1.FetchAllCastsCreatedByUser(ctx, fid, opts)
}

// FetchRecentCasts returns the most recent casts.
func (c *Client) FetchRecentCasts(ctx context.Context, opts v1.PageOptions) (*v1.RecentCastsResponse, error) {
	return c.v1.FetchRecentCasts(ctx, opts)
}

// ------------ Verification ------------

// FetchUserVerifications returns the verified addresses of the user.
func (c *Client) FetchUserVerifications(ctx context.Context, fid uint64) (*v1.VerificationResponseResult, error) {
	return c.v1.FetchUserVerifications(ctx, fid)
}

// LookupUserByVerification returns the user that verified the address, or nil
// if none did.
func (c *Client) LookupUserByVerification(ctx context.Context, address string) (*v1.User, error) {
	return c.v1.LookupUserByVerification(ctx, address)
}

// ------------ Notifications ------------

func (c *Client) FetchMentionAndReplyNotifications(ctx context.Context, fid uint64, opts v1.PageOptions) (*v1.MentionsAndRepliesResponse, error) {
	return c.v1.FetchMentionAndReplyNotifications(ctx, fid, opts)
}

func (c *Client) FetchUserLikesAndRecasts(ctx context.Context, fid uint64, opts v1.PageOptions) (*v1.ReactionsAndRecastsResponse, error) {
	return c.v1.FetchUserLikesAndRecasts(ctx, fid, opts)
}

// ------------ Reactions ------------

func (c *Client) FetchCastLikes(ctx context.Context, cast api.CastRef, opts v1.PageOptions) (*v1.CastLikesResponse, error) {
	return c.v1.FetchCastLikes(ctx, cast, opts)
}

func (c *Client) FetchCastReactions(ctx context.Context, cast api.CastRef, opts v1.PageOptions) (*v1.CastReactionsResponse, error) {
	return c.v1.FetchCastReactions(ctx, cast, opts)
}

func (c *Client) FetchRecasters(ctx context.Context, cast api.CastRef, opts v1.PageOptions) (*v1.CastRecasterResponse, error) {
	return c.v1.FetchRecasters(ctx, cast, opts)
}

// ------------ Follows ------------

func (c *Client) FetchUserFollowers(ctx context.Context, fid uint64, opts v1.PageOptions) (*v1.FollowResponse, error) {
	return c.v1.FetchUserFollowers(ctx, fid, opts)
}

func (c *Client) FetchUserFollowing(ctx context.Context, fid uint64, opts v1.PageOptions) (*v1.FollowResponse, error) {
	return c.v1.FetchUserFollowing(ctx, fid, opts)
}

// ============ v2 ============

// ------------ Signer ------------

func (c *Client) CreateSigner(ctx context.Context) (*v2.Signer, error) {
	return c.v2.CreateSigner(ctx)
}

// LookupSigner returns the signer, or nil if it is not found.
func (c *Client) LookupSigner(ctx context.Context, signerUUID string) (*v2.Signer, error) {
	return c.v2.LookupSigner(ctx, signerUUID)
}

func (c *Client) RegisterSigner(ctx context.Context, signerUUID string, fid, deadline uint64, signature string) (*v2.Signer, error) {
	return c.v2.RegisterSigner(ctx, signerUUID, fid, deadline, signature)
}

// ------------ User ------------

func (c *Client) RemoveVerification(ctx context.Context, signerUUID, address string) (*v2.OperationResponse, error) {
	return c.v2.RemoveVerification(ctx, signerUUID, address)
}

func (c *Client) AddVerification(ctx context.Context, signerUUID, address, blockHash, ethSignature string) (*v2.OperationResponse, error) {
	return c.v2.AddVerification(ctx, signerUUID, address, blockHash, ethSignature)
}

func (c *Client) FollowUser(ctx context.Context, signerUUID string, targetFIDs []uint64) (*v2.BulkFollowResponse, error) {
	return c.v2.FollowUser(ctx, signerUUID, targetFIDs)
}

func (c *Client) UnfollowUser(ctx context.Context, signerUUID string, targetFIDs []uint64) (*v2.BulkFollowResponse, error) {
	return c.v2.UnfollowUser(ctx, signerUUID, targetFIDs)
}

func (c *Client) UpdateUserProfile(ctx context.Context, signerUUID string, opts v2.UpdateUserProfileOptions) (*v2.OperationResponse, error) {
	return c.v2.UpdateUserProfile(ctx, signerUUID, opts)
}

func (c *Client) FetchUsersInBulk(ctx context.Context, fids string, viewerFID *uint64) (*v2.UsersResponse, error) {
	return c.v2.FetchUsersInBulk(ctx, fids, viewerFID)
}

func (c *Client) SearchUser(ctx context.Context, q string, viewerFID uint64) (*v2.UserSearchResponse, error) {
	return c.v2.SearchUser(ctx, q, viewerFID)
}

func (c *Client) LookupUserByCustodyAddress(ctx context.Context, custodyAddress string) (*v2.UserResponse, error) {
	return c.v2.LookupUserByCustodyAddress(ctx, custodyAddress)
}

// ------------ Cast ------------

// LookupCastByHashOrWarpcastURL returns the cast, or nil if it is not found.
func (c *Client) LookupCastByHashOrWarpcastURL(ctx context.Context, castHashOrURL string, paramType v2.CastParamType) (*v2.Cast, error) {
	return c.v2.LookupCastByHashOrWarpcastURL(ctx, castHashOrURL, paramType)
}

func (c *Client) FetchBulkCastsByHash(ctx context.Context, casts string) (*v2.CastsResponse, error) {
	return c.v2.FetchBulkCastsByHash(ctx, casts)
}

func (c *Client) PublishCast(ctx context.Context, signerUUID, text string, opts v2.PublishCastOptions) (*v2.PostCastResponseCast, error) {
	return c.v2.PublishCast(ctx, signerUUID, text, opts)
}

func (c *Client) DeleteCast(ctx context.Context, signerUUID string, cast api.CastRef) (*v2.OperationResponse, error) {
	return c.v2.DeleteCast(ctx, signerUUID, cast)
}

// ------------ Feed ------------

func (c *Client) FetchFeedPage(ctx context.Context, feedType v2.FeedType, opts v2.FeedOptions) (*v2.FeedResponse, error) {
	return c.v2.FetchFeedPage(ctx, feedType, opts)
}

// ------------ Reaction ------------

func (c *Client) ReactToCast(ctx context.Context, signerUUID string, reaction v2.ReactionType, cast api.CastRef) (*v2.OperationResponse, error) {
	return c.v2.ReactToCast(ctx, signerUUID, reaction, cast)
}

func (c *Client) RemoveReactionFromCast(ctx context.Context, signerUUID string, reaction v2.ReactionType, cast api.CastRef) (*v2.OperationResponse, error) {
	return c.v2.RemoveReactionFromCast(ctx, signerUUID, reaction, cast)
}

// ------------ Notifications ------------

func (c *Client) FetchAllNotifications(ctx context.Context, fid uint64, opts v2.NotificationsOptions) (*v2.NotificationsResponse, error) {
	return c.v2.FetchAllNotifications(ctx, fid, opts)
}

// ------------ Follows ------------

func (c *Client) FetchRelevantFollowers(ctx context.Context, targetFID, viewerFID uint64) (*v2.RelevantFollowersResponse, error) {
	return c.v2.FetchRelevantFollowers(ctx, targetFID, viewerFID)
}

// ------------ Recommendation ------------

func (c *Client) FetchRelevantMints(ctx context.Context, address, contractAddress string, tokenID *string) (*v2.RelevantMintsResponse, error) {
	return c.v2.FetchRelevantMints(ctx, address, contractAddress, tokenID)
}

// ------------ Frame ------------

func (c *Client) ValidateFrameAction(ctx context.Context, messageBytesInHex string, castReactionContext, followContext *bool) (*v2.ValidateFrameResponse, error) {
	return c.v2.ValidateFrameAction(ctx, messageBytesInHex, castReactionContext, followContext)
}
