package v2

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

// APIs are the v2 endpoint groups, all sharing the same transport.
type APIs struct {
	Signer        *SignerAPI
	User          *UserAPI
	Cast          *CastAPI
	Reaction      *ReactionAPI
	Feed          *FeedAPI
	Follows       *FollowsAPI
	Notifications *NotificationsAPI
	NFT           *NFTAPI
	Frame         *FrameAPI
}

// Client is the Neynar v2 API client. It is safe for concurrent use.
type Client struct {
	apis *APIs
}

// PublishCastOptions are the optional parameters of PublishCast.
type PublishCastOptions struct {
	Embeds []EmbeddedCast
	// ReplyTo is the hash of the parent cast or a parent url.
	ReplyTo *string
}

// UpdateUserProfileOptions are the profile fields to update, nil fields are
// left unchanged.
type UpdateUserProfileOptions struct {
	Bio         *string
	PfpURL      *string
	URL         *string
	Username    *string
	DisplayName *string
}

// New returns a v2 client for the configuration provided. It fails if the api
// key is not set. The base path defaults to api.DefaultV2BasePath.
func New(cfg api.Config) (*Client, error) {
	transport, err := api.NewTransport(cfg, api.DefaultV2BasePath)
	if err != nil {
		return nil, err
	}
	return &Client{
		apis: &APIs{
			Signer:        &SignerAPI{transport},
			User:          &UserAPI{transport},
			Cast:          &CastAPI{transport},
			Reaction:      &ReactionAPI{transport},
			Feed:          &FeedAPI{transport},
			Follows:       &FollowsAPI{transport},
			Notifications: &NotificationsAPI{transport},
			NFT:           &NFTAPI{transport},
			Frame:         &FrameAPI{transport},
		},
	}, nil
}

// APIs returns the endpoint groups of the client.
func (c *Client) APIs() *APIs {
	return c.apis
}

// CreateSigner creates a new signer, pending of registration.
func (c *Client) CreateSigner(ctx context.Context) (*Signer, error) {
	return c.apis.Signer.CreateSigner(ctx)
}

// LookupSigner returns the signer with the uuid provided, or nil if it is not
// found.
func (c *Client) LookupSigner(ctx context.Context, signerUUID string) (*Signer, error) {
	return api.NilOnNotFound(c.apis.Signer.Signer(ctx, SignerParams{SignerUUID: signerUUID}))
}

// RegisterSigner registers the signed key of the signer on behalf of the app
// fid provided. A zero fid or deadline is rejected as missing.
func (c *Client) RegisterSigner(ctx context.Context, signerUUID string, fid, deadline uint64, signature string) (*Signer, error) {
	return c.apis.Signer.RegisterSignedKey(ctx, RegisterSignerKeyReqBody{
		SignerUUID: signerUUID,
		AppFID:     fid,
		Deadline:   deadline,
		Signature:  signature,
	})
}

// RemoveVerification removes the verification of an ethereum address.
func (c *Client) RemoveVerification(ctx context.Context, signerUUID, address string) (*OperationResponse, error) {
	return c.apis.User.RemoveVerification(ctx, RemoveVerificationReqBody{
		SignerUUID: signerUUID,
		Address:    address,
	})
}

// AddVerification adds the verification of an ethereum address.
func (c *Client) AddVerification(ctx context.Context, signerUUID, address, blockHash, ethSignature string) (*OperationResponse, error) {
	return c.apis.User.AddVerification(ctx, AddVerificationReqBody{
		SignerUUID:   signerUUID,
		Address:      address,
		BlockHash:    blockHash,
		EthSignature: ethSignature,
	})
}

// FollowUser follows the target users.
func (c *Client) FollowUser(ctx context.Context, signerUUID string, targetFIDs []uint64) (*BulkFollowResponse, error) {
	return c.apis.User.Follow(ctx, FollowReqBody{SignerUUID: signerUUID, TargetFIDs: targetFIDs})
}

// UnfollowUser unfollows the target users.
func (c *Client) UnfollowUser(ctx context.Context, signerUUID string, targetFIDs []uint64) (*BulkFollowResponse, error) {
	return c.apis.User.Unfollow(ctx, FollowReqBody{SignerUUID: signerUUID, TargetFIDs: targetFIDs})
}

// UpdateUserProfile updates the profile fields provided.
func (c *Client) UpdateUserProfile(ctx context.Context, signerUUID string, opts UpdateUserProfileOptions) (*OperationResponse, error) {
	return c.apis.User.UpdateUser(ctx, UpdateUserReqBody{
		SignerUUID:  signerUUID,
		Bio:         opts.Bio,
		PfpURL:      opts.PfpURL,
		URL:         opts.URL,
		Username:    opts.Username,
		DisplayName: opts.DisplayName,
	})
}

// FetchUsersInBulk returns the users of the comma separated fids provided.
func (c *Client) FetchUsersInBulk(ctx context.Context, fids string, viewerFID *uint64) (*UsersResponse, error) {
	return c.apis.User.UserBulk(ctx, UserBulkParams{FIDs: fids, ViewerFID: viewerFID})
}

// SearchUser returns the users whose username starts with q.
func (c *Client) SearchUser(ctx context.Context, q string, viewerFID uint64) (*UserSearchResponse, error) {
	return c.apis.User.UserSearch(ctx, UserSearchParams{Q: q, ViewerFID: viewerFID})
}

// LookupUserByCustodyAddress returns the user owning the custody address.
func (c *Client) LookupUserByCustodyAddress(ctx context.Context, custodyAddress string) (*UserResponse, error) {
	return c.apis.User.LookupUserByCustodyAddress(ctx, CustodyAddressParams{CustodyAddress: custodyAddress})
}

// LookupCastByHashOrWarpcastURL returns the cast identified by the hash or the
// Warpcast url provided, or nil if it is not found.
func (c *Client) LookupCastByHashOrWarpcastURL(ctx context.Context, castHashOrURL string, paramType CastParamType) (*Cast, error) {
	res, err := api.NilOnNotFound(c.apis.Cast.Cast(ctx, CastParams{Identifier: castHashOrURL, Type: paramType}))
	if res == nil || err != nil {
		return nil, err
	}
	return res.Cast, nil
}

// FetchBulkCastsByHash returns the casts of the comma separated hashes
// provided.
func (c *Client) FetchBulkCastsByHash(ctx context.Context, casts string) (*CastsResponse, error) {
	return c.apis.Cast.Casts(ctx, CastsParams{Casts: casts})
}

// PublishCast publishes a cast on behalf of the signer.
func (c *Client) PublishCast(ctx context.Context, signerUUID, text string, opts PublishCastOptions) (*PostCastResponseCast, error) {
	res, err := c.apis.Cast.PostCast(ctx, PostCastReqBody{
		SignerUUID: signerUUID,
		Text:       text,
		Embeds:     opts.Embeds,
		Parent:     opts.ReplyTo,
	})
	if err != nil {
		return nil, err
	}
	return res.Cast, nil
}

// DeleteCast deletes the cast referenced on behalf of the signer.
func (c *Client) DeleteCast(ctx context.Context, signerUUID string, cast api.CastRef) (*OperationResponse, error) {
	return c.apis.Cast.DeleteCast(ctx, DeleteCastReqBody{SignerUUID: signerUUID, TargetHash: cast.Hash()})
}

// FetchFeedPage returns a page of the feed.
func (c *Client) FetchFeedPage(ctx context.Context, feedType FeedType, opts FeedOptions) (*FeedResponse, error) {
	return c.apis.Feed.Feed(ctx, FeedParams{FeedType: feedType, FeedOptions: opts})
}

// ReactToCast likes or recasts the cast referenced on behalf of the signer.
func (c *Client) ReactToCast(ctx context.Context, signerUUID string, reaction ReactionType, cast api.CastRef) (*OperationResponse, error) {
	return c.apis.Reaction.PostReaction(ctx, ReactionReqBody{
		SignerUUID:   signerUUID,
		ReactionType: reaction,
		Target:       cast.Hash(),
	})
}

// RemoveReactionFromCast removes a like or a recast from the cast referenced.
func (c *Client) RemoveReactionFromCast(ctx context.Context, signerUUID string, reaction ReactionType, cast api.CastRef) (*OperationResponse, error) {
	return c.apis.Reaction.DeleteReaction(ctx, ReactionReqBody{
		SignerUUID:   signerUUID,
		ReactionType: reaction,
		Target:       cast.Hash(),
	})
}

// FetchAllNotifications returns the notifications of the user in reverse
// chronological order.
func (c *Client) FetchAllNotifications(ctx context.Context, fid uint64, opts NotificationsOptions) (*NotificationsResponse, error) {
	return c.apis.Notifications.Notifications(ctx, NotificationsParams{FID: fid, NotificationsOptions: opts})
}

// FetchRelevantFollowers returns the followers of the target that are
// relevant to the viewer.
func (c *Client) FetchRelevantFollowers(ctx context.Context, targetFID, viewerFID uint64) (*RelevantFollowersResponse, error) {
	return c.apis.Follows.RelevantFollowers(ctx, RelevantFollowersParams{TargetFID: targetFID, ViewerFID: viewerFID})
}

// FetchRelevantMints returns the mints of the contract, and optionally of the
// token, relevant to the user address.
func (c *Client) FetchRelevantMints(ctx context.Context, address, contractAddress string, tokenID *string) (*RelevantMintsResponse, error) {
	return c.apis.NFT.FetchRelevantMints(ctx, RelevantMintsParams{
		Address:         address,
		ContractAddress: contractAddress,
		TokenID:         tokenID,
	})
}

// ValidateFrameAction validates a signed frame action message.
func (c *Client) ValidateFrameAction(ctx context.Context, messageBytesInHex string, castReactionContext, followContext *bool) (*ValidateFrameResponse, error) {
	return c.apis.Frame.ValidateFrame(ctx, ValidateFrameRequest{
		MessageBytesInHex:   messageBytesInHex,
		CastReactionContext: castReactionContext,
		FollowContext:       followContext,
	})
}
