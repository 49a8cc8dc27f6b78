package v2

import (
	"context"
	"net/http"

	"github.com/vocdoni/neynar-go/api"
)

const (
	pathUser               = "/farcaster/user"
	pathUserVerification   = "/farcaster/user/verification"
	pathUserFollow         = "/farcaster/user/follow"
	pathUserBulk           = "/farcaster/user/bulk"
	pathUserSearch         = "/farcaster/user/search"
	pathUserCustodyAddress = "/farcaster/user/custody-address"
)

// UserAPI groups the v2 user endpoints.
type UserAPI struct {
	transport *api.Transport
}

type RemoveVerificationReqBody struct {
	SignerUUID string `json:"signer_uuid"`
	Address    string `json:"address"`
}

type AddVerificationReqBody struct {
	SignerUUID   string `json:"signer_uuid"`
	Address      string `json:"address"`
	BlockHash    string `json:"block_hash"`
	EthSignature string `json:"eth_signature"`
}

type FollowReqBody struct {
	SignerUUID string   `json:"signer_uuid"`
	TargetFIDs []uint64 `json:"target_fids"`
}

// UpdateUserReqBody updates the profile fields that are not nil.
type UpdateUserReqBody struct {
	SignerUUID  string  `json:"signer_uuid"`
	Bio         *string `json:"bio,omitempty"`
	PfpURL      *string `json:"pfp_url,omitempty"`
	URL         *string `json:"url,omitempty"`
	Username    *string `json:"username,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
}

type UserBulkParams struct {
	// FIDs is a comma separated list of fids.
	FIDs      string
	ViewerFID *uint64
}

type UserSearchParams struct {
	Q         string
	ViewerFID uint64
}

type CustodyAddressParams struct {
	CustodyAddress string
}

func (a *UserAPI) RemoveVerification(ctx context.Context, body RemoveVerificationReqBody) (*OperationResponse, error) {
	if err := api.Require("farcasterUserVerificationDelete", api.StringParam("signer_uuid", body.SignerUUID)); err != nil {
		return nil, err
	}
	if err := api.CheckAddress("farcasterUserVerificationDelete", "address", body.Address); err != nil {
		return nil, err
	}
	return send[OperationResponse](ctx, a.transport, &api.Request{
		Method: http.MethodDelete,
		Path:   pathUserVerification,
		Body:   body,
	})
}

func (a *UserAPI) AddVerification(ctx context.Context, body AddVerificationReqBody) (*OperationResponse, error) {
	if err := api.Require("farcasterUserVerificationPost",
		api.StringParam("signer_uuid", body.SignerUUID),
		api.StringParam("block_hash", body.BlockHash),
		api.StringParam("eth_signature", body.EthSignature),
	); err != nil {
		return nil, err
	}
	if err := api.CheckAddress("farcasterUserVerificationPost", "address", body.Address); err != nil {
		return nil, err
	}
	return send[OperationResponse](ctx, a.transport, &api.Request{
		Method: http.MethodPost,
		Path:   pathUserVerification,
		Body:   body,
	})
}

func (a *UserAPI) Follow(ctx context.Context, body FollowReqBody) (*BulkFollowResponse, error) {
	return a.follow(ctx, "followUser", http.MethodPost, body)
}

func (a *UserAPI) Unfollow(ctx context.Context, body FollowReqBody) (*BulkFollowResponse, error) {
	return a.follow(ctx, "unfollowUser", http.MethodDelete, body)
}

func (a *UserAPI) follow(ctx context.Context, operation, method string, body FollowReqBody) (*BulkFollowResponse, error) {
	if err := api.Require(operation,
		api.StringParam("signer_uuid", body.SignerUUID),
		api.Param{Name: "target_fids", Present: len(body.TargetFIDs) > 0},
	); err != nil {
		return nil, err
	}
	return send[BulkFollowResponse](ctx, a.transport, &api.Request{
		Method: method,
		Path:   pathUserFollow,
		Body:   body,
	})
}

func (a *UserAPI) UpdateUser(ctx context.Context, body UpdateUserReqBody) (*OperationResponse, error) {
	if err := api.Require("updateUser", api.StringParam("signer_uuid", body.SignerUUID)); err != nil {
		return nil, err
	}
	return send[OperationResponse](ctx, a.transport, &api.Request{
		Method: http.MethodPatch,
		Path:   pathUser,
		Body:   body,
	})
}

func (a *UserAPI) UserBulk(ctx context.Context, p UserBulkParams) (*UsersResponse, error) {
	if err := api.Require("userBulk", api.StringParam("fids", p.FIDs)); err != nil {
		return nil, err
	}
	q := api.NewQuery().String("fids", p.FIDs).OptUint64("viewer_fid", p.ViewerFID)
	return get[UsersResponse](ctx, a.transport, pathUserBulk, q)
}

func (a *UserAPI) UserSearch(ctx context.Context, p UserSearchParams) (*UserSearchResponse, error) {
	if err := api.Require("userSearch",
		api.StringParam("q", p.Q),
		api.FIDParam("viewer_fid", p.ViewerFID),
	); err != nil {
		return nil, err
	}
	q := api.NewQuery().String("q", p.Q).Uint64("viewer_fid", p.ViewerFID)
	return get[UserSearchResponse](ctx, a.transport, pathUserSearch, q)
}

func (a *UserAPI) LookupUserByCustodyAddress(ctx context.Context, p CustodyAddressParams) (*UserResponse, error) {
	if err := api.Require("lookupUserByCustodyAddress", api.StringParam("custody_address", p.CustodyAddress)); err != nil {
		return nil, err
	}
	q := api.NewQuery().String("custody_address", p.CustodyAddress)
	return get[UserResponse](ctx, a.transport, pathUserCustodyAddress, q)
}
