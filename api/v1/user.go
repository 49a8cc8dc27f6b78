package v1

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

const (
	pathRecentUsers    = "/farcaster/recent-users"
	pathUserCastLikes  = "/farcaster/user-cast-likes"
	pathUser           = "/farcaster/user"
	pathUserByUsername = "/farcaster/user-by-username"
	pathCustodyAddress = "/farcaster/custody-address"
)

// UserAPI groups the v1 user endpoints.
type UserAPI struct {
	transport *api.Transport
}

type RecentUsersParams struct {
	PageOptions
}

type UserCastLikesParams struct {
	FID uint64
	PageOptions
}

type UserParams struct {
	FID       uint64
	ViewerFID *uint64
}

type UserByUsernameParams struct {
	Username  string
	ViewerFID *uint64
}

type CustodyAddressParams struct {
	FID uint64
}

func (a *UserAPI) RecentUsers(ctx context.Context, p RecentUsersParams) (*RecentUsersResponse, error) {
	return get[RecentUsersResponse](ctx, a.transport, pathRecentUsers, p.apply(api.NewQuery()))
}

func (a *UserAPI) UserCastLikes(ctx context.Context, p UserCastLikesParams) (*UserCastLikeResponse, error) {
	if err := api.Require("userCastLikes", api.FIDParam("fid", p.FID)); err != nil {
		return nil, err
	}
	q := p.apply(api.NewQuery().Uint64("fid", p.FID))
	return get[UserCastLikeResponse](ctx, a.transport, pathUserCastLikes, q)
}

func (a *UserAPI) User(ctx context.Context, p UserParams) (*UserResponse, error) {
	if err := api.Require("user", api.FIDParam("fid", p.FID)); err != nil {
		return nil, err
	}
	q := api.NewQuery().Uint64("fid", p.FID).OptUint64("viewerFid", p.ViewerFID)
	return get[UserResponse](ctx, a.transport, pathUser, q)
}

func (a *UserAPI) UserByUsername(ctx context.Context, p UserByUsernameParams) (*UserResponse, error) {
	if err := api.Require("userByUsername", api.StringParam("username", p.Username)); err != nil {
		return nil, err
	}
	q := api.NewQuery().String("username", p.Username).OptUint64("viewerFid", p.ViewerFID)
	return get[UserResponse](ctx, a.transport, pathUserByUsername, q)
}

func (a *UserAPI) CustodyAddress(ctx context.Context, p CustodyAddressParams) (*CustodyAddressResponse, error) {
	if err := api.Require("custodyAddress", api.FIDParam("fid", p.FID)); err != nil {
		return nil, err
	}
	return get[CustodyAddressResponse](ctx, a.transport, pathCustodyAddress, api.NewQuery().Uint64("fid", p.FID))
}
