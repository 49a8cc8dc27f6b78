package v1

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

const (
	pathFollowers = "/farcaster/followers"
	pathFollowing = "/farcaster/following"
)

// FollowsAPI groups the v1 follow graph endpoints.
type FollowsAPI struct {
	transport *api.Transport
}

type FollowsParams struct {
	FID uint64
	PageOptions
}

func (a *FollowsAPI) Followers(ctx context.Context, p FollowsParams) (*FollowResponse, error) {
	if err := api.Require("followers", api.FIDParam("fid", p.FID)); err != nil {
		return nil, err
	}
	return get[FollowResponse](ctx, a.transport, pathFollowers, p.apply(api.NewQuery().Uint64("fid", p.FID)))
}

func (a *FollowsAPI) Following(ctx context.Context, p FollowsParams) (*FollowResponse, error) {
	if err := api.Require("following", api.FIDParam("fid", p.FID)); err != nil {
		return nil, err
	}
	return get[FollowResponse](ctx, a.transport, pathFollowing, p.apply(api.NewQuery().Uint64("fid", p.FID)))
}
