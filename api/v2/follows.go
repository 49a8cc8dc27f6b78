package v2

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

const pathRelevantFollowers = "/farcaster/followers/relevant"

// FollowsAPI groups the v2 follow graph endpoints.
type FollowsAPI struct {
	transport *api.Transport
}

type RelevantFollowersParams struct {
	TargetFID uint64
	ViewerFID uint64
}

func (a *FollowsAPI) RelevantFollowers(ctx context.Context, p RelevantFollowersParams) (*RelevantFollowersResponse, error) {
	if err := api.Require("relevantFollowers",
		api.FIDParam("target_fid", p.TargetFID),
		api.FIDParam("viewer_fid", p.ViewerFID),
	); err != nil {
		return nil, err
	}
	q := api.NewQuery().Uint64("target_fid", p.TargetFID).Uint64("viewer_fid", p.ViewerFID)
	return get[RelevantFollowersResponse](ctx, a.transport, pathRelevantFollowers, q)
}
