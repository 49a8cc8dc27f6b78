package v2

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

const pathFeed = "/farcaster/feed"

// FeedAPI groups the v2 feed endpoints.
type FeedAPI struct {
	transport *api.Transport
}

// FeedParams are the parameters of the feed endpoint. FeedType is required,
// the rest are only sent when set.
type FeedParams struct {
	FeedType FeedType
	FeedOptions
}

// FeedOptions are the optional parameters of the feed endpoint.
type FeedOptions struct {
	// FilterType is used with FeedFilter.
	FilterType *FilterType
	// FID is the user whose following feed is built.
	FID *uint64
	// FIDs is a comma separated list of fids, used with FilterFIDs.
	FIDs *string
	// ParentURL is used with FilterParentURL, e.g. a channel url.
	ParentURL   *string
	WithRecasts *bool
	Limit       *int32
	Cursor      *string
}

func (a *FeedAPI) Feed(ctx context.Context, p FeedParams) (*FeedResponse, error) {
	if err := api.Require("feed", api.StringParam("feed_type", string(p.FeedType))); err != nil {
		return nil, err
	}
	q := api.NewQuery().String("feed_type", string(p.FeedType))
	if p.FilterType != nil {
		q.String("filter_type", string(*p.FilterType))
	}
	q.OptUint64("fid", p.FID).
		OptString("fids", p.FIDs).
		OptString("parent_url", p.ParentURL).
		OptBool("with_recasts", p.WithRecasts).
		OptInt32("limit", p.Limit).
		OptString("cursor", p.Cursor)
	return get[FeedResponse](ctx, a.transport, pathFeed, q)
}
