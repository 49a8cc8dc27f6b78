package v1

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

const (
	pathMentionsAndReplies  = "/farcaster/mentions-and-replies"
	pathReactionsAndRecasts = "/farcaster/reactions-and-recasts"
)

// NotificationsAPI groups the v1 notification endpoints.
type NotificationsAPI struct {
	transport *api.Transport
}

type NotificationsParams struct {
	FID uint64
	PageOptions
}

func (a *NotificationsAPI) MentionsAndReplies(ctx context.Context, p NotificationsParams) (*MentionsAndRepliesResponse, error) {
	if err := api.Require("mentionsAndReplies", api.FIDParam("fid", p.FID)); err != nil {
		return nil, err
	}
	q := p.apply(api.NewQuery().Uint64("fid", p.FID))
	return get[MentionsAndRepliesResponse](ctx, a.transport, pathMentionsAndReplies, q)
}

func (a *NotificationsAPI) ReactionsAndRecasts(ctx context.Context, p NotificationsParams) (*ReactionsAndRecastsResponse, error) {
	if err := api.Require("reactionsAndRecasts", api.FIDParam("fid", p.FID)); err != nil {
		return nil, err
	}
	q := p.apply(api.NewQuery().Uint64("fid", p.FID))
	return get[ReactionsAndRecastsResponse](ctx, a.transport, pathReactionsAndRecasts, q)
}
