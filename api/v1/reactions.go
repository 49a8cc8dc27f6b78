package v1

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

const (
	pathCastLikes     = "/farcaster/cast-likes"
	pathCastReactions = "/farcaster/cast-reactions"
	pathCastRecasters = "/farcaster/cast-recasters"
)

// ReactionsAPI groups the v1 cast reaction endpoints.
type ReactionsAPI struct {
	transport *api.Transport
}

type CastReactionsParams struct {
	CastHash string
	PageOptions
}

func (p CastReactionsParams) query(operation string) (*api.Query, error) {
	if err := api.Require(operation, api.StringParam("castHash", p.CastHash)); err != nil {
		return nil, err
	}
	return p.apply(api.NewQuery().String("castHash", p.CastHash)), nil
}

func (a *ReactionsAPI) CastLikes(ctx context.Context, p CastReactionsParams) (*CastLikesResponse, error) {
	q, err := p.query("castLikes")
	if err != nil {
		return nil, err
	}
	return get[CastLikesResponse](ctx, a.transport, pathCastLikes, q)
}

func (a *ReactionsAPI) CastReactions(ctx context.Context, p CastReactionsParams) (*CastReactionsResponse, error) {
	q, err := p.query("castReactions")
	if err != nil {
		return nil, err
	}
	return get[CastReactionsResponse](ctx, a.transport, pathCastReactions, q)
}

func (a *ReactionsAPI) CastRecasters(ctx context.Context, p CastReactionsParams) (*CastRecasterResponse, error) {
	q, err := p.query("castRecasters")
	if err != nil {
		return nil, err
	}
	return get[CastRecasterResponse](ctx, a.transport, pathCastRecasters, q)
}
