package v1

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

const (
	pathCast             = "/farcaster/cast"
	pathAllCastsInThread = "/farcaster/all-casts-in-thread"
	pathCasts            = "/farcaster/casts"
	pathRecentCasts      = "/farcaster/recent-casts"
)

// CastAPI groups the v1 cast endpoints.
type CastAPI struct {
	transport *api.Transport
}

type CastParams struct {
	Hash      string
	ViewerFID *uint64
}

type AllCastsInThreadParams struct {
	ThreadHash string
	ViewerFID  *uint64
}

type CastsParams struct {
	FID       uint64
	ParentURL *string
	PageOptions
}

type RecentCastsParams struct {
	PageOptions
}

func (a *CastAPI) Cast(ctx context.Context, p CastParams) (*CastResponse, error) {
	if err := api.Require("cast", api.StringParam("hash", p.Hash)); err != nil {
		return nil, err
	}
	q := api.NewQuery().String("hash", p.Hash).OptUint64("viewerFid", p.ViewerFID)
	return get[CastResponse](ctx, a.transport, pathCast, q)
}

func (a *CastAPI) AllCastsInThread(ctx context.Context, p AllCastsInThreadParams) (*AllCastsInThreadResponse, error) {
	if err := api.Require("allCastsInThread", api.StringParam("threadHash", p.ThreadHash)); err != nil {
		return nil, err
	}
	q := api.NewQuery().String("threadHash", p.ThreadHash).OptUint64("viewerFid", p.ViewerFID)
	return get[AllCastsInThreadResponse](ctx, a.transport, pathAllCastsInThread, q)
}

func (a *CastAPI) Casts(ctx context.Context, p CastsParams) (*CastsResponse, error) {
	if err := api.Require("casts", api.FIDParam("fid", p.FID)); err != nil {
		return nil, err
	}
	q := api.NewQuery().Uint64("fid", p.FID).OptString("parent_url", p.ParentURL)
	return get[CastsResponse](ctx, a.transport, pathCasts, p.apply(q))
}

func (a *CastAPI) RecentCasts(ctx context.Context, p RecentCastsParams) (*RecentCastsResponse, error) {
	return get[RecentCastsResponse](ctx, a.transport, pathRecentCasts, p.apply(api.NewQuery()))
}
