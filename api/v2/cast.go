package v2

import (
	"context"
	"net/http"

	"github.com/vocdoni/neynar-go/api"
)

const (
	pathCast  = "/farcaster/cast"
	pathCasts = "/farcaster/casts"
)

// CastAPI groups the v2 cast endpoints.
type CastAPI struct {
	transport *api.Transport
}

type CastParams struct {
	// Identifier is a cast hash or a Warpcast cast url, according to Type.
	Identifier string
	Type       CastParamType
}

type CastsParams struct {
	// Casts is a comma separated list of cast hashes.
	Casts string
}

// PostCastReqBody publishes a cast. Embeds and Parent are only sent when set.
type PostCastReqBody struct {
	SignerUUID string         `json:"signer_uuid"`
	Text       string         `json:"text"`
	Embeds     []EmbeddedCast `json:"embeds,omitempty"`
	Parent     *string        `json:"parent,omitempty"`
}

type DeleteCastReqBody struct {
	SignerUUID string `json:"signer_uuid"`
	TargetHash string `json:"target_hash"`
}

func (a *CastAPI) Cast(ctx context.Context, p CastParams) (*CastResponse, error) {
	if err := api.Require("cast",
		api.StringParam("identifier", p.Identifier),
		api.StringParam("type", string(p.Type)),
	); err != nil {
		return nil, err
	}
	q := api.NewQuery().String("identifier", p.Identifier).String("type", string(p.Type))
	return get[CastResponse](ctx, a.transport, pathCast, q)
}

func (a *CastAPI) Casts(ctx context.Context, p CastsParams) (*CastsResponse, error) {
	if err := api.Require("casts", api.StringParam("casts", p.Casts)); err != nil {
		return nil, err
	}
	return get[CastsResponse](ctx, a.transport, pathCasts, api.NewQuery().String("casts", p.Casts))
}

func (a *CastAPI) PostCast(ctx context.Context, body PostCastReqBody) (*PostCastResponse, error) {
	if err := api.Require("postCast", api.StringParam("signer_uuid", body.SignerUUID)); err != nil {
		return nil, err
	}
	return send[PostCastResponse](ctx, a.transport, &api.Request{
		Method: http.MethodPost,
		Path:   pathCast,
		Body:   body,
	})
}

func (a *CastAPI) DeleteCast(ctx context.Context, body DeleteCastReqBody) (*OperationResponse, error) {
	if err := api.Require("deleteCast",
		api.StringParam("signer_uuid", body.SignerUUID),
		api.StringParam("target_hash", body.TargetHash),
	); err != nil {
		return nil, err
	}
	return send[OperationResponse](ctx, a.transport, &api.Request{
		Method: http.MethodDelete,
		Path:   pathCast,
		Body:   body,
	})
}
