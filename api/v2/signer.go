package v2

import (
	"context"
	"net/http"

	"github.com/vocdoni/neynar-go/api"
)

const (
	pathSigner          = "/farcaster/signer"
	pathSignerSignedKey = "/farcaster/signer/signed_key"
)

// SignerAPI groups the v2 signer endpoints.
type SignerAPI struct {
	transport *api.Transport
}

type SignerParams struct {
	SignerUUID string
}

// RegisterSignerKeyReqBody registers a signer public key on behalf of an app
// fid. The signature is the EIP-712 signature of the app custody address over
// the key and the deadline.
type RegisterSignerKeyReqBody struct {
	SignerUUID string `json:"signer_uuid"`
	AppFID     uint64 `json:"app_fid"`
	Deadline   uint64 `json:"deadline"`
	Signature  string `json:"signature"`
}

func (a *SignerAPI) CreateSigner(ctx context.Context) (*Signer, error) {
	return send[Signer](ctx, a.transport, &api.Request{Method: http.MethodPost, Path: pathSigner})
}

func (a *SignerAPI) Signer(ctx context.Context, p SignerParams) (*Signer, error) {
	if err := api.Require("signer", api.StringParam("signer_uuid", p.SignerUUID)); err != nil {
		return nil, err
	}
	return get[Signer](ctx, a.transport, pathSigner, api.NewQuery().String("signer_uuid", p.SignerUUID))
}

func (a *SignerAPI) RegisterSignedKey(ctx context.Context, body RegisterSignerKeyReqBody) (*Signer, error) {
	if err := api.Require("registerSignedKey",
		api.StringParam("signer_uuid", body.SignerUUID),
		api.FIDParam("app_fid", body.AppFID),
		api.Param{Name: "deadline", Present: body.Deadline != 0},
		api.StringParam("signature", body.Signature),
	); err != nil {
		return nil, err
	}
	return send[Signer](ctx, a.transport, &api.Request{
		Method: http.MethodPost,
		Path:   pathSignerSignedKey,
		Body:   body,
	})
}
