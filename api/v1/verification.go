package v1

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

const (
	pathVerifications      = "/farcaster/verifications"
	pathUserByVerification = "/farcaster/user-by-verification"
)

// VerificationAPI groups the v1 verification endpoints.
type VerificationAPI struct {
	transport *api.Transport
}

type VerificationsParams struct {
	FID uint64
}

type UserByVerificationParams struct {
	Address string
}

func (a *VerificationAPI) Verifications(ctx context.Context, p VerificationsParams) (*VerificationResponse, error) {
	if err := api.Require("verifications", api.FIDParam("fid", p.FID)); err != nil {
		return nil, err
	}
	return get[VerificationResponse](ctx, a.transport, pathVerifications, api.NewQuery().Uint64("fid", p.FID))
}

func (a *VerificationAPI) UserByVerification(ctx context.Context, p UserByVerificationParams) (*UserResponse, error) {
	if err := api.Require("userByVerification", api.StringParam("address", p.Address)); err != nil {
		return nil, err
	}
	return get[UserResponse](ctx, a.transport, pathUserByVerification, api.NewQuery().String("address", p.Address))
}
