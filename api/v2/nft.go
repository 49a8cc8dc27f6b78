package v2

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

const pathRelevantMints = "/nft/relevant_mints"

// NFTAPI groups the v2 NFT recommendation endpoints.
type NFTAPI struct {
	transport *api.Transport
}

type RelevantMintsParams struct {
	// Address is the ethereum address of the user.
	Address         string
	ContractAddress string
	// TokenID narrows the mints of ERC1155 contracts.
	TokenID *string
}

func (a *NFTAPI) FetchRelevantMints(ctx context.Context, p RelevantMintsParams) (*RelevantMintsResponse, error) {
	if err := api.CheckAddress("fetchRelevantMints", "address", p.Address); err != nil {
		return nil, err
	}
	if err := api.CheckAddress("fetchRelevantMints", "contract_address", p.ContractAddress); err != nil {
		return nil, err
	}
	q := api.NewQuery().
		String("address", p.Address).
		String("contract_address", p.ContractAddress).
		OptString("token_id", p.TokenID)
	return get[RelevantMintsResponse](ctx, a.transport, pathRelevantMints, q)
}
