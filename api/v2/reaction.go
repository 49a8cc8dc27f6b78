package v2

import (
	"context"
	"net/http"

	"github.com/vocdoni/neynar-go/api"
)

const pathReaction = "/farcaster/reaction"

// ReactionAPI groups the v2 reaction endpoints.
type ReactionAPI struct {
	transport *api.Transport
}

type ReactionReqBody struct {
	SignerUUID   string       `json:"signer_uuid"`
	ReactionType ReactionType `json:"reaction_type"`
	Target       string       `json:"target"`
}

func (a *ReactionAPI) PostReaction(ctx context.Context, body ReactionReqBody) (*OperationResponse, error) {
	return a.reaction(ctx, "postReaction", http.MethodPost, body)
}

func (a *ReactionAPI) DeleteReaction(ctx context.Context, body ReactionReqBody) (*OperationResponse, error) {
	return a.reaction(ctx, "deleteReaction", http.MethodDelete, body)
}

func (a *ReactionAPI) reaction(ctx context.Context, operation, method string, body ReactionReqBody) (*OperationResponse, error) {
	if err := api.Require(operation,
		api.StringParam("signer_uuid", body.SignerUUID),
		api.StringParam("reaction_type", string(body.ReactionType)),
		api.StringParam("target", body.Target),
	); err != nil {
		return nil, err
	}
	return send[OperationResponse](ctx, a.transport, &api.Request{
		Method: method,
		Path:   pathReaction,
		Body:   body,
	})
}
