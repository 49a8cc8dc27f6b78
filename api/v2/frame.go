package v2

import (
	"context"
	"net/http"

	"github.com/vocdoni/neynar-go/api"
)

const pathFrameValidate = "/farcaster/frame/validate"

// FrameAPI groups the v2 frame endpoints.
type FrameAPI struct {
	transport *api.Transport
}

// ValidateFrameRequest validates a frame action signed by the interactor.
type ValidateFrameRequest struct {
	// MessageBytesInHex is the hex encoded frame action message.
	MessageBytesInHex string `json:"message_bytes_in_hex"`
	// CastReactionContext adds whether the interactor reacted to the cast
	// housing the frame.
	CastReactionContext *bool `json:"cast_reaction_context,omitempty"`
	// FollowContext adds whether the interactor follows or is followed by the
	// cast author.
	FollowContext *bool `json:"follow_context,omitempty"`
}

func (a *FrameAPI) ValidateFrame(ctx context.Context, body ValidateFrameRequest) (*ValidateFrameResponse, error) {
	if err := api.Require("validateFrame", api.StringParam("message_bytes_in_hex", body.MessageBytesInHex)); err != nil {
		return nil, err
	}
	return send[ValidateFrameResponse](ctx, a.transport, &api.Request{
		Method: http.MethodPost,
		Path:   pathFrameValidate,
		Body:   body,
	})
}
