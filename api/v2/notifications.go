package v2

import (
	"context"

	"github.com/vocdoni/neynar-go/api"
)

const pathNotifications = "/farcaster/notifications"

// NotificationsAPI groups the v2 notification endpoints.
type NotificationsAPI struct {
	transport *api.Transport
}

type NotificationsParams struct {
	FID uint64
	NotificationsOptions
}

type NotificationsOptions struct {
	Cursor *string
	Limit  *int32
}

func (a *NotificationsAPI) Notifications(ctx context.Context, p NotificationsParams) (*NotificationsResponse, error) {
	if err := api.Require("notifications", api.FIDParam("fid", p.FID)); err != nil {
		return nil, err
	}
	q := api.NewQuery().Uint64("fid", p.FID).OptString("cursor", p.Cursor).OptInt32("limit", p.Limit)
	return get[NotificationsResponse](ctx, a.transport, pathNotifications, q)
}
