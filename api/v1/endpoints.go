package v1

import (
	"context"
	"net/http"

	"github.com/vocdoni/neynar-go/api"
)

// PageOptions are the optional parameters accepted by every v1 list
// endpoint. Nil fields are not sent.
type PageOptions struct {
	// ViewerFID adds the viewer context to the returned users and casts.
	ViewerFID *uint64
	// Limit is the page size.
	Limit *int32
	// Cursor is the opaque cursor returned as Next.Cursor by the previous page.
	Cursor *string
}

func (o PageOptions) apply(q *api.Query) *api.Query {
	return q.OptUint64("viewerFid", o.ViewerFID).
		OptInt32("limit", o.Limit).
		OptString("cursor", o.Cursor)
}

func get[T any](ctx context.Context, t *api.Transport, path string, q *api.Query) (*T, error) {
	res := new(T)
	req := &api.Request{Method: http.MethodGet, Path: path, Query: q}
	if err := t.Do(ctx, req, res); err != nil {
		return nil, err
	}
	return res, nil
}
