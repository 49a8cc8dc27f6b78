package v2

import (
	"context"
	"net/http"

	"github.com/vocdoni/neynar-go/api"
)

func get[T any](ctx context.Context, t *api.Transport, path string, q *api.Query) (*T, error) {
	return send[T](ctx, t, &api.Request{Method: http.MethodGet, Path: path, Query: q})
}

func send[T any](ctx context.Context, t *api.Transport, req *api.Request) (*T, error) {
	res := new(T)
	if err := t.Do(ctx, req, res); err != nil {
		return nil, err
	}
	return res, nil
}
