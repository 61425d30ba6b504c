package cache

import (
	"context"
	"net/url"
	"strings"
)

// Key builds the deterministic cache key for a resource and its call
// parameters. Equal parameters always produce equal keys because
// url.Values.Encode emits pairs sorted by name; distinct filter
// combinations produce distinct keys.
func Key(resource string, params url.Values) string {
	if len(params) == 0 {
		return resource
	}
	return resource + "?" + params.Encode()
}

func keyResource(key string) string {
	if i := strings.IndexByte(key, '?'); i >= 0 {
		return key[:i]
	}
	return key
}

// TypedResult mirrors Result with the value asserted to its concrete type.
type TypedResult[T any] struct {
	Value     T
	IsLoading bool
	Err       error
	State     State
}

// ResolveAs is a typed wrapper around Coordinator.Resolve for callers that
// know the concrete collection type behind a key.
func ResolveAs[T any](c *Coordinator, ctx context.Context, key string, loader func(ctx context.Context) (T, error)) TypedResult[T] {
	res := c.Resolve(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})

	out := TypedResult[T]{IsLoading: res.IsLoading, Err: res.Err, State: res.State}
	if v, ok := res.Value.(T); ok {
		out.Value = v
	}
	return out
}
