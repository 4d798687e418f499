// Package requestid carries the per-request correlation id through a context.
package requestid

import "context"

// Header is the HTTP header used to propagate the id.
const Header = "X-Request-ID"

type key struct{}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key{}, id)
}

// From returns the id stored by With, or "" if none.
func From(ctx context.Context) string {
	id, _ := ctx.Value(key{}).(string)
	return id
}
