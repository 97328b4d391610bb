// Package callerctx carries the authenticated caller principal through the
// request context. The principal is established by the transport layer; domain
// services still receive it as an explicit request field.
package callerctx

import "context"

type keyType string

const (
	CallerKey keyType = "caller_account_id"
)

func WithCaller(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, CallerKey, accountID)
}

func Caller(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CallerKey).(string)
	return id, ok
}
