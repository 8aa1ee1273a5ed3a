package backend

import "context"

type accessTokenKey struct{}

// WithAccessToken returns a context carrying the upstream bearer token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessToken extracts the upstream bearer token from ctx.
func AccessToken(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(accessTokenKey{}).(string)
	return tok, ok && tok != ""
}
