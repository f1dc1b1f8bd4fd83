package remoteauth

import "context"

type sessionInfoContextKey struct{}

// WithSessionInfo adds resolved session info to the context.
func WithSessionInfo(ctx context.Context, info *SessionInfo) context.Context {
	return context.WithValue(ctx, sessionInfoContextKey{}, info)
}

// FromContext retrieves session info from the context.
func FromContext(ctx context.Context) (*SessionInfo, bool) {
	info, ok := ctx.Value(sessionInfoContextKey{}).(*SessionInfo)
	return info, ok
}

// UsernameFromContext retrieves the bound account name from the session info
// in context. Only provisioned sessions carry the account; rehydrated ones
// resolve their user through the session store instead.
func UsernameFromContext(ctx context.Context) (string, bool) {
	info, ok := FromContext(ctx)
	if !ok || info.User == nil {
		return "", false
	}
	return info.User.Name, true
}
