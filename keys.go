package waymark

import "context"

// A Key stashes a value in a context.Context.
type Key string

const (
	// IPAddrKey stashes the address a request to a server host originated from.
	IPAddrKey Key = "IPAddrKey"

	// NavigationIDKey stashes a unique UUID for each navigation resolved by a server host.
	NavigationIDKey Key = "NavigationIDKey"

	// URLKey stashes the URL a server host is resolving.
	URLKey Key = "URLKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "waymark context key: " + string(k)
}

// NewURLContext stashes u in ctx, returning the resulting context.
func NewURLContext(ctx context.Context, u URL) context.Context {
	return context.WithValue(ctx, URLKey, u)
}

// URLFromContext retrieves the URL stashed in ctx by NewURLContext.
func URLFromContext(ctx context.Context) (URL, bool) {
	u, ok := ctx.Value(URLKey).(URL)
	return u, ok
}

// NavigationIDFromContext retrieves the navigation ID stashed in ctx, if any.
func NavigationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(NavigationIDKey).(string)
	return id
}
