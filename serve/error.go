package serve

import "errors"

var (
	ErrNoRoutes  = errors.New("no routes")
	ErrRedirects = errors.New("too many redirects")
)
