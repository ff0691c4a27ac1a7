package router

import (
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
)

// InvalidRouteKind is the Kind of InvalidRoute.
const InvalidRouteKind dispatch.Kind = "InvalidRoute"

// An InvalidRoute is dispatched for a navigation no route matched.
type InvalidRoute struct {
	URL waymark.URL
}

func (InvalidRoute) Kind() dispatch.Kind { return InvalidRouteKind }
