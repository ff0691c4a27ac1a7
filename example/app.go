package example

import (
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
	"github.com/xy-planning-network/waymark/route"
	"github.com/xy-planning-network/waymark/serve"
)

// NewApp constructs the shop, declared under base, for serving.
func NewApp(base ...waymark.Segment) (serve.App, error) {
	// URLs are generated from a navigator's segments alone, so they need no dispatcher of their own
	urls, err := NewNavigators(dispatch.DispatcherFunc(func(dispatch.Action) {}), base...)
	if err != nil {
		return serve.App{}, err
	}

	return serve.App{
		Title: "waymark shop",
		Routes: func(d dispatch.Dispatcher) ([]route.Route, error) {
			n, err := NewNavigators(d, base...)
			if err != nil {
				return nil, err
			}

			return n.Routes(), nil
		},
		Pages: NewPages(urls),
	}, nil
}
