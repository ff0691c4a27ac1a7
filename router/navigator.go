package router

import (
	"fmt"

	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/dispatch"
	"github.com/xy-planning-network/waymark/route"
)

// A Navigator declares routes, under its parent segments, along with the Action each dispatches.
//
// Routes are declared while constructing an application's navigators.
// Once declared, a Navigator may be read from any number of goroutines,
// but it is not safe to declare routes concurrently.
type Navigator struct {
	d       dispatch.Dispatcher
	parents []waymark.Segment
	routes  []route.Route
}

// NewNavigator constructs a *Navigator dispatching through d
// whose routes are all prefixed with parents.
func NewNavigator(d dispatch.Dispatcher, parents ...string) (*Navigator, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil dispatcher", waymark.ErrMissingData)
	}

	segs, err := waymark.NewSegments(parents...)
	if err != nil {
		return nil, fmt.Errorf("%w: parents %q", err, parents)
	}

	return &Navigator{d: d, parents: segs}, nil
}

// Parents returns a copy of the segments prefixing n's routes.
func (n *Navigator) Parents() []waymark.Segment {
	return append([]waymark.Segment(nil), n.parents...)
}

// AddRelativeRoute declares the route b, prefixed by n's parents, dispatching action when it matches.
// gen, the generator of URLs matching b, is returned unaltered.
//
// AddRelativeRoute panics with an error wrapping [waymark.ErrMissingData] if action or gen is nil.
func (n *Navigator) AddRelativeRoute(b route.Builder, action dispatch.Action, gen func() waymark.URL) func() waymark.URL {
	mustHave(action == nil, "action")
	mustHave(gen == nil, "URL generator")
	n.add(b.ToRoute(func() { n.d.Dispatch(action) }))
	return gen
}

// AddRelativeRouteWithQuery is like AddRelativeRoute, dispatching the Action actionFor
// returns for the matched URL's query, possibly nil.
func (n *Navigator) AddRelativeRouteWithQuery(
	b route.Builder,
	actionFor func(*waymark.QueryString) dispatch.Action,
	gen func() waymark.URL,
) func() waymark.URL {
	mustHave(actionFor == nil, "action generator")
	mustHave(gen == nil, "URL generator")
	n.add(b.ToRouteWithQuery(func(q *waymark.QueryString) { n.d.Dispatch(actionFor(q)) }))
	return gen
}

// AddVariableRoute declares the route b on n, dispatching the Action actionFor returns
// for the values matched.
// gen, the generator of URLs matching b, is returned unaltered;
// its parameter and b share the type T.
//
// AddVariableRoute panics with an error wrapping [waymark.ErrMissingData] if actionFor or gen is nil.
func AddVariableRoute[T any](
	n *Navigator,
	b route.Vars[T],
	actionFor func(T) dispatch.Action,
	gen func(T) waymark.URL,
) func(T) waymark.URL {
	mustHave(actionFor == nil, "action generator")
	mustHave(gen == nil, "URL generator")
	n.add(b.ToRoute(func(v T) { n.d.Dispatch(actionFor(v)) }))
	return gen
}

// AddVariableRouteWithQuery is like AddVariableRoute, also passing the matched URL's query,
// possibly nil, to actionFor.
func AddVariableRouteWithQuery[T any](
	n *Navigator,
	b route.Vars[T],
	actionFor func(T, *waymark.QueryString) dispatch.Action,
	gen func(T) waymark.URL,
) func(T) waymark.URL {
	mustHave(actionFor == nil, "action generator")
	mustHave(gen == nil, "URL generator")
	n.add(b.ToRouteWithQuery(func(v T, q *waymark.QueryString) { n.d.Dispatch(actionFor(v, q)) }))
	return gen
}

// GetPath constructs the URL made of n's parents followed by values,
// each formatted as by fmt.Sprint.
//
// GetPath returns an error wrapping [waymark.ErrMissingData] for a nil value
// and [waymark.ErrNotValid] for a value formatting as blank.
func (n *Navigator) GetPath(values ...any) (waymark.URL, error) {
	segs := make([]waymark.Segment, 0, len(n.parents)+len(values))
	segs = append(segs, n.parents...)
	for i, v := range values {
		if v == nil {
			return waymark.URL{}, fmt.Errorf("%w: value %d", waymark.ErrMissingData, i)
		}

		seg, err := waymark.NewSegment(fmt.Sprint(v))
		if err != nil {
			return waymark.URL{}, fmt.Errorf("%w: value %d", err, i)
		}

		segs = append(segs, seg)
	}

	return waymark.NewURL(segs, nil), nil
}

// MustGetPath is like GetPath but panics on error.
func (n *Navigator) MustGetPath(values ...any) waymark.URL {
	u, err := n.GetPath(values...)
	if err != nil {
		panic(err)
	}

	return u
}

// PullInRoutesFrom appends every route declared on, or pulled into, child to n's routes,
// prefixed by n's parents just as n's own routes are.
//
// PullInRoutesFrom panics with an error wrapping [waymark.ErrMissingData] if child is nil.
func (n *Navigator) PullInRoutesFrom(child *Navigator) {
	mustHave(child == nil, "child navigator")
	for _, r := range child.routes {
		n.add(r)
	}
}

// Routes returns a copy of n's routes in the order they were declared.
func (n *Navigator) Routes() []route.Route {
	return append([]route.Route(nil), n.routes...)
}

func (n *Navigator) add(r route.Route) {
	n.routes = append(n.routes, r.MakeRelativeTo(n.parents))
}

func mustHave(isNil bool, what string) {
	if isNil {
		panic(fmt.Errorf("router: %w: nil %s", waymark.ErrMissingData, what))
	}
}
