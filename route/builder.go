package route

import "github.com/xy-planning-network/waymark"

// A Builder declares a route pattern made up of fixed segments only.
//
// Builders are immutable: every method returns a new Builder
// and the receiver can keep being extended independently.
type Builder struct {
	matchers []matcher
}

// Empty is the Builder with no segments, matching only "/".
var Empty Builder

// Fixed appends a fixed segment for each of segments,
// matched case-insensitively.
//
// Fixed panics with an error wrapping [waymark.ErrNotValid] if any segment is blank.
func (b Builder) Fixed(segments ...string) Builder {
	return Builder{matchers: appendFixed(b.matchers, segments)}
}

// ToRoute freezes b into a Route calling callback whenever it matches.
func (b Builder) ToRoute(callback func()) Route {
	mustHave(callback == nil, "callback")
	return &route{
		matchers: b.matchers,
		execute:  func([]any, *waymark.QueryString) { callback() },
	}
}

// ToRouteWithQuery is like ToRoute, passing the matched URL's query, possibly nil, to callback.
func (b Builder) ToRouteWithQuery(callback func(*waymark.QueryString)) Route {
	mustHave(callback == nil, "callback")
	return &route{
		matchers: b.matchers,
		execute:  func(_ []any, q *waymark.QueryString) { callback(q) },
	}
}

// A Vars declares a route pattern with at least one variable segment.
// The values parsed from its variable segments are folded, left to right, into a T.
//
// Vars are immutable, like Builder.
type Vars[T any] struct {
	matchers []matcher
	vars     int
	build    func(vals []any) T
}

// Fixed appends a fixed segment for each of segments,
// leaving the accumulated value type unchanged.
//
// Fixed panics with an error wrapping [waymark.ErrNotValid] if any segment is blank.
func (b Vars[T]) Fixed(segments ...string) Vars[T] {
	return Vars[T]{
		matchers: appendFixed(b.matchers, segments),
		vars:     b.vars,
		build:    b.build,
	}
}

// ToRoute freezes b into a Route calling callback with the folded value whenever it matches.
func (b Vars[T]) ToRoute(callback func(T)) Route {
	mustHave(callback == nil, "callback")
	mustHave(b.build == nil, "builder")
	build := b.build
	return &route{
		matchers: b.matchers,
		execute:  func(vals []any, _ *waymark.QueryString) { callback(build(vals)) },
	}
}

// ToRouteWithQuery is like ToRoute, passing the matched URL's query, possibly nil, to callback.
func (b Vars[T]) ToRouteWithQuery(callback func(T, *waymark.QueryString)) Route {
	mustHave(callback == nil, "callback")
	mustHave(b.build == nil, "builder")
	build := b.build
	return &route{
		matchers: b.matchers,
		execute:  func(vals []any, q *waymark.QueryString) { callback(build(vals), q) },
	}
}

// Variable appends the first variable segment to b.
// A matching segment is parsed with parse and its value projected into an R.
//
// Variable panics with an error wrapping [waymark.ErrMissingData] if project or parse is nil.
func Variable[T, R any](b Builder, project func(T) R, parse Parser[T]) Vars[R] {
	mustHave(project == nil, "projection")
	mustHave(parse == nil, "parser")
	return Vars[R]{
		matchers: appendVariable(b.matchers, parse),
		vars:     1,
		build:    func(vals []any) R { return project(vals[0].(T)) },
	}
}

// Extend appends another variable segment to b.
// A matching segment is parsed with parse and its value folded,
// with the value accumulated from every earlier variable segment, into an R.
//
// Extend panics with an error wrapping [waymark.ErrMissingData] if extend or parse is nil.
func Extend[P, T, R any](b Vars[P], extend func(P, T) R, parse Parser[T]) Vars[R] {
	mustHave(extend == nil, "extender")
	mustHave(parse == nil, "parser")
	mustHave(b.build == nil, "builder")

	n, prev := b.vars, b.build
	return Vars[R]{
		matchers: appendVariable(b.matchers, parse),
		vars:     n + 1,
		build:    func(vals []any) R { return extend(prev(vals[:n]), vals[n].(T)) },
	}
}
