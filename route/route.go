package route

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/waymark"
)

// A Route tests URLs against a pattern of fixed and variable segments.
type Route interface {
	// ExecuteCallbackIfURLMatches calls the route's callback and returns true
	// if, and only if, u has exactly as many segments as the pattern
	// and each segment matches its position.
	// Nothing is called when u does not match.
	ExecuteCallbackIfURLMatches(u waymark.URL) bool

	// MakeRelativeTo returns a Route whose pattern is parents, as fixed segments,
	// followed by this route's pattern.
	// With no parents, the Route itself is returned.
	MakeRelativeTo(parents []waymark.Segment) Route

	// String renders the pattern, with "{}" standing in for variable segments.
	String() string
}

type route struct {
	matchers []matcher
	execute  func(vals []any, q *waymark.QueryString)
}

func (r *route) ExecuteCallbackIfURLMatches(u waymark.URL) bool {
	if u.Len() != len(r.matchers) {
		return false
	}

	var vals []any
	for i, m := range r.matchers {
		seg := u.Segment(i)
		if !m.isVariable() {
			if !matchFixed(m.fixed, seg) {
				return false
			}

			continue
		}

		v, ok := m.parse(seg)
		if !ok {
			return false
		}

		vals = append(vals, v)
	}

	r.execute(vals, u.Query())
	return true
}

func (r *route) MakeRelativeTo(parents []waymark.Segment) Route {
	if len(parents) == 0 {
		return r
	}

	ms := make([]matcher, 0, len(parents)+len(r.matchers))
	for _, p := range parents {
		if p.IsZero() {
			panic(fmt.Errorf("route: %w: zero parent segment", waymark.ErrNotValid))
		}

		ms = append(ms, matcher{fixed: p})
	}

	return &route{matchers: append(ms, r.matchers...), execute: r.execute}
}

func (r *route) String() string {
	strs := make([]string, len(r.matchers))
	for i, m := range r.matchers {
		strs[i] = m.String()
	}

	return "/" + strings.Join(strs, "/")
}
