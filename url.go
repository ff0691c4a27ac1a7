package waymark

import (
	"fmt"
	"strings"
)

// A URL is the path of a location, as ordered Segments, plus its optional QueryString.
//
// The QueryString never takes part in matching a route;
// it is carried alongside so a matched route can read it.
type URL struct {
	segments []Segment
	query    *QueryString
}

// NewURL constructs a URL from segments and an optional query, which may be nil.
func NewURL(segments []Segment, query *QueryString) URL {
	return URL{segments: append([]Segment(nil), segments...), query: query}
}

// ParsePath splits path on "/", dropping blank pieces, into a URL without a query.
func ParsePath(path string) URL {
	var segs []Segment
	for _, piece := range strings.Split(path, "/") {
		if seg, err := NewSegment(piece); err == nil {
			segs = append(segs, seg)
		}
	}

	return URL{segments: segs}
}

// ParseURL parses raw, e.g., "/product/toy/123?page=2".
//
// Any fragment is dropped. An empty query is treated as no query at all.
func ParseURL(raw string) (URL, error) {
	raw, _, _ = strings.Cut(raw, "#")
	path, rawQuery, _ := strings.Cut(raw, "?")

	u := ParsePath(path)
	if strings.TrimSpace(rawQuery) == "" {
		return u, nil
	}

	q, err := ParseQuery(strings.TrimSpace(rawQuery))
	if err != nil {
		return URL{}, fmt.Errorf("parsing %q: %w", raw, err)
	}

	u.query = q
	return u, nil
}

// MustParseURL is like ParseURL but panics on error.
func MustParseURL(raw string) URL {
	u, err := ParseURL(raw)
	if err != nil {
		panic(err)
	}

	return u
}

// Segments returns a copy of the path segments of u.
func (u URL) Segments() []Segment { return append([]Segment(nil), u.segments...) }

// Len is the number of path segments in u.
func (u URL) Len() int { return len(u.segments) }

// Segment returns the i-th path segment.
func (u URL) Segment(i int) Segment { return u.segments[i] }

// Query returns the QueryString of u, or nil if u has none.
func (u URL) Query() *QueryString { return u.query }

// WithQuery returns a copy of u using q, which may be nil.
func (u URL) WithQuery(q *QueryString) URL {
	return URL{segments: u.segments, query: q}
}

// Path returns u without its query.
func (u URL) Path() URL { return URL{segments: u.segments} }

// AddToQuery returns a copy of u with key set to the string form of value
// appended to its query, creating one if u has none.
//
// AddToQuery returns ErrNotValid for a blank key or a nil value.
func (u URL) AddToQuery(key string, value any) (URL, error) {
	if strings.TrimSpace(key) == "" {
		return u, fmt.Errorf("%w: blank query key", ErrNotValid)
	}

	if value == nil {
		return u, fmt.Errorf("%w: nil value for query key %q", ErrNotValid, key)
	}

	return u.WithQuery(u.query.Add(key, fmt.Sprint(value))), nil
}

// AddToQueryIfDefined calls AddToQuery if value is not nil and otherwise returns u unaltered.
func AddToQueryIfDefined[T any](u URL, key string, value *T) (URL, error) {
	if strings.TrimSpace(key) == "" {
		return u, fmt.Errorf("%w: blank query key", ErrNotValid)
	}

	if value == nil {
		return u, nil
	}

	return u.AddToQuery(key, *value)
}

// Equal asserts whether u and other have the same segments, in the same order,
// and the same query.
func (u URL) Equal(other URL) bool {
	if len(u.segments) != len(other.segments) {
		return false
	}

	for i := range u.segments {
		if u.segments[i] != other.segments[i] {
			return false
		}
	}

	if (u.query == nil) != (other.query == nil) {
		return false
	}

	return u.query.String() == other.query.String()
}

// String formats u as "/" followed by its segments joined by "/",
// followed by "?" and the query if u has one.
func (u URL) String() string {
	strs := make([]string, len(u.segments))
	for i, seg := range u.segments {
		strs[i] = seg.v
	}

	s := "/" + strings.Join(strs, "/")
	if u.query != nil {
		s += "?" + u.query.String()
	}

	return s
}
