package route

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xy-planning-network/waymark"
)

// A Parser extracts a value from one path segment,
// reporting false if the segment cannot be parsed.
//
// A Parser must be deterministic and free of side effects:
// it runs once per segment for every URL a route is tested against,
// whether or not the route as a whole goes on to match.
type Parser[T any] func(seg waymark.Segment) (T, bool)

// ParseInt parses a segment made up of an optional sign and decimal digits only.
// Values overflowing an int are rejected.
func ParseInt(seg waymark.Segment) (int, bool) {
	i, err := strconv.Atoi(seg.String())
	if err != nil {
		return 0, false
	}

	return i, true
}

// ParseString accepts any segment as its own string content.
func ParseString(seg waymark.Segment) (string, bool) { return seg.String(), true }

// A matcher is one position in a route pattern.
// It is fixed unless parse is set.
type matcher struct {
	fixed waymark.Segment
	parse func(waymark.Segment) (any, bool)
}

func (m matcher) isVariable() bool { return m.parse != nil }

// matchFixed compares pattern and candidate case-insensitively.
func matchFixed(pattern, candidate waymark.Segment) bool {
	return strings.EqualFold(pattern.String(), candidate.String())
}

func (m matcher) String() string {
	if m.isVariable() {
		return "{}"
	}

	return m.fixed.String()
}

// appendFixed copies ms and adds a fixed matcher for each of segments.
// appendFixed panics if any segment is blank.
func appendFixed(ms []matcher, segments []string) []matcher {
	out := make([]matcher, len(ms), len(ms)+len(segments))
	copy(out, ms)
	for _, s := range segments {
		seg, err := waymark.NewSegment(s)
		if err != nil {
			panic(fmt.Errorf("route: fixed segment: %w", err))
		}

		out = append(out, matcher{fixed: seg})
	}

	return out
}

// appendVariable copies ms and adds a variable matcher running parse.
func appendVariable[T any](ms []matcher, parse Parser[T]) []matcher {
	out := make([]matcher, len(ms), len(ms)+1)
	copy(out, ms)
	return append(out, matcher{parse: func(seg waymark.Segment) (any, bool) {
		v, ok := parse(seg)
		return v, ok
	}})
}

func mustHave(isNil bool, what string) {
	if isNil {
		panic(fmt.Errorf("route: %w: nil %s", waymark.ErrMissingData, what))
	}
}
