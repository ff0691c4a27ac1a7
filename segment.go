package waymark

import (
	"fmt"
	"strings"
)

// A Segment is one non-blank, trimmed component of a URL path.
//
// The zero value is not a valid Segment; construct one with NewSegment or MustSegment.
type Segment struct {
	v string
}

// NewSegment trims s and wraps it in a Segment.
// NewSegment returns ErrNotValid if nothing remains after trimming.
func NewSegment(s string) (Segment, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Segment{}, fmt.Errorf("%w: blank segment %q", ErrNotValid, s)
	}

	return Segment{v: trimmed}, nil
}

// MustSegment is like NewSegment but panics if s is blank.
func MustSegment(s string) Segment {
	seg, err := NewSegment(s)
	if err != nil {
		panic(err)
	}

	return seg
}

// NewSegments validates each of raw in order, stopping at the first blank value.
func NewSegments(raw ...string) ([]Segment, error) {
	segs := make([]Segment, 0, len(raw))
	for _, s := range raw {
		seg, err := NewSegment(s)
		if err != nil {
			return nil, err
		}

		segs = append(segs, seg)
	}

	return segs, nil
}

// IsZero asserts whether seg was never constructed.
func (seg Segment) IsZero() bool { return seg.v == "" }

func (seg Segment) String() string { return seg.v }
