package waymark

import (
	"fmt"
	"strconv"
	"strings"
)

// A QueryEntry is one key of a QueryString with its optional value.
//
// "key", "key=" and "key=value" are three different entries:
// only the latter two have HasValue set, and only the last has a non-empty Value.
type QueryEntry struct {
	Key      string
	Value    string
	HasValue bool
}

func (e QueryEntry) String() string {
	if !e.HasValue {
		return encodeComponent(e.Key)
	}

	return encodeComponent(e.Key) + "=" + encodeComponent(e.Value)
}

// A QueryString is the ordered set of entries following the "?" of a URL.
//
// A QueryString is immutable: Add, AddKey and RemoveIfPresent return new values.
// A nil *QueryString behaves as an empty one when read.
type QueryString struct {
	entries []QueryEntry
}

// NewQueryString constructs a QueryString holding entries in the order given.
func NewQueryString(entries ...QueryEntry) *QueryString {
	return &QueryString{entries: append([]QueryEntry(nil), entries...)}
}

// ParseQuery parses raw, which must not include the leading "?".
//
// Entries are split on "&" and then on the first "=".
// Keys and values are percent-decoded; "+" is left as is.
// ParseQuery returns ErrLeadingQuestionMark if raw starts with "?"
// and ErrNotValid for malformed percent-escapes.
func ParseQuery(raw string) (*QueryString, error) {
	if strings.HasPrefix(raw, "?") {
		return nil, ErrLeadingQuestionMark
	}

	if raw == "" {
		return &QueryString{}, nil
	}

	parts := strings.Split(raw, "&")
	entries := make([]QueryEntry, 0, len(parts))
	for _, part := range parts {
		rawKey, rawVal, hasVal := strings.Cut(part, "=")
		key, err := decodeComponent(rawKey)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", rawKey, err)
		}

		e := QueryEntry{Key: key, HasValue: hasVal}
		if hasVal {
			if e.Value, err = decodeComponent(rawVal); err != nil {
				return nil, fmt.Errorf("value %q: %w", rawVal, err)
			}
		}

		entries = append(entries, e)
	}

	return &QueryString{entries: entries}, nil
}

// Add returns a new QueryString with key=value appended.
func (q *QueryString) Add(key, value string) *QueryString {
	return q.add(QueryEntry{Key: key, Value: value, HasValue: true})
}

// AddKey returns a new QueryString with key appended without a value.
func (q *QueryString) AddKey(key string) *QueryString {
	return q.add(QueryEntry{Key: key})
}

func (q *QueryString) add(e QueryEntry) *QueryString {
	entries := make([]QueryEntry, 0, q.Len()+1)
	entries = append(entries, q.Entries()...)
	return &QueryString{entries: append(entries, e)}
}

// Entries returns a copy of the entries in q.
func (q *QueryString) Entries() []QueryEntry {
	if q == nil {
		return nil
	}

	return append([]QueryEntry(nil), q.entries...)
}

// Len is the number of entries in q.
func (q *QueryString) Len() int {
	if q == nil {
		return 0
	}

	return len(q.entries)
}

// RemoveIfPresent returns a QueryString without any entries for key, compared case-insensitively.
// If there are none, q itself is returned.
func (q *QueryString) RemoveIfPresent(key string) *QueryString {
	if q == nil {
		return nil
	}

	var kept []QueryEntry
	for _, e := range q.entries {
		if !strings.EqualFold(e.Key, key) {
			kept = append(kept, e)
		}
	}

	if len(kept) == len(q.entries) {
		return q
	}

	return &QueryString{entries: kept}
}

// Values returns, in order, every entry whose key matches key case-insensitively.
func (q *QueryString) Values(key string) []QueryEntry {
	if q == nil {
		return nil
	}

	var found []QueryEntry
	for _, e := range q.entries {
		if strings.EqualFold(e.Key, key) {
			found = append(found, e)
		}
	}

	return found
}

// StringValue gets the first value for key as a Segment.
// It reports false if key is absent, has no value, or its value is blank.
func (q *QueryString) StringValue(key string) (Segment, bool) {
	vals := q.Values(key)
	if len(vals) == 0 || !vals[0].HasValue {
		return Segment{}, false
	}

	seg, err := NewSegment(vals[0].Value)
	if err != nil {
		return Segment{}, false
	}

	return seg, true
}

// IntValue gets the first value for key parsed as an int.
// It reports false wherever StringValue does or if the value is not an int.
func (q *QueryString) IntValue(key string) (int, bool) {
	seg, ok := q.StringValue(key)
	if !ok {
		return 0, false
	}

	i, err := strconv.Atoi(seg.String())
	if err != nil {
		return 0, false
	}

	return i, true
}

// String joins the percent-encoded entries of q with "&".
func (q *QueryString) String() string {
	if q == nil {
		return ""
	}

	strs := make([]string, len(q.entries))
	for i, e := range q.entries {
		strs[i] = e.String()
	}

	return strings.Join(strs, "&")
}
