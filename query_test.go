package waymark_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
)

func TestParseQuery(t *testing.T) {
	// Act
	q, err := waymark.ParseQuery("x=1&y=&z")

	// Assert
	require.Nil(t, err)
	require.Equal(t, []waymark.QueryEntry{{Key: "x", Value: "1", HasValue: true}}, q.Values("x"))
	require.Equal(t, []waymark.QueryEntry{{Key: "y", Value: "", HasValue: true}}, q.Values("y"))
	require.Equal(t, []waymark.QueryEntry{{Key: "z"}}, q.Values("z"))
	require.Equal(t, "x=1&y=&z", q.String())
}

func TestParseQueryRoundTrip(t *testing.T) {
	tcs := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"Single-Key", "preview"},
		{"Single-Blank", "preview="},
		{"Mixed", "a=1&b&c=&a=2"},
		{"Repeated-Keys", "tag=x&tag=y&tag"},
		{"Encoded", "q=hello%20world&path=%2Fhome%2Finfo"},
		{"Unreserved", "k=-_.!~*'()"},
		{"Unicode", "name=%C3%A9t%C3%A9"},
		{"Empty-Entry", "a=1&&b"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			q, err := waymark.ParseQuery(tc.raw)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.raw, q.String())
		})
	}
}

func TestParseQueryDecodes(t *testing.T) {
	// Act
	q, err := waymark.ParseQuery("q=a+b%20c&%C3%A9=%3D")

	// Assert
	require.Nil(t, err)
	require.Equal(t, "a+b c", q.Values("q")[0].Value)
	require.Equal(t, "=", q.Values("é")[0].Value)
	require.Equal(t, "q=a%2Bb%20c&%C3%A9=%3D", q.String())
}

func TestParseQueryErrors(t *testing.T) {
	// Act
	q, err := waymark.ParseQuery("?x=1")

	// Assert
	require.ErrorIs(t, err, waymark.ErrLeadingQuestionMark)
	require.ErrorIs(t, err, waymark.ErrNotValid)
	require.Nil(t, q)

	// Act
	q, err = waymark.ParseQuery("x=%zz")

	// Assert
	require.ErrorIs(t, err, waymark.ErrNotValid)
	require.Nil(t, q)
}

func TestQueryStringValues(t *testing.T) {
	// Arrange
	q, err := waymark.ParseQuery("Page=1&page=2&other")
	require.Nil(t, err)

	// Act
	vals := q.Values("PAGE")

	// Assert
	require.Len(t, vals, 2)
	require.Equal(t, "1", vals[0].Value)
	require.Equal(t, "2", vals[1].Value)
	require.Empty(t, q.Values("missing"))

	var nilQ *waymark.QueryString
	require.Empty(t, nilQ.Values("page"))
}

func TestQueryStringAdd(t *testing.T) {
	// Arrange
	q, err := waymark.ParseQuery("a=1")
	require.Nil(t, err)

	// Act
	added := q.Add("b", "two words").AddKey("c")

	// Assert
	require.Equal(t, "a=1", q.String())
	require.Equal(t, "a=1&b=two%20words&c", added.String())

	// Act
	var nilQ *waymark.QueryString
	added = nilQ.Add("x", "")

	// Assert
	require.Equal(t, "x=", added.String())
}

func TestQueryStringRemoveIfPresent(t *testing.T) {
	// Arrange
	q, err := waymark.ParseQuery("a=1&B=2&b&c")
	require.Nil(t, err)

	// Act
	removed := q.RemoveIfPresent("b")

	// Assert
	require.Equal(t, "a=1&c", removed.String())
	require.Equal(t, "a=1&B=2&b&c", q.String())

	// Act + Assert
	require.Same(t, q, q.RemoveIfPresent("missing"))
}

func TestQueryStringTypedValues(t *testing.T) {
	// Arrange
	q, err := waymark.ParseQuery("page=2&Page=9&name=%20toy%20&blank=%20&flag&bad=x1&big=99999999999999999999")
	require.Nil(t, err)

	tcs := []struct {
		name  string
		key   string
		str   string
		strOK bool
		i     int
		intOK bool
	}{
		{"First-Wins", "page", "2", true, 2, true},
		{"Trimmed", "name", "toy", true, 0, false},
		{"Blank", "blank", "", false, 0, false},
		{"No-Value", "flag", "", false, 0, false},
		{"Not-Int", "bad", "x1", true, 0, false},
		{"Overflow", "big", "99999999999999999999", true, 0, false},
		{"Missing", "missing", "", false, 0, false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			seg, strOK := q.StringValue(tc.key)
			i, intOK := q.IntValue(tc.key)

			// Assert
			require.Equal(t, tc.strOK, strOK)
			require.Equal(t, tc.str, seg.String())
			require.Equal(t, tc.intOK, intOK)
			require.Equal(t, tc.i, i)
		})
	}

	var nilQ *waymark.QueryString
	_, ok := nilQ.IntValue("page")
	require.False(t, ok)
}
