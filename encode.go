package waymark

import (
	"fmt"
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// encodeComponent percent-encodes s the way a browser's encodeURIComponent does:
// everything but ASCII letters, digits and - _ . ! ~ * ' ( ) is escaped as UTF-8 bytes.
func encodeComponent(s string) string {
	var n int
	for i := 0; i < len(s); i++ {
		if !unreservedComponent(s[i]) {
			n++
		}
	}

	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedComponent(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

// decodeComponent reverses encodeComponent.
// A "+" stays a "+"; only %XX escapes are decoded.
func decodeComponent(s string) (string, error) {
	dec, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotValid, err)
	}

	return dec, nil
}

func unreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}

	return false
}
