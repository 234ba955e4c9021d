package api

import (
	"net/url"
	"strings"
)

// ParseShareID extracts a shared recipe's id from a share URL or a raw id.
// URLs carry the id as an `id=` query parameter; the value runs to the next
// `&` or the end of the string and may be percent-encoded. Raw ids pass
// through unchanged.
//
// PathUnescape rather than QueryUnescape: the ids are base64-flavored, so a
// literal `+` is part of the id and must not decode to a space.
func ParseShareID(shareURLOrID string) string {
	s := strings.TrimSpace(shareURLOrID)
	if i := strings.LastIndex(s, "id="); i >= 0 {
		s = s[i+len("id="):]
		if j := strings.Index(s, "&"); j >= 0 {
			s = s[:j]
		}
	}
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
