package api

import (
	"regexp"
	"strings"
)

// Join codes use a reduced uppercase alphabet that avoids ambiguous
// characters (no I, L, O, 0, 1).
var joinCodeRegex = regexp.MustCompile(`^[A-HJKMNP-Z2-9]{6}$`)

// normalizeJoinCode uppercases and trims a client-supplied match code and
// reports whether it is well formed.
func normalizeJoinCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !joinCodeRegex.MatchString(code) {
		return "", false
	}
	return code, true
}
