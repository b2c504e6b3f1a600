// Package xregexp provides helpers to compose and apply regexp expressions.
package xregexp

import "regexp"

// Submatches applies re to s and returns the capture groups in order,
// excluding the whole match. ok is false when s does not match.
//
// Groups that did not participate in the match are returned as empty strings.
func Submatches(re *regexp.Regexp, s string) (groups []string, ok bool) {
	matches := re.FindStringSubmatch(s)
	if matches == nil {
		return nil, false
	}
	return matches[1:], true
}
