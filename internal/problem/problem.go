// Package problem turns Codeforces problem URLs into problem identifiers.
package problem

import (
	"regexp"
	"strings"
)

// urlPattern matches problemset URLs. Only indexes A through F are recognized.
var urlPattern = regexp.MustCompile(`^https://codeforces\.com/problemset/problem/(\d+)/([A-F])$`)

var idPattern = regexp.MustCompile(`^\d+[A-F]$`)

// ID identifies a problem as its contest number followed by its index, e.g. 1987C.
type ID string

// Parse extracts the problem ID from a problemset URL.
// It reports false if the input is not a recognized problem URL.
func Parse(input string) (ID, bool) {
	matches := urlPattern.FindStringSubmatch(input)
	if matches == nil {
		return "", false
	}

	return ID(matches[1] + matches[2]), true
}

// Valid reports whether id has the shape Parse produces.
func (id ID) Valid() bool {
	return idPattern.MatchString(string(id))
}

func (id ID) String() string {
	return string(id)
}

// Lower returns the ID in lower case, for names that must not contain capitals.
func (id ID) Lower() string {
	return strings.ToLower(string(id))
}
