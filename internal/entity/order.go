package entity

import (
	"cmp"
	"slices"
	"strings"
)

// token is one maximal run of ASCII digits or non-digits.
type token struct {
	digits bool
	text   string
}

func tokenize(s string) []token {
	var out []token
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[start]) {
			out = append(out, token{digits: isDigit(s[start]), text: s[start:i]})
			start = i
		}
	}
	return out
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// compareNumeric compares two digit runs by value without parsing, so runs
// longer than any integer type still order correctly.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	return strings.Compare(a, b)
}

func compareTokens(a, b token) int {
	switch {
	case a.digits && b.digits:
		return compareNumeric(a.text, b.text)
	case a.digits:
		return -1
	case b.digits:
		return 1
	}
	return strings.Compare(strings.ToLower(a.text), strings.ToLower(b.text))
}

// ComparePaths orders paths naturally: digit runs by numeric value, text
// runs case-insensitively, numbers before text when the kinds differ, and a
// shorter run sequence before a longer one sharing its prefix. Paths that
// tie on all runs fall back to byte order, so the order is total.
func ComparePaths(a, b string) int {
	ta, tb := tokenize(a), tokenize(b)
	for i := 0; i < len(ta) && i < len(tb); i++ {
		if c := compareTokens(ta[i], tb[i]); c != 0 {
			return c
		}
	}
	if len(ta) != len(tb) {
		return cmp.Compare(len(ta), len(tb))
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b in natural path order.
func Less(a, b Entity) bool {
	return ComparePaths(a.Path(), b.Path()) < 0
}

// Sort orders entities naturally by path.
func Sort(entities []Entity) {
	slices.SortStableFunc(entities, func(a, b Entity) int {
		return ComparePaths(a.Path(), b.Path())
	})
}
