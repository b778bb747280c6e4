// Package nicestring checks whether strings are "nice".
//
// A string is nice when at least two of these hold:
//   - it contains none of the substrings "bu", "ba" and "be"
//   - it contains at least three vowels (a, e, i, o, u)
//   - it contains a letter repeated twice in a row
package nicestring

import "strings"

var badSubstrings = []string{"bu", "ba", "be"}

// IsNice reports whether s satisfies at least two of the niceness conditions.
func IsNice(s string) bool {
	noBad := NoBadSubstring(s)
	vowels := HasThreeVowels(s)
	if noBad == vowels {
		return noBad
	}
	return HasDoubleLetter(s)
}

func NoBadSubstring(s string) bool {
	for _, bad := range badSubstrings {
		if strings.Contains(s, bad) {
			return false
		}
	}
	return true
}

func HasThreeVowels(s string) bool {
	count := 0
	for _, r := range s {
		if strings.ContainsRune("aeiou", r) {
			count++
		}
	}
	return count >= 3
}

func HasDoubleLetter(s string) bool {
	var prev rune
	for i, r := range []rune(s) {
		if i > 0 && r == prev {
			return true
		}
		prev = r
	}
	return false
}
