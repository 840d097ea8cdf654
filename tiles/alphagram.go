// Package tiles implements the letter domain for Grabble: the shared
// letter pool, the tile distribution, and the bag the tiles are flipped
// from. Letters are plain lowercase bytes from 'a' to 'z'.
package tiles

import "sort"

// NumLetters is the number of distinct tile letters ('a' through 'z').
// Grabble has no blank tiles.
const NumLetters = 26

// ValidLetter returns true if c is a lowercase letter from a to z.
func ValidLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// ValidWord returns true if w is non-empty and contains only letters
// from a to z. Words must already be lowercased by the caller.
func ValidWord(w string) bool {
	if len(w) == 0 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if !ValidLetter(w[i]) {
			return false
		}
	}
	return true
}

// Alphagram returns the letters of w sorted alphabetically. Two words
// are anagrams of each other exactly when their alphagrams are equal,
// so the alphagram serves as the index key for anagram lookups.
func Alphagram(w string) string {
	b := []byte(w)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}
