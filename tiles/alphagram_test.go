package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestAlphagram(t *testing.T) {
	is := is.New(t)
	type testcase struct {
		word string
		alph string
	}
	cases := []testcase{
		{"cat", "act"},
		{"act", "act"},
		{"banana", "aaabnn"},
		{"zymurgy", "gmruyyz"},
		{"a", "a"},
		{"", ""},
	}
	for _, tc := range cases {
		is.Equal(Alphagram(tc.word), tc.alph)
	}
}

func TestValidWord(t *testing.T) {
	is := is.New(t)
	is.True(ValidWord("cat"))
	is.True(ValidWord("a"))
	is.True(!ValidWord(""))
	is.True(!ValidWord("CAT"))
	is.True(!ValidWord("it's"))
	is.True(!ValidWord("naïve"))
	is.True(!ValidWord("two words"))
}
