package game

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestExportImportRoundtrip(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("catsdog"))
	is.NoErr(st.Play("cat", ""))
	st.SetLexiconFingerprint(0xdeadbeef)

	blob, err := st.Export()
	is.NoErr(err)
	back, err := ImportState(blob)
	is.NoErr(err)
	is.Equal(back.Words(), st.Words())
	is.Equal(back.PoolSnapshot().TilesOn(), st.PoolSnapshot().TilesOn())
	is.Equal(back.LexiconFingerprint(), uint64(0xdeadbeef))
}

func TestExportEmptyState(t *testing.T) {
	is := is.New(t)
	blob, err := NewState().Export()
	is.NoErr(err)
	back, err := ImportState(blob)
	is.NoErr(err)
	is.Equal(back.NumWords(), 0)
	is.True(back.PoolSnapshot().Empty())
}

func TestImportPlainBlob(t *testing.T) {
	is := is.New(t)
	// No lex field, the shape older exports produced.
	blob := base64.StdEncoding.EncodeToString(
		[]byte(`{"letters": "aet", "words": ["cat"]}`))
	st, err := ImportState(blob)
	is.NoErr(err)
	is.Equal(st.Words(), []string{"cat"})
	is.Equal(st.PoolSnapshot().TilesOn(), "aet")
	is.Equal(st.LexiconFingerprint(), uint64(0))
}

func TestImportBadBlobs(t *testing.T) {
	encode := func(s string) string {
		return base64.StdEncoding.EncodeToString([]byte(s))
	}
	testcases := []struct {
		name string
		blob string
	}{
		{"not base64", "???this is not base64???"},
		{"not json", encode("hello there")},
		{"missing words", encode(`{"letters": "abc"}`)},
		{"missing letters", encode(`{"words": ["cat"]}`)},
		{"junk letters", encode(`{"letters": "a1", "words": []}`)},
		{"junk word", encode(`{"letters": "", "words": ["c4t"]}`)},
		{"junk fingerprint", encode(`{"letters": "", "words": [], "lex": "zzz"}`)},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			_, err := ImportState(tc.blob)
			is.True(errors.Is(err, ErrBadSnapshot))
		})
	}
}
