package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestAddLetters(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("AbC"))
	pool := st.PoolSnapshot()
	is.Equal(pool.TilesOn(), "abc")
	is.Equal(pool.NumTiles(), 3)
}

func TestAddLettersRejectsJunk(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("ab"))
	err := st.AddLetters("c4t")
	is.True(errors.Is(err, ErrNotALetter))
	// nothing from the bad call landed
	is.Equal(st.PoolSnapshot().TilesOn(), "ab")
}

func TestDeleteLetters(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("aabc"))
	is.NoErr(st.DeleteLetters("ab"))
	is.Equal(st.PoolSnapshot().TilesOn(), "ac")
}

func TestDeleteLettersIgnoresAbsent(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("abc"))
	is.NoErr(st.DeleteLetters("xyz"))
	is.Equal(st.PoolSnapshot().TilesOn(), "abc")
}

func TestDeleteLettersRejectsJunk(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("abc"))
	err := st.DeleteLetters("a!")
	is.True(errors.Is(err, ErrNotALetter))
	is.Equal(st.PoolSnapshot().TilesOn(), "abc")
}

func TestPlayFromPool(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("catsx"))
	is.NoErr(st.Play("cat", ""))
	is.Equal(st.Words(), []string{"cat"})
	is.Equal(st.PoolSnapshot().TilesOn(), "sx")
}

func TestPlaySteal(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("catso"))
	is.NoErr(st.Play("cat", ""))
	is.NoErr(st.Play("coats", "cat"))
	is.Equal(st.Words(), []string{"coats"})
	is.True(st.PoolSnapshot().Empty())
}

func TestPlayStealKeepsOrder(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("catdogs"))
	is.NoErr(st.Play("cat", ""))
	is.NoErr(st.Play("dog", ""))
	is.NoErr(st.Play("cats", "cat"))
	// the stolen word moves to the end of the play order
	is.Equal(st.Words(), []string{"dog", "cats"})
}

func TestPlayErrors(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("catsdog"))
	is.NoErr(st.Play("cat", ""))

	testcases := []struct {
		name string
		word string
		base string
		err  error
	}{
		{"junk word", "c4t", "", ErrNotAWord},
		{"too short", "at", "", ErrWordTooShort},
		{"missing tiles", "dots", "", ErrPoolTooSmall},
		{"base not played", "dogs", "dog", ErrWordNotOnBoard},
		{"steal ignores base letters", "dogs", "cat", ErrDoesNotUseBase},
		{"steal adds nothing", "act", "cat", ErrStealTooShort},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			err := st.Play(tc.word, tc.base)
			is.True(errors.Is(err, tc.err))
		})
	}
	// none of the failed plays touched the state
	is.Equal(st.Words(), []string{"cat"})
	is.Equal(st.PoolSnapshot().TilesOn(), "dgos")
}

func TestWordsCopies(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("cat"))
	is.NoErr(st.Play("cat", ""))
	words := st.Words()
	words[0] = "dog"
	is.Equal(st.Words(), []string{"cat"})
}

func TestPoolSnapshotCopies(t *testing.T) {
	is := is.New(t)
	st := NewState()
	is.NoErr(st.AddLetters("abc"))
	pool := st.PoolSnapshot()
	pool.Take('a')
	is.Equal(st.PoolSnapshot().TilesOn(), "abc")
}
