package tiles

import (
	"fmt"

	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles! In Grabble all drawn tiles are face up in
// the pool, so the bag only tracks what has not been flipped yet.
type Bag struct {
	tiles []byte
	ld    *LetterDistribution
	rng   *frand.RNG
}

// NewBag creates a full, unshuffled bag from a letter distribution.
func NewBag(ld *LetterDistribution) *Bag {
	tiles := make([]byte, 0, ld.NumTotalTiles())
	for i := 0; i < NumLetters; i++ {
		letter := byte('a' + i)
		for j := 0; j < ld.Quantity(letter); j++ {
			tiles = append(tiles, letter)
		}
	}
	return &Bag{tiles: tiles, ld: ld, rng: frand.New()}
}

// SetRandomizer replaces the bag's randomness source. Pass a seeded RNG
// for reproducible games.
func (b *Bag) SetRandomizer(rng *frand.RNG) {
	b.rng = rng
}

// Shuffle shuffles the bag.
func (b *Bag) Shuffle() {
	b.rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws n tiles from the bag.
func (b *Bag) Draw(n int) ([]byte, error) {
	if n > len(b.tiles) {
		return nil, fmt.Errorf("tried to draw %v tiles, tile bag has %v",
			n, len(b.tiles))
	}
	drawn := make([]byte, n)
	copy(drawn, b.tiles[:n])
	b.tiles = b.tiles[n:]
	return drawn, nil
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if
// there are fewer tiles than n, and even draw no tiles at all :o
func (b *Bag) DrawAtMost(n int) []byte {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn, _ := b.Draw(n)
	return drawn
}

// RemoveTiles takes specific letters out of the bag, for syncing the
// bag with tiles that are already visible in the pool or on the board.
func (b *Bag) RemoveTiles(letters string) error {
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if !ValidLetter(c) {
			return fmt.Errorf("cannot remove %q from the bag", c)
		}
		found := -1
		for j, t := range b.tiles {
			if t == c {
				found = j
				break
			}
		}
		if found == -1 {
			return fmt.Errorf("tile %q is not in the bag", c)
		}
		b.tiles = append(b.tiles[:found], b.tiles[found+1:]...)
	}
	return nil
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Peek returns a copy of the undrawn tiles.
func (b *Bag) Peek() []byte {
	tiles := make([]byte, len(b.tiles))
	copy(tiles, b.tiles)
	return tiles
}

func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.ld
}
