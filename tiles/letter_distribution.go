package tiles

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

//go:embed english.csv
var englishCSV string

// LetterDistribution encodes the tile distribution for the game: how
// many of each letter the full tile set contains. Grabble tiles carry
// no point values; a word's score depends only on its length.
type LetterDistribution struct {
	distribution [NumLetters]uint8
	vowels       []byte
	numLetters   uint
	Name         string
}

// ScanLetterDistribution reads a CSV of letter,quantity,vowel rows.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	ld := &LetterDistribution{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record[0]) != 1 || !ValidLetter(record[0][0]) {
			return nil, fmt.Errorf("letter distribution has a bad letter %q", record[0])
		}
		letter := record[0][0]
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		if v == 1 {
			ld.vowels = append(ld.vowels, letter)
		}
		ld.distribution[letter-'a'] = uint8(n)
		ld.numLetters += uint(n)
	}
	return ld, nil
}

// EnglishLetterDistribution returns the standard English distribution,
// 98 tiles with no blanks.
func EnglishLetterDistribution() (*LetterDistribution, error) {
	ld, err := ScanLetterDistribution(strings.NewReader(englishCSV))
	if err != nil {
		return nil, err
	}
	ld.Name = "english"
	return ld, nil
}

// Quantity returns how many tiles of the given letter the full set has.
func (ld *LetterDistribution) Quantity(letter byte) int {
	return int(ld.distribution[letter-'a'])
}

// NumTotalTiles returns the size of the full tile set.
func (ld *LetterDistribution) NumTotalTiles() int {
	return int(ld.numLetters)
}

func (ld *LetterDistribution) IsVowel(letter byte) bool {
	for _, v := range ld.vowels {
		if v == letter {
			return true
		}
	}
	return false
}

// ByFrequency returns the distribution's letters ordered from most to
// least frequent, ties broken alphabetically. This is the order in
// which upcoming tiles are best guessed at.
func (ld *LetterDistribution) ByFrequency() []byte {
	letters := make([]byte, 0, NumLetters)
	for i := 0; i < NumLetters; i++ {
		if ld.distribution[i] > 0 {
			letters = append(letters, byte('a'+i))
		}
	}
	sort.SliceStable(letters, func(i, j int) bool {
		return ld.distribution[letters[i]-'a'] > ld.distribution[letters[j]-'a']
	})
	return letters
}

// MakeBag returns a full, shuffled bag of tiles.
func (ld *LetterDistribution) MakeBag() *Bag {
	b := NewBag(ld)
	b.Shuffle()
	return b
}
