package game

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/grabble/tiles"
)

// ErrBadSnapshot is returned when an imported blob cannot be decoded.
var ErrBadSnapshot = errors.New("that does not look like a saved game")

// The wire format is base64 over a small JSON object. letters and
// words are required; lex is the lexicon fingerprint in hex, and
// readers that don't know it ignore it.
type snapshot struct {
	Letters *string   `json:"letters"`
	Words   *[]string `json:"words"`
	Lex     string    `json:"lex,omitempty"`
}

// Export packs the state into a blob suitable for a URL or a note.
func (s *State) Export() (string, error) {
	letters := s.pool.TilesOn()
	words := s.words
	if words == nil {
		words = []string{}
	}
	snap := snapshot{Letters: &letters, Words: &words}
	if s.lexFingerprint != 0 {
		snap.Lex = strconv.FormatUint(s.lexFingerprint, 16)
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// ImportState rebuilds a state from an exported blob. Anything
// malformed, from the encoding down to the letters inside, returns
// ErrBadSnapshot.
func ImportState(blob string) (*State, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(blob))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if snap.Letters == nil || snap.Words == nil {
		return nil, fmt.Errorf("%w: missing letters or words", ErrBadSnapshot)
	}
	st := NewState()
	if err := st.AddLetters(*snap.Letters); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	for _, word := range *snap.Words {
		word = strings.ToLower(strings.TrimSpace(word))
		if !tiles.ValidWord(word) {
			return nil, fmt.Errorf("%w: bad word %q", ErrBadSnapshot, word)
		}
		st.words = append(st.words, word)
	}
	if snap.Lex != "" {
		fp, err := strconv.ParseUint(snap.Lex, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad lexicon fingerprint", ErrBadSnapshot)
		}
		st.lexFingerprint = fp
	}
	return st, nil
}
