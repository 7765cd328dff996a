package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Pick is one of the five game symbols, encoded 0-4
type Pick int

const (
	Rock Pick = iota
	Paper
	Scissors
	Lizard
	Spock
)

// Bounds of the legal pick domain
const (
	MinPick = int(Rock)
	MaxPick = int(Spock)
)

// PickCount is the number of symbols in the game
const PickCount = MaxPick + 1

var pickNames = [PickCount]string{"Rock", "Paper", "Scissors", "Lizard", "Spock"}

// Side identifies who supplied a pick
type Side string

const (
	SidePlayer     Side = "player"
	SideChallenger Side = "challenger"
)

// Valid reports whether p lies in the legal domain
func (p Pick) Valid() bool {
	return int(p) >= MinPick && int(p) <= MaxPick
}

// String returns the symbol name, or the raw code for out-of-range values
func (p Pick) String() string {
	if !p.Valid() {
		return strconv.Itoa(int(p))
	}
	return pickNames[p]
}

// Picks returns all five symbols in code order
func Picks() []Pick {
	return []Pick{Rock, Paper, Scissors, Lizard, Spock}
}

// PickFromInt converts a raw integer at a boundary, rejecting values
// outside [0,4] with an InvalidPickError for the given side.
func PickFromInt(side Side, value int) (Pick, error) {
	if value < MinPick || value > MaxPick {
		return 0, &InvalidPickError{Side: side, Value: value}
	}
	return Pick(value), nil
}

// ParsePick accepts a symbol name (case-insensitive) or its numeric code
func ParsePick(s string) (Pick, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return PickFromInt(SidePlayer, n)
	}
	for i, name := range pickNames {
		if strings.EqualFold(s, name) {
			return Pick(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unrecognised symbol %q", ErrInvalidPick, s)
}
