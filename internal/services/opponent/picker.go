package opponent

import (
	"context"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
)

// Picker obtains the challenger's pick for one round. The returned value is
// untrusted: callers validate it before evaluating the round.
type Picker interface {
	Pick(ctx context.Context, challenger model.Challenger) (int, error)
}

// Mode selects how challenger picks are obtained
type Mode string

const (
	// ModeHTTP asks each challenger's endpoint for its pick
	ModeHTTP Mode = "http"
	// ModeRandom picks uniformly at random in-process
	ModeRandom Mode = "random"
)

// ValidModes returns all valid opponent modes
func ValidModes() []Mode {
	return []Mode{ModeHTTP, ModeRandom}
}
