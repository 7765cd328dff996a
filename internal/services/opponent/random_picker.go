package opponent

import (
	"context"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/dependencies/random"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
)

// RandomPicker picks a uniformly random symbol for any challenger
type RandomPicker struct {
	random random.Random
}

// NewRandomPicker creates a new RandomPicker
func NewRandomPicker(rnd random.Random) *RandomPicker {
	return &RandomPicker{random: rnd}
}

// Pick returns a random code in [0,4]
func (p *RandomPicker) Pick(ctx context.Context, _ model.Challenger) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return p.random.Intn(model.PickCount), nil
}
