package storage

import (
	"context"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
)

// ChallengerSource supplies the challenger definitions the registry is built
// from. Definitions must be returned in their configured order.
type ChallengerSource interface {
	ListChallengerDefinitions(ctx context.Context) ([]model.ChallengerDefinition, error)
}
