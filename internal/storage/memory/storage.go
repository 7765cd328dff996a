package memory

import (
	"context"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/storage"
)

// Storage is an in-memory challenger source. Its definitions are fixed at
// construction.
type Storage struct {
	definitions []model.ChallengerDefinition
}

// New creates a new in-memory source holding the given definitions
func New(defs ...model.ChallengerDefinition) *Storage {
	s := &Storage{}
	s.definitions = append(s.definitions, defs...)
	return s
}

// Ensure Storage implements the interface
var _ storage.ChallengerSource = (*Storage)(nil)

func (s *Storage) ListChallengerDefinitions(ctx context.Context) ([]model.ChallengerDefinition, error) {
	out := make([]model.ChallengerDefinition, len(s.definitions))
	copy(out, s.definitions)
	return out, nil
}
