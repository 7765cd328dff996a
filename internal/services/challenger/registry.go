package challenger

import (
	"context"
	"fmt"
	"strings"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/storage"
)

// Registry holds the playable challengers. It is built once at startup and
// is read-only afterwards, so it is safe for concurrent use without locking.
type Registry struct {
	challengers []model.Challenger
	byName      map[string]int
}

// NewRegistry validates the configured definitions and builds the registry.
// Order of defs is preserved by List.
func NewRegistry(defs []model.ChallengerDefinition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, &model.ConfigurationError{Index: -1, Reason: "no challengers configured"}
	}

	r := &Registry{
		challengers: make([]model.Challenger, 0, len(defs)),
		byName:      make(map[string]int, len(defs)),
	}

	for i, def := range defs {
		if strings.TrimSpace(def.Name) == "" {
			return nil, &model.ConfigurationError{Index: i, Reason: "name is empty"}
		}
		if first, exists := r.byName[def.Name]; exists {
			return nil, &model.ConfigurationError{
				Index:  i,
				Reason: fmt.Sprintf("duplicate name %q (first defined at entry %d)", def.Name, first),
			}
		}

		displayName := def.DisplayName
		if displayName == "" {
			displayName = def.Name
		}

		r.byName[def.Name] = len(r.challengers)
		r.challengers = append(r.challengers, model.Challenger{
			Name:        def.Name,
			DisplayName: displayName,
			Endpoint:    def.Endpoint,
		})
	}

	return r, nil
}

// Load reads definitions from source and builds the registry.
// Source failures are reported as configuration errors.
func Load(ctx context.Context, source storage.ChallengerSource) (*Registry, error) {
	defs, err := source.ListChallengerDefinitions(ctx)
	if err != nil {
		return nil, &model.ConfigurationError{Index: -1, Reason: "read challenger source", Err: err}
	}
	return NewRegistry(defs)
}

// List returns all challengers in configuration order
func (r *Registry) List() []model.Challenger {
	out := make([]model.Challenger, len(r.challengers))
	copy(out, r.challengers)
	return out
}

// Len returns the number of registered challengers
func (r *Registry) Len() int {
	return len(r.challengers)
}

// Resolve looks up a challenger by exact, case-sensitive name
func (r *Registry) Resolve(name string) (model.Challenger, error) {
	idx, ok := r.byName[name]
	if !ok {
		return model.Challenger{}, &model.UnknownChallengerError{Name: name}
	}
	return r.challengers[idx], nil
}
