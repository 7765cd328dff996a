package file

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/storage"
)

// Document is the YAML layout of a challengers file:
//
//	challengers:
//	  - name: dotnet
//	    display_name: .NET
//	    endpoint: http://dotnet-player
type Document struct {
	Challengers []model.ChallengerDefinition `yaml:"challengers"`
}

// Storage reads challenger definitions from a YAML file
type Storage struct {
	path string
}

// New creates a file source for the given path. The file is read on each
// call to ListChallengerDefinitions.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Ensure Storage implements the interface
var _ storage.ChallengerSource = (*Storage)(nil)

func (s *Storage) ListChallengerDefinitions(ctx context.Context) ([]model.ChallengerDefinition, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("load challengers %q: %w", s.path, err)
	}
	return Parse(data)
}

// Parse decodes a challengers document
func Parse(data []byte) ([]model.ChallengerDefinition, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse challengers: %w", err)
	}
	return doc.Challengers, nil
}
