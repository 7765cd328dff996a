package factory

import (
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/dependencies/mocks"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/challenger"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/testutil"
)

// TestChallengers are the definitions NewTestApp registers
var TestChallengers = []model.ChallengerDefinition{
	{Name: "dotnet", DisplayName: ".NET", Endpoint: "https://jsonplaceholder.typicode.com"},
	{Name: "python", DisplayName: "Python", Endpoint: "https://jsonplaceholder.typicode.com"},
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockRandom *mocks.MockRandom
	MockPicker *mocks.MockPicker
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	registry, err := challenger.NewRegistry(TestChallengers)
	if err != nil {
		panic(err)
	}

	mockRandom := mocks.NewMockRandom()
	mockPicker := mocks.NewMockPicker()

	app := newWithDependencies(registry, mockRandom, mockPicker, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockRandom: mockRandom,
		MockPicker: mockPicker,
	}
}
