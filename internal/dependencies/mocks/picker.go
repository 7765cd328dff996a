package mocks

import (
	"context"
	"sync"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
)

// MockPicker returns queued challenger picks
type MockPicker struct {
	mu sync.Mutex

	// Picks is a queue of values to return from Pick
	Picks     []int
	pickIndex int

	// Err, when set, is returned from every call
	Err error

	// Challengers records the challenger passed to each call
	Challengers []model.Challenger

	// gate, when set, holds every call until it is closed or the call's
	// context ends
	gate chan struct{}
}

// NewMockPicker creates a MockPicker with the given queued picks
func NewMockPicker(picks ...int) *MockPicker {
	return &MockPicker{Picks: picks}
}

// Pick returns the next queued value, or 0 if none remaining
func (p *MockPicker) Pick(ctx context.Context, challenger model.Challenger) (int, error) {
	p.mu.Lock()
	p.Challengers = append(p.Challengers, challenger)
	gate := p.gate
	p.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return 0, p.Err
	}
	if p.pickIndex >= len(p.Picks) {
		return 0, nil
	}
	v := p.Picks[p.pickIndex]
	p.pickIndex++
	return v, nil
}

// QueuePicks adds values to the pick queue
func (p *MockPicker) QueuePicks(values ...int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Picks = append(p.Picks, values...)
}

// CallCount returns how many times Pick was called
func (p *MockPicker) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Challengers)
}

// SetErr makes every subsequent call fail with err
func (p *MockPicker) SetErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Err = err
}

// Hold makes calls block until the returned release func is called
func (p *MockPicker) Hold() (release func()) {
	gate := make(chan struct{})
	p.mu.Lock()
	p.gate = gate
	p.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}
