package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
)

// Every ordered pair, written out by hand.
// Rows: player pick. Columns: challenger pick.
var expectedResults = [5][5]model.Result{
	// Rock vs Rock, Paper, Scissors, Lizard, Spock
	{model.ResultTie, model.ResultChallenger, model.ResultPlayer, model.ResultPlayer, model.ResultChallenger},
	// Paper
	{model.ResultPlayer, model.ResultTie, model.ResultChallenger, model.ResultChallenger, model.ResultPlayer},
	// Scissors
	{model.ResultChallenger, model.ResultPlayer, model.ResultTie, model.ResultPlayer, model.ResultChallenger},
	// Lizard
	{model.ResultChallenger, model.ResultPlayer, model.ResultChallenger, model.ResultTie, model.ResultPlayer},
	// Spock
	{model.ResultPlayer, model.ResultChallenger, model.ResultPlayer, model.ResultChallenger, model.ResultTie},
}

func TestEvaluate_AllPairs(t *testing.T) {
	for p := 0; p < 5; p++ {
		for c := 0; c < 5; c++ {
			t.Run(fmt.Sprintf("%s_vs_%s", model.Pick(p), model.Pick(c)), func(t *testing.T) {
				got, err := Evaluate(p, c)
				require.NoError(t, err)
				assert.Equal(t, expectedResults[p][c], got)
			})
		}
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		player     int
		challenger int
		want       model.Result
	}{
		{"rock vs rock", 0, 0, model.ResultTie},
		{"rock vs paper", 0, 1, model.ResultChallenger},
		{"rock vs scissors", 0, 2, model.ResultPlayer},
		{"rock vs lizard", 0, 3, model.ResultPlayer},
		{"rock vs spock", 0, 4, model.ResultChallenger},
		{"paper vs rock", 1, 0, model.ResultPlayer},
		{"paper vs scissors", 1, 2, model.ResultChallenger},
		{"scissors vs paper", 2, 1, model.ResultPlayer},
		{"spock vs rock", 4, 0, model.ResultPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.player, tt.challenger)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		player     int
		challenger int
		side       model.Side
	}{
		{5, 0, model.SidePlayer},
		{0, -1, model.SideChallenger},
		{100, 0, model.SidePlayer},
		{-1, 0, model.SidePlayer},
		{0, 5, model.SideChallenger},
		{0, 100, model.SideChallenger},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d", tt.player, tt.challenger), func(t *testing.T) {
			result, err := Evaluate(tt.player, tt.challenger)
			require.Error(t, err)
			assert.Empty(t, result)
			assert.ErrorIs(t, err, model.ErrInvalidPick)
			assert.True(t, model.IsInvalidArgument(err))

			var pickErr *model.InvalidPickError
			require.True(t, errors.As(err, &pickErr))
			assert.Equal(t, tt.side, pickErr.Side)
		})
	}
}

func TestEvaluate_BothInvalidReportsBoth(t *testing.T) {
	_, err := Evaluate(7, -3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid player pick 7")
	assert.Contains(t, err.Error(), "invalid challenger pick -3")
}

func TestBeatsTable_EachSymbolBeatsExactlyTwo(t *testing.T) {
	for _, a := range model.Picks() {
		wins, losses := 0, 0
		for _, b := range model.Picks() {
			if Beats(a, b) {
				wins++
			}
			if Beats(b, a) {
				losses++
			}
		}
		assert.Equal(t, 2, wins, "%s wins", a)
		assert.Equal(t, 2, losses, "%s losses", a)
	}
}

func TestBeats_OutOfDomain(t *testing.T) {
	assert.False(t, Beats(model.Pick(5), model.Rock))
	assert.False(t, Beats(model.Rock, model.Pick(-1)))
}

func TestRules(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, 10)
	assert.Equal(t, "Rock crushes Scissors", rules[0].String())

	for _, r := range rules {
		assert.True(t, Beats(r.Winner, r.Loser), r.String())
		assert.NotEmpty(t, r.Verb, r.String())
	}
}

func TestVerb(t *testing.T) {
	assert.Equal(t, "vaporizes", Verb(model.Spock, model.Rock))
	assert.Equal(t, "decapitates", Verb(model.Scissors, model.Lizard))
	assert.Empty(t, Verb(model.Rock, model.Spock))
	assert.Empty(t, Verb(model.Rock, model.Rock))
}
