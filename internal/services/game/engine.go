package game

import (
	"errors"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
)

// beats[a][b] is true when a defeats b. Each row has exactly two true
// entries, the diagonal is false, and beats[a][b] and beats[b][a] are never
// both true.
var beats = [model.PickCount][model.PickCount]bool{
	//               Rock   Paper  Scissors Lizard Spock
	model.Rock:     {false, false, true, true, false},
	model.Paper:    {true, false, false, false, true},
	model.Scissors: {false, true, false, true, false},
	model.Lizard:   {false, true, false, false, true},
	model.Spock:    {true, false, true, false, false},
}

var verbs = map[[2]model.Pick]string{
	{model.Rock, model.Scissors}:   "crushes",
	{model.Rock, model.Lizard}:     "crushes",
	{model.Paper, model.Rock}:      "covers",
	{model.Paper, model.Spock}:     "disproves",
	{model.Scissors, model.Paper}:  "cuts",
	{model.Scissors, model.Lizard}: "decapitates",
	{model.Lizard, model.Paper}:    "eats",
	{model.Lizard, model.Spock}:    "poisons",
	{model.Spock, model.Rock}:      "vaporizes",
	{model.Spock, model.Scissors}:  "smashes",
}

// Rule is one winning pairing
type Rule struct {
	Winner model.Pick
	Loser  model.Pick
	Verb   string
}

// String renders the rule as "Rock crushes Scissors"
func (r Rule) String() string {
	return r.Winner.String() + " " + r.Verb + " " + r.Loser.String()
}

// Beats reports whether a defeats b. Picks outside the domain never win.
func Beats(a, b model.Pick) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return beats[a][b]
}

// Verb returns the rule text for winner over loser, or "" if winner does not
// beat loser
func Verb(winner, loser model.Pick) string {
	if !Beats(winner, loser) {
		return ""
	}
	return verbs[[2]model.Pick{winner, loser}]
}

// Rules lists every winning pairing, ordered by winner then loser
func Rules() []Rule {
	rules := make([]Rule, 0, len(verbs))
	for _, a := range model.Picks() {
		for _, b := range model.Picks() {
			if beats[a][b] {
				rules = append(rules, Rule{Winner: a, Loser: b, Verb: verbs[[2]model.Pick{a, b}]})
			}
		}
	}
	return rules
}

// ValidatePick converts a raw pick, naming the side on failure
func ValidatePick(side model.Side, value int) (model.Pick, error) {
	return model.PickFromInt(side, value)
}

// Evaluate decides a round. Both picks are validated before any outcome
// logic runs; when both are invalid the returned error carries both.
func Evaluate(playerPick, challengerPick int) (model.Result, error) {
	player, playerErr := ValidatePick(model.SidePlayer, playerPick)
	challenger, challengerErr := ValidatePick(model.SideChallenger, challengerPick)
	if err := errors.Join(playerErr, challengerErr); err != nil {
		return "", err
	}

	return resolve(player, challenger), nil
}

func resolve(player, challenger model.Pick) model.Result {
	switch {
	case player == challenger:
		return model.ResultTie
	case beats[player][challenger]:
		return model.ResultPlayer
	default:
		return model.ResultChallenger
	}
}
