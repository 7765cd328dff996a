package response

import (
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/game"
)

// Challenger represents a challenger in API responses
type Challenger struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// ChallengerFromModel converts a model.Challenger. The endpoint is internal
// and never exposed.
func ChallengerFromModel(c model.Challenger) Challenger {
	return Challenger{
		Name:        c.Name,
		DisplayName: c.DisplayName,
	}
}

// ChallengersList is the response for the challenger listing
type ChallengersList struct {
	Count       int          `json:"count"`
	Challengers []Challenger `json:"challengers"`
}

// ChallengersListFromModel converts the registry listing
func ChallengersListFromModel(cs []model.Challenger) ChallengersList {
	out := make([]Challenger, len(cs))
	for i, c := range cs {
		out[i] = ChallengerFromModel(c)
	}
	return ChallengersList{
		Count:       len(out),
		Challengers: out,
	}
}

// PlayResult is the response for a played round
type PlayResult struct {
	Challenger     string `json:"challenger"`
	User           string `json:"user"`
	UserPick       int    `json:"userPick"`
	ChallengerPick int    `json:"challengerPick"`
	IsValid        bool   `json:"isValid"`
	Result         string `json:"result"`
}

// PlayResultFromModel converts a model.PlayOutcome
func PlayResultFromModel(o *model.PlayOutcome) PlayResult {
	return PlayResult{
		Challenger:     o.Challenger.Name,
		User:           o.Username,
		UserPick:       int(o.PlayerPick),
		ChallengerPick: int(o.ChallengerPick),
		IsValid:        true,
		Result:         string(o.Result),
	}
}

// Rule is one winning pairing
type Rule struct {
	Winner string `json:"winner"`
	Verb   string `json:"verb"`
	Loser  string `json:"loser"`
	Text   string `json:"text"`
}

// RulesList is the response for the rules listing
type RulesList struct {
	Picks []string `json:"picks"`
	Rules []Rule   `json:"rules"`
}

// RulesListFromGame builds the rules listing from the engine
func RulesListFromGame(rules []game.Rule) RulesList {
	picks := make([]string, 0, model.PickCount)
	for _, p := range model.Picks() {
		picks = append(picks, p.String())
	}

	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{
			Winner: r.Winner.String(),
			Verb:   r.Verb,
			Loser:  r.Loser.String(),
			Text:   r.String(),
		}
	}
	return RulesList{Picks: picks, Rules: out}
}

// Health is the response for the health check
type Health struct {
	Status      string `json:"status"`
	Challengers int    `json:"challengers,omitempty"`
}
