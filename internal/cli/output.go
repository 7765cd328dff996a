package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/game"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ChallengersResult:
		o.printChallengers(v)
	case PlayResult:
		o.printPlayResult(v)
	case RulesResult:
		o.printRules(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Challenger response type (matches API)
type Challenger struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// ChallengersResult response type
type ChallengersResult struct {
	Count       int          `json:"count"`
	Challengers []Challenger `json:"challengers"`
}

// PlayResult response type
type PlayResult struct {
	Challenger     string `json:"challenger"`
	User           string `json:"user"`
	UserPick       int    `json:"userPick"`
	ChallengerPick int    `json:"challengerPick"`
	IsValid        bool   `json:"isValid"`
	Result         string `json:"result"`
}

// Rule response type
type Rule struct {
	Winner string `json:"winner"`
	Verb   string `json:"verb"`
	Loser  string `json:"loser"`
	Text   string `json:"text"`
}

// RulesResult response type
type RulesResult struct {
	Picks []string `json:"picks"`
	Rules []Rule   `json:"rules"`
}

// HealthResult response type
type HealthResult struct {
	Status      string `json:"status"`
	Challengers int    `json:"challengers,omitempty"`
}

func rulesFromGame(rules []game.Rule) RulesResult {
	result := RulesResult{Rules: make([]Rule, len(rules))}
	for _, p := range model.Picks() {
		result.Picks = append(result.Picks, p.String())
	}
	for i, r := range rules {
		result.Rules[i] = Rule{Winner: r.Winner.String(), Verb: r.Verb, Loser: r.Loser.String(), Text: r.String()}
	}
	return result
}

func (o *Output) printChallengers(c ChallengersResult) {
	_, _ = fmt.Fprintf(o.w, "Challengers (%d):\n", c.Count)
	for _, ch := range c.Challengers {
		_, _ = fmt.Fprintf(o.w, "  - %s (%s)\n", ch.DisplayName, ch.Name)
	}
}

func (o *Output) printPlayResult(p PlayResult) {
	user, userPick := p.User, model.Pick(p.UserPick)
	if user == "" {
		user = "You"
	}
	challengerPick := model.Pick(p.ChallengerPick)

	_, _ = fmt.Fprintf(o.w, "%s picked %s, %s picked %s\n", user, userPick, p.Challenger, challengerPick)

	switch model.Result(p.Result) {
	case model.ResultPlayer:
		_, _ = fmt.Fprintf(o.w, "%s %s %s\n", userPick, game.Verb(userPick, challengerPick), challengerPick)
		_, _ = fmt.Fprintf(o.w, "Winner: %s\n", user)
	case model.ResultChallenger:
		_, _ = fmt.Fprintf(o.w, "%s %s %s\n", challengerPick, game.Verb(challengerPick, userPick), userPick)
		_, _ = fmt.Fprintf(o.w, "Winner: %s\n", p.Challenger)
	default:
		_, _ = fmt.Fprintln(o.w, "Tie")
	}
}

func (o *Output) printRules(r RulesResult) {
	for _, rule := range r.Rules {
		_, _ = fmt.Fprintln(o.w, rule.Text)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.Challengers > 0 {
		_, _ = fmt.Fprintf(o.w, "Challengers: %d\n", h.Challengers)
	}
}
