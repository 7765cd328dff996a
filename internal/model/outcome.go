package model

// Result is the outcome of a single round
type Result string

const (
	ResultPlayer     Result = "Player"
	ResultChallenger Result = "Challenger"
	ResultTie        Result = "Tie"
)

// PlayRequest is a single round requested by a player
type PlayRequest struct {
	ChallengerName string
	Username       string
	PlayerPick     int
}

// PlayOutcome is the fully evaluated round returned to the caller.
// It is created per request and never stored.
type PlayOutcome struct {
	Username       string
	PlayerPick     Pick
	ChallengerPick Pick
	Challenger     Challenger
	Result         Result
}
