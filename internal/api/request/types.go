package request

// PlayRequest is the request body for playing a round
type PlayRequest struct {
	Challenger string `json:"challenger"`
	Username   string `json:"username"`
	// Pick is a pointer so a missing pick can be told apart from Rock (0)
	Pick *int `json:"pick"`
}
