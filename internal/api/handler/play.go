package handler

import (
	"encoding/json"
	"net/http"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/api/request"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/api/response"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/game"
)

// PlayHandler handles single-round play
type PlayHandler struct {
	gameController *game.Controller
}

// NewPlayHandler creates a new play handler
func NewPlayHandler(gameController *game.Controller) *PlayHandler {
	return &PlayHandler{gameController: gameController}
}

// Play handles POST /api/v1/play
func (h *PlayHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Pick == nil {
		WriteError(w, NewInvalidRequestError("pick is required"))
		return
	}

	outcome, err := h.gameController.Play(r.Context(), model.PlayRequest{
		ChallengerName: req.Challenger,
		Username:       req.Username,
		PlayerPick:     *req.Pick,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayResultFromModel(outcome))
}
