package handler

import (
	"net/http"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/api/response"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/game"
)

// ChallengerHandler handles challenger listing and the rules table
type ChallengerHandler struct {
	gameController *game.Controller
}

// NewChallengerHandler creates a new challenger handler
func NewChallengerHandler(gameController *game.Controller) *ChallengerHandler {
	return &ChallengerHandler{gameController: gameController}
}

// List handles GET /api/v1/challengers
func (h *ChallengerHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := response.ChallengersListFromModel(h.gameController.Challengers())
	response.JSON(w, http.StatusOK, resp)
}

// Rules handles GET /api/v1/rules
func (h *ChallengerHandler) Rules(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.RulesListFromGame(game.Rules()))
}
