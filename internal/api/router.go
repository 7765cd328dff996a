package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/api/handler"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/api/middleware"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/api/response"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	challengerHandler := handler.NewChallengerHandler(cfg.GameController)
	playHandler := handler.NewPlayHandler(cfg.GameController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID)
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/challengers", challengerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/rules", challengerHandler.Rules).Methods(http.MethodGet)
	api.HandleFunc("/play", playHandler.Play).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler(cfg.GameController)).Methods(http.MethodGet)

	return r
}

func healthHandler(gameController *game.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, response.Health{
			Status:      "ok",
			Challengers: len(gameController.Challengers()),
		})
	}
}
