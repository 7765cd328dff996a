package game

import (
	"context"
	"log/slog"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/challenger"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/opponent"
)

// Controller plays single rounds against registered challengers.
// It holds no per-round state.
type Controller struct {
	registry *challenger.Registry
	picker   opponent.Picker
	logger   *slog.Logger
}

// NewController creates a new game Controller
func NewController(registry *challenger.Registry, picker opponent.Picker, logger *slog.Logger) *Controller {
	return &Controller{
		registry: registry,
		picker:   picker,
		logger:   logger.With(slog.String("component", "game-controller")),
	}
}

// Challengers returns the registered challengers in configuration order
func (c *Controller) Challengers() []model.Challenger {
	return c.registry.List()
}

// Play resolves the challenger, obtains its pick and evaluates the round.
// Either a complete outcome or an error is returned, never both.
func (c *Controller) Play(ctx context.Context, req model.PlayRequest) (*model.PlayOutcome, error) {
	opp, err := c.registry.Resolve(req.ChallengerName)
	if err != nil {
		return nil, err
	}

	// Reject a bad player pick before calling out to the challenger
	if _, err := ValidatePick(model.SidePlayer, req.PlayerPick); err != nil {
		return nil, err
	}

	challengerPick, err := c.picker.Pick(ctx, opp)
	if err != nil {
		c.logger.Warn("challenger pick failed",
			slog.String("challenger", opp.Name),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	result, err := Evaluate(req.PlayerPick, challengerPick)
	if err != nil {
		c.logger.Warn("round rejected",
			slog.String("challenger", opp.Name),
			slog.Int("player_pick", req.PlayerPick),
			slog.Int("challenger_pick", challengerPick),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("round played",
		slog.String("challenger", opp.Name),
		slog.String("user", req.Username),
		slog.String("player_pick", model.Pick(req.PlayerPick).String()),
		slog.String("challenger_pick", model.Pick(challengerPick).String()),
		slog.String("result", string(result)),
	)

	return &model.PlayOutcome{
		Username:       req.Username,
		PlayerPick:     model.Pick(req.PlayerPick),
		ChallengerPick: model.Pick(challengerPick),
		Challenger:     opp,
		Result:         result,
	}, nil
}
