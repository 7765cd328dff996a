package opponent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
)

// PickPath is the path challenger services serve their pick on
const PickPath = "/pick"

// maxPickBody bounds how much of a challenger response is read
const maxPickBody = 4 << 10

// PickResponse is the body a challenger service returns. Value wins when
// present; otherwise Text must name a symbol.
type PickResponse struct {
	Text  string `json:"text"`
	Value *int   `json:"value"`
}

// HTTPPicker asks the challenger's own service for its pick
type HTTPPicker struct {
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewHTTPPicker creates a picker. A zero timeout leaves the deadline to the
// caller's context.
func NewHTTPPicker(client *http.Client, timeout time.Duration, logger *slog.Logger) *HTTPPicker {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPPicker{
		client:  client,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "http-picker")),
	}
}

// Pick calls GET {endpoint}/pick. Every failure is reported as
// model.ErrChallengerUnavailable.
func (p *HTTPPicker) Pick(ctx context.Context, challenger model.Challenger) (int, error) {
	if challenger.Endpoint == "" {
		return 0, unavailable(challenger, fmt.Errorf("no endpoint configured"))
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	url := strings.TrimSuffix(challenger.Endpoint, "/") + PickPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, unavailable(challenger, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return 0, unavailable(challenger, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, unavailable(challenger, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	var body PickResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPickBody)).Decode(&body); err != nil {
		return 0, unavailable(challenger, fmt.Errorf("decode pick: %w", err))
	}

	value, err := body.pick()
	if err != nil {
		return 0, unavailable(challenger, err)
	}

	p.logger.Debug("challenger picked",
		slog.String("challenger", challenger.Name),
		slog.Int("value", value),
		slog.String("text", body.Text),
		slog.Duration("duration", time.Since(start)),
	)

	return value, nil
}

func (r PickResponse) pick() (int, error) {
	if r.Value != nil {
		return *r.Value, nil
	}
	if strings.TrimSpace(r.Text) == "" {
		return 0, errors.New("response has no pick")
	}
	// The parse error is not wrapped: a bad challenger reply must not read
	// as an invalid player pick.
	p, err := model.ParsePick(r.Text)
	if err != nil {
		return 0, fmt.Errorf("decode pick text: %v", err)
	}
	return int(p), nil
}

func unavailable(challenger model.Challenger, err error) error {
	return fmt.Errorf("%w: %s: %w", model.ErrChallengerUnavailable, challenger.Name, err)
}
