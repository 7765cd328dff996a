package middleware

import (
	"log/slog"
	"net/http"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/middleware"
)

// Logging logs each API request with its request id
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("component", "api")))
}

// RequestID tags each API request with an X-Request-ID
func RequestID(next http.Handler) http.Handler {
	return middleware.RequestID(next)
}
