package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg     *Config
	backend Backend
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "rpsls",
		Short: "CLI tool for the Rock Paper Scissors Lizard Spock game API",
		Long: `rpsls plays Rock Paper Scissors Lizard Spock against the challengers
registered on a game server, over either its JSON API or its gRPC API.

Picks may be given by name (rock, paper, scissors, lizard, spock) or by
number (0-4).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			b, err := newBackend(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			backend = b
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if backend == nil {
				return nil
			}
			return backend.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: RPSLS_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC server address (env: RPSLS_GRPC_ADDR)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Transport, "transport", "t", cfg.Transport, "Transport: http, grpc (env: RPSLS_TRANSPORT)")
	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Request timeout")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newChallengersCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

func newBackend(ctx context.Context, c *Config) (Backend, error) {
	if c.Transport == TransportGRPC {
		dialCtx, cancel := context.WithTimeout(ctx, c.Timeout)
		defer cancel()
		return newGRPCBackend(dialCtx, c, newLogger(c))
	}
	return newHTTPBackend(c), nil
}

func newLogger(c *Config) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// requestContext bounds a single command's calls by the configured timeout
func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), cfg.Timeout)
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
