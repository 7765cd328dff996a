package cli

import (
	"fmt"
	"os"
	"time"
)

// Transport names
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	GRPCAddr  string
	Transport string
	Timeout   time.Duration
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("RPSLS_SERVER", "http://localhost:8080"),
		GRPCAddr:  getEnvOrDefault("RPSLS_GRPC_ADDR", "localhost:50051"),
		Transport: getEnvOrDefault("RPSLS_TRANSPORT", TransportHTTP),
		Timeout:   10 * time.Second,
		Output:    "text",
		Verbose:   false,
	}
}

// Validate checks flag values that cobra cannot
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportHTTP, TransportGRPC:
	default:
		return fmt.Errorf("invalid transport %q: must be %s or %s", c.Transport, TransportHTTP, TransportGRPC)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output %q: must be text or json", c.Output)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
