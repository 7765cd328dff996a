package rpc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/emptypb"
)

// DialStage describes where a dial attempt failed
type DialStage string

const (
	// DialStageConnect indicates a connection setup failure
	DialStageConnect DialStage = "connect"
	// DialStageHealth indicates the health check never reported SERVING
	DialStageHealth DialStage = "health"
)

// DialError wraps dial and health check failures with a stage indicator
type DialError struct {
	Stage DialStage
	Err   error
}

func (e *DialError) Error() string {
	return fmt.Sprintf("gRPC %s error: %v", e.Stage, e.Err)
}

func (e *DialError) Unwrap() error {
	return e.Err
}

// Client calls a remote BotGameManager service
type Client struct {
	conn *grpc.ClientConn
}

// DefaultDialOptions returns the dial options Dial uses before any extras
func DefaultDialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// Dial connects to addr and waits until its health service reports SERVING
// or ctx ends
func Dial(ctx context.Context, addr string, logger *slog.Logger, opts ...grpc.DialOption) (*Client, error) {
	conn, err := grpc.NewClient(addr, append(DefaultDialOptions(), opts...)...)
	if err != nil {
		return nil, &DialError{Stage: DialStageConnect, Err: err}
	}
	if err := WaitForHealth(ctx, conn, "", logger); err != nil {
		_ = conn.Close()
		return nil, &DialError{Stage: DialStageHealth, Err: err}
	}
	return &Client{conn: conn}, nil
}

// WaitForHealth blocks until the health check for service reports SERVING or
// ctx ends
func WaitForHealth(ctx context.Context, conn *grpc.ClientConn, service string, logger *slog.Logger) error {
	healthClient := grpc_health_v1.NewHealthClient(conn)
	backoff := 200 * time.Millisecond
	for {
		callCtx, cancel := context.WithTimeout(ctx, time.Second)
		resp, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		if err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			return nil
		}
		if err != nil {
			logger.Debug("waiting for gRPC health", slog.String("error", err.Error()))
		} else {
			logger.Debug("waiting for gRPC health", slog.String("status", resp.GetStatus().String()))
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}

		if backoff < time.Second {
			backoff = min(backoff*2, time.Second)
		}
	}
}

// GetChallengers lists the challengers the server offers. Calls go out as
// protobuf unless opts pick another content-subtype.
func (c *Client) GetChallengers(ctx context.Context, opts ...grpc.CallOption) (*ChallengersList, error) {
	out := dynamicpb.NewMessage(challengersListDesc)
	if err := c.conn.Invoke(ctx, GetChallengersMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return challengersListFromProto(out), nil
}

// DoPlay plays one round
func (c *Client) DoPlay(ctx context.Context, in *GameRequest, opts ...grpc.CallOption) (*GameResponse, error) {
	if in == nil {
		in = &GameRequest{}
	}
	out := dynamicpb.NewMessage(gameResponseDesc)
	if err := c.conn.Invoke(ctx, DoPlayMethod, in.toProto(), out, opts...); err != nil {
		return nil, err
	}
	return gameResponseFromProto(out), nil
}

// Health reports the serving status of the server
func (c *Client) Health(ctx context.Context) (string, error) {
	resp, err := grpc_health_v1.NewHealthClient(c.conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return "", err
	}
	return resp.GetStatus().String(), nil
}

// Close releases the connection
func (c *Client) Close() error {
	return c.conn.Close()
}
