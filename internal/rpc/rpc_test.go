package rpc_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/factory"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/rpc"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/testutil"
)

type RPCSuite struct {
	suite.Suite
	app    *factory.TestApp
	cancel context.CancelFunc
	done   chan error
	client *rpc.Client
	addr   string
	ctx    context.Context
}

func TestRPCSuite(t *testing.T) {
	suite.Run(t, new(RPCSuite))
}

func (s *RPCSuite) SetupTest() {
	s.app = factory.NewTestApp()

	server, err := rpc.NewServer("127.0.0.1:0", s.app.GameController, testutil.NopLogger())
	s.Require().NoError(err)

	var serveCtx context.Context
	serveCtx, s.cancel = context.WithCancel(context.Background())
	s.done = make(chan error, 1)
	go func() { s.done <- server.Serve(serveCtx) }()

	var cancel context.CancelFunc
	s.ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	s.T().Cleanup(cancel)

	s.addr = server.Addr()
	s.client, err = rpc.Dial(s.ctx, s.addr, testutil.NopLogger())
	s.Require().NoError(err)
}

func (s *RPCSuite) TearDownTest() {
	s.Require().NoError(s.client.Close())
	s.cancel()
	s.NoError(<-s.done)
}

func (s *RPCSuite) TestHealthServing() {
	state, err := s.client.Health(s.ctx)
	s.Require().NoError(err)
	s.Equal("SERVING", state)
}

func (s *RPCSuite) TestGetChallengers() {
	list, err := s.client.GetChallengers(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, list.Count)
	s.Equal([]rpc.Challenger{
		{Name: "dotnet", DisplayName: ".NET"},
		{Name: "python", DisplayName: "Python"},
	}, list.Challengers)
}

func (s *RPCSuite) TestDoPlay() {
	s.app.MockPicker.QueuePicks(int(model.Spock))

	resp, err := s.client.DoPlay(s.ctx, &rpc.GameRequest{
		Challenger:    "dotnet",
		Username:      "alice",
		TwitterLogged: true,
		Pick:          int(model.Paper),
	})
	s.Require().NoError(err)
	s.Equal(&rpc.GameResponse{
		Challenger:     "dotnet",
		User:           "alice",
		UserPick:       1,
		ChallengerPick: 4,
		IsValid:        true,
		Result:         "Player",
	}, resp)
}

func (s *RPCSuite) TestDoPlayTie() {
	s.app.MockPicker.QueuePicks(int(model.Rock))

	resp, err := s.client.DoPlay(s.ctx, &rpc.GameRequest{Challenger: "python", Pick: int(model.Rock)})
	s.Require().NoError(err)
	s.Equal("Tie", resp.Result)
	s.Empty(resp.User)
}

func (s *RPCSuite) TestDoPlayUnknownChallenger() {
	_, err := s.client.DoPlay(s.ctx, &rpc.GameRequest{Challenger: "nonexistent", Pick: 0})
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(status.Convert(err).Message(), "nonexistent")
}

func (s *RPCSuite) TestDoPlayInvalidPick() {
	_, err := s.client.DoPlay(s.ctx, &rpc.GameRequest{Challenger: "dotnet", Pick: 5})
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Zero(s.app.MockPicker.CallCount())
}

func (s *RPCSuite) TestDoPlayChallengerUnavailable() {
	s.app.MockPicker.SetErr(fmt.Errorf("%w: dotnet: timeout", model.ErrChallengerUnavailable))

	_, err := s.client.DoPlay(s.ctx, &rpc.GameRequest{Challenger: "dotnet", Pick: 0})
	s.Equal(codes.Unavailable, status.Code(err))
}

func (s *RPCSuite) TestDoPlayInternalErrorHidesDetail() {
	s.app.MockPicker.SetErr(errors.New("secret stack detail"))

	_, err := s.client.DoPlay(s.ctx, &rpc.GameRequest{Challenger: "dotnet", Pick: 0})
	s.Equal(codes.Internal, status.Code(err))
	s.NotContains(status.Convert(err).Message(), "secret")
}

// rawConn is a plain gRPC connection with no codec or content-subtype
// preference, as a client generated from GameApi.proto would open
func (s *RPCSuite) rawConn() *grpc.ClientConn {
	conn, err := grpc.NewClient(s.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func newMessage(name protoreflect.Name) *dynamicpb.Message {
	return dynamicpb.NewMessage(rpc.FileDescriptor().Messages().ByName(name))
}

func field(m protoreflect.Message, name protoreflect.Name) protoreflect.FieldDescriptor {
	return m.Descriptor().Fields().ByName(name)
}

func (s *RPCSuite) TestProtobufClientGetChallengers() {
	out := newMessage("ChallengersList")
	err := s.rawConn().Invoke(s.ctx, rpc.GetChallengersMethod, &emptypb.Empty{}, out)
	s.Require().NoError(err)

	s.Equal(int64(2), out.Get(field(out, "count")).Int())
	list := out.Get(field(out, "challengers")).List()
	s.Require().Equal(2, list.Len())
	first := list.Get(0).Message()
	s.Equal("dotnet", first.Get(field(first, "name")).String())
	s.Equal(".NET", first.Get(field(first, "displayName")).String())
}

func (s *RPCSuite) TestProtobufClientDoPlay() {
	s.app.MockPicker.QueuePicks(int(model.Lizard))

	in := newMessage("GameRequest")
	in.Set(field(in, "challenger"), protoreflect.ValueOfString("python"))
	in.Set(field(in, "username"), protoreflect.ValueOfString("bob"))
	in.Set(field(in, "pick"), protoreflect.ValueOfInt32(int32(model.Rock)))

	out := newMessage("GameResponse")
	err := s.rawConn().Invoke(s.ctx, rpc.DoPlayMethod, in, out)
	s.Require().NoError(err)

	s.Equal("python", out.Get(field(out, "challenger")).String())
	s.Equal("bob", out.Get(field(out, "user")).String())
	s.Equal(int64(model.Rock), out.Get(field(out, "userPick")).Int())
	s.Equal(int64(model.Lizard), out.Get(field(out, "challengerPick")).Int())
	s.True(out.Get(field(out, "isValid")).Bool())
	s.Equal("Player", out.Get(field(out, "result")).String())
}

func (s *RPCSuite) TestProtobufClientUnknownChallenger() {
	in := newMessage("GameRequest")
	in.Set(field(in, "challenger"), protoreflect.ValueOfString("nonexistent"))

	err := s.rawConn().Invoke(s.ctx, rpc.DoPlayMethod, in, newMessage("GameResponse"))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *RPCSuite) TestJSONContentSubtype() {
	s.app.MockPicker.QueuePicks(int(model.Paper))
	jsonCall := grpc.CallContentSubtype(rpc.CodecName)

	list, err := s.client.GetChallengers(s.ctx, jsonCall)
	s.Require().NoError(err)
	s.Equal(2, list.Count)

	resp, err := s.client.DoPlay(s.ctx, &rpc.GameRequest{Challenger: "dotnet", Pick: int(model.Scissors)}, jsonCall)
	s.Require().NoError(err)
	s.Equal("Player", resp.Result)
	s.Equal(int(model.Paper), resp.ChallengerPick)
}

type playResult struct {
	resp *rpc.GameResponse
	err  error
}

// serveTestApp runs a gRPC server for app until the returned cancel is called
func serveTestApp(t *testing.T, app *factory.TestApp, opts ...rpc.ServerOption) (*rpc.Client, context.CancelFunc, <-chan error) {
	t.Helper()

	server, err := rpc.NewServer("127.0.0.1:0", app.GameController, testutil.NopLogger(), opts...)
	require.NoError(t, err)

	serveCtx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	done := make(chan error, 1)
	go func() { done <- server.Serve(serveCtx) }()

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dialCancel()
	client, err := rpc.Dial(dialCtx, server.Addr(), testutil.NopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, cancel, done
}

func TestServeDrainsInFlightCallOnShutdown(t *testing.T) {
	app := factory.NewTestApp()
	app.MockPicker.QueuePicks(int(model.Scissors))
	release := app.MockPicker.Hold()
	t.Cleanup(release)

	client, cancel, done := serveTestApp(t, app)

	ctx, ctxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer ctxCancel()

	calls := make(chan playResult, 1)
	go func() {
		resp, err := client.DoPlay(ctx, &rpc.GameRequest{Challenger: "dotnet", Pick: int(model.Rock)})
		calls <- playResult{resp: resp, err: err}
	}()

	require.Eventually(t, func() bool { return app.MockPicker.CallCount() == 1 }, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		t.Fatalf("Serve returned with a call still in flight: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	release()

	result := <-calls
	require.NoError(t, result.err)
	assert.Equal(t, "Player", result.resp.Result)
	assert.Equal(t, int(model.Scissors), result.resp.ChallengerPick)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after the last call finished")
	}
}

func TestServeClosesStuckCallsAfterShutdownTimeout(t *testing.T) {
	app := factory.NewTestApp()
	release := app.MockPicker.Hold()
	t.Cleanup(release)

	client, cancel, done := serveTestApp(t, app, rpc.WithShutdownTimeout(100*time.Millisecond))

	ctx, ctxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer ctxCancel()

	calls := make(chan playResult, 1)
	go func() {
		resp, err := client.DoPlay(ctx, &rpc.GameRequest{Challenger: "dotnet", Pick: int(model.Rock)})
		calls <- playResult{resp: resp, err: err}
	}()

	require.Eventually(t, func() bool { return app.MockPicker.CallCount() == 1 }, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not force the server closed")
	}

	result := <-calls
	assert.Error(t, result.err)
}

func TestDialUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := rpc.Dial(ctx, "127.0.0.1:1", testutil.NopLogger())

	var dialErr *rpc.DialError
	if !errors.As(err, &dialErr) {
		t.Fatalf("expected DialError, got %v", err)
	}
	if dialErr.Stage != rpc.DialStageHealth {
		t.Fatalf("expected health stage, got %s", dialErr.Stage)
	}
}
