package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/services/game"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "GameManagementApi.BotGameManager"

// Full method names
const (
	GetChallengersMethod = "/" + ServiceName + "/GetChallengers"
	DoPlayMethod         = "/" + ServiceName + "/DoPlay"
)

// BotGameManagerServer is the server API for the BotGameManager service
type BotGameManagerServer interface {
	GetChallengers(ctx context.Context, in *emptypb.Empty) (*ChallengersList, error)
	DoPlay(ctx context.Context, in *GameRequest) (*GameResponse, error)
}

// RegisterBotGameManagerServer registers srv on s
func RegisterBotGameManagerServer(s grpc.ServiceRegistrar, srv BotGameManagerServer) {
	s.RegisterService(&botGameManagerServiceDesc, srv)
}

var botGameManagerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BotGameManagerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetChallengers", Handler: getChallengersHandler},
		{MethodName: "DoPlay", Handler: doPlayHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "GameApi.proto",
}

func getChallengersHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BotGameManagerServer).GetChallengers(ctx, req.(*emptypb.Empty))
	}
	resp, err := intercept(ctx, srv, in, GetChallengersMethod, interceptor, handler)
	if err != nil {
		return nil, err
	}
	return resp.(*ChallengersList).toProto(), nil
}

func doPlayHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	msg := dynamicpb.NewMessage(gameRequestDesc)
	if err := dec(msg); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BotGameManagerServer).DoPlay(ctx, req.(*GameRequest))
	}
	resp, err := intercept(ctx, srv, gameRequestFromProto(msg), DoPlayMethod, interceptor, handler)
	if err != nil {
		return nil, err
	}
	return resp.(*GameResponse).toProto(), nil
}

// intercept runs handler behind interceptor. Interceptors see the Go request
// and response types; only the wire side uses the protobuf messages.
func intercept(ctx context.Context, srv, req any, method string, interceptor grpc.UnaryServerInterceptor, handler grpc.UnaryHandler) (any, error) {
	if interceptor == nil {
		return handler(ctx, req)
	}
	return interceptor(ctx, req, &grpc.UnaryServerInfo{Server: srv, FullMethod: method}, handler)
}

// Service implements BotGameManagerServer on top of the game controller
type Service struct {
	gameController *game.Controller
}

// NewService creates a new BotGameManager service
func NewService(gameController *game.Controller) *Service {
	return &Service{gameController: gameController}
}

// GetChallengers lists the registered challengers in configuration order
func (s *Service) GetChallengers(_ context.Context, _ *emptypb.Empty) (*ChallengersList, error) {
	return challengersListFromModel(s.gameController.Challengers()), nil
}

// DoPlay plays one round against the requested challenger
func (s *Service) DoPlay(ctx context.Context, in *GameRequest) (*GameResponse, error) {
	if in == nil {
		in = &GameRequest{}
	}

	outcome, err := s.gameController.Play(ctx, model.PlayRequest{
		ChallengerName: in.Challenger,
		Username:       in.Username,
		PlayerPick:     in.Pick,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return gameResponseFromModel(outcome), nil
}
