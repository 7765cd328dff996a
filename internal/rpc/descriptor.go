package rpc

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ProtoPackage is the protobuf package of the BotGameManager schema
const ProtoPackage = "GameManagementApi"

var (
	gameAPIFile         protoreflect.FileDescriptor
	challengerDesc      protoreflect.MessageDescriptor
	challengersListDesc protoreflect.MessageDescriptor
	gameRequestDesc     protoreflect.MessageDescriptor
	gameResponseDesc    protoreflect.MessageDescriptor
)

func init() {
	fd, err := protodesc.NewFile(gameAPIFileProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("build GameApi.proto descriptor: %v", err))
	}
	gameAPIFile = fd
	challengerDesc = fd.Messages().ByName("Challenger")
	challengersListDesc = fd.Messages().ByName("ChallengersList")
	gameRequestDesc = fd.Messages().ByName("GameRequest")
	gameResponseDesc = fd.Messages().ByName("GameResponse")
}

// FileDescriptor returns the GameApi.proto schema the service speaks. Clients
// without generated code can build dynamicpb messages from it.
func FileDescriptor() protoreflect.FileDescriptor {
	return gameAPIFile
}

// gameAPIFileProto is the descriptor form of:
//
//	syntax = "proto3";
//	package GameManagementApi;
//
//	import "google/protobuf/empty.proto";
//
//	service BotGameManager {
//	  rpc GetChallengers (google.protobuf.Empty) returns (ChallengersList);
//	  rpc DoPlay (GameRequest) returns (GameResponse);
//	}
//
//	message Challenger { string name = 1; string displayName = 2; }
//	message ChallengersList { int32 count = 1; repeated Challenger challengers = 2; }
//	message GameRequest { string challenger = 1; string username = 2; bool twitterLogged = 3; int32 pick = 4; }
//	message GameResponse {
//	  string challenger = 1; string user = 2; int32 userPick = 3;
//	  int32 challengerPick = 4; bool isValid = 5; string result = 6;
//	}
func gameAPIFileProto() *descriptorpb.FileDescriptorProto {
	const (
		str   = descriptorpb.FieldDescriptorProto_TYPE_STRING
		i32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
		boolT = descriptorpb.FieldDescriptorProto_TYPE_BOOL
	)

	challengers := field("challengers", 2, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	challengers.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	challengers.TypeName = proto.String(qualified("Challenger"))

	return &descriptorpb.FileDescriptorProto{
		Name:       proto.String("GameApi.proto"),
		Package:    proto.String(ProtoPackage),
		Syntax:     proto.String("proto3"),
		Dependency: []string{emptypb.File_google_protobuf_empty_proto.Path()},
		MessageType: []*descriptorpb.DescriptorProto{
			message("Challenger",
				field("name", 1, str),
				field("displayName", 2, str),
			),
			message("ChallengersList",
				field("count", 1, i32),
				challengers,
			),
			message("GameRequest",
				field("challenger", 1, str),
				field("username", 2, str),
				field("twitterLogged", 3, boolT),
				field("pick", 4, i32),
			),
			message("GameResponse",
				field("challenger", 1, str),
				field("user", 2, str),
				field("userPick", 3, i32),
				field("challengerPick", 4, i32),
				field("isValid", 5, boolT),
				field("result", 6, str),
			),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("BotGameManager"),
			Method: []*descriptorpb.MethodDescriptorProto{
				{
					Name:       proto.String("GetChallengers"),
					InputType:  proto.String("." + string((&emptypb.Empty{}).ProtoReflect().Descriptor().FullName())),
					OutputType: proto.String(qualified("ChallengersList")),
				},
				{
					Name:       proto.String("DoPlay"),
					InputType:  proto.String(qualified("GameRequest")),
					OutputType: proto.String(qualified("GameResponse")),
				},
			},
		}},
	}
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func field(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     typ.Enum(),
	}
}

func qualified(name string) string {
	return "." + ProtoPackage + "." + name
}
