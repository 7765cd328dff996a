package rpc

import (
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
)

// Challenger is one entry in ChallengersList
type Challenger struct {
	Name        string
	DisplayName string
}

// ChallengersList is the response to GetChallengers
type ChallengersList struct {
	Count       int
	Challengers []Challenger
}

// GameRequest is the request to DoPlay
type GameRequest struct {
	Challenger    string
	Username      string
	TwitterLogged bool
	Pick          int
}

// GameResponse is the response to DoPlay. IsValid is always true on a
// successful call; rejected rounds are returned as status errors.
type GameResponse struct {
	Challenger     string
	User           string
	UserPick       int
	ChallengerPick int
	IsValid        bool
	Result         string
}

func challengersListFromModel(cs []model.Challenger) *ChallengersList {
	out := make([]Challenger, len(cs))
	for i, c := range cs {
		out[i] = Challenger{Name: c.Name, DisplayName: c.DisplayName}
	}
	return &ChallengersList{Count: len(out), Challengers: out}
}

func gameResponseFromModel(o *model.PlayOutcome) *GameResponse {
	return &GameResponse{
		Challenger:     o.Challenger.Name,
		User:           o.Username,
		UserPick:       int(o.PlayerPick),
		ChallengerPick: int(o.ChallengerPick),
		IsValid:        true,
		Result:         string(o.Result),
	}
}

// Wire conversions between the Go types and GameApi.proto messages

func (l *ChallengersList) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(challengersListDesc)
	setInt(m, "count", l.Count)
	list := m.Mutable(fieldOf(m, "challengers")).List()
	for _, c := range l.Challengers {
		elem := list.NewElement()
		setString(elem.Message(), "name", c.Name)
		setString(elem.Message(), "displayName", c.DisplayName)
		list.Append(elem)
	}
	return m
}

func challengersListFromProto(m protoreflect.Message) *ChallengersList {
	list := m.Get(fieldOf(m, "challengers")).List()
	out := &ChallengersList{
		Count:       getInt(m, "count"),
		Challengers: make([]Challenger, 0, list.Len()),
	}
	for i := 0; i < list.Len(); i++ {
		c := list.Get(i).Message()
		out.Challengers = append(out.Challengers, Challenger{
			Name:        getString(c, "name"),
			DisplayName: getString(c, "displayName"),
		})
	}
	return out
}

func (r *GameRequest) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(gameRequestDesc)
	setString(m, "challenger", r.Challenger)
	setString(m, "username", r.Username)
	setBool(m, "twitterLogged", r.TwitterLogged)
	setInt(m, "pick", r.Pick)
	return m
}

func gameRequestFromProto(m protoreflect.Message) *GameRequest {
	return &GameRequest{
		Challenger:    getString(m, "challenger"),
		Username:      getString(m, "username"),
		TwitterLogged: getBool(m, "twitterLogged"),
		Pick:          getInt(m, "pick"),
	}
}

func (r *GameResponse) toProto() *dynamicpb.Message {
	m := dynamicpb.NewMessage(gameResponseDesc)
	setString(m, "challenger", r.Challenger)
	setString(m, "user", r.User)
	setInt(m, "userPick", r.UserPick)
	setInt(m, "challengerPick", r.ChallengerPick)
	setBool(m, "isValid", r.IsValid)
	setString(m, "result", r.Result)
	return m
}

func gameResponseFromProto(m protoreflect.Message) *GameResponse {
	return &GameResponse{
		Challenger:     getString(m, "challenger"),
		User:           getString(m, "user"),
		UserPick:       getInt(m, "userPick"),
		ChallengerPick: getInt(m, "challengerPick"),
		IsValid:        getBool(m, "isValid"),
		Result:         getString(m, "result"),
	}
}

func fieldOf(m protoreflect.Message, name protoreflect.Name) protoreflect.FieldDescriptor {
	return m.Descriptor().Fields().ByName(name)
}

func setString(m protoreflect.Message, name protoreflect.Name, v string) {
	m.Set(fieldOf(m, name), protoreflect.ValueOfString(v))
}

func setInt(m protoreflect.Message, name protoreflect.Name, v int) {
	m.Set(fieldOf(m, name), protoreflect.ValueOfInt32(int32(v)))
}

func setBool(m protoreflect.Message, name protoreflect.Name, v bool) {
	m.Set(fieldOf(m, name), protoreflect.ValueOfBool(v))
}

func getString(m protoreflect.Message, name protoreflect.Name) string {
	return m.Get(fieldOf(m, name)).String()
}

func getInt(m protoreflect.Message, name protoreflect.Name) int {
	return int(m.Get(fieldOf(m, name)).Int())
}

func getBool(m protoreflect.Message, name protoreflect.Name) bool {
	return m.Get(fieldOf(m, name)).Bool()
}
