package ws

import (
	"cooksync/domain"
	"cooksync/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeCreateSession(t *testing.T) {
	require := require.New(t)

	// Given a valid create frame
	frame := []byte(`{"type":"create_session","payload":{"recipeId":"r1","title":"Sunday stew","isPublic":true}}`)

	// When it is decoded on behalf of alice
	cmd, err := Decode(frame, "alice")

	// Then a typed command carries the authenticated user
	require.NoError(err)
	create, ok := cmd.(domain.CreateSession)
	require.True(ok)
	require.Equal("alice", create.UserID)
	require.Equal("r1", create.RecipeID)
	require.True(create.IsPublic)
}

func TestDecodeJoinAndLeave(t *testing.T) {
	require := require.New(t)

	cmd, err := Decode([]byte(`{"type":"join_session","payload":{"sessionId":"s1"}}`), "bob")
	require.NoError(err)
	require.Equal(domain.JoinSession{UserID: "bob", SessionID: "s1"}, cmd)

	cmd, err = Decode([]byte(`{"type":"leave_session","payload":{"sessionId":"s1"}}`), "bob")
	require.NoError(err)
	require.Equal(domain.LeaveSession{UserID: "bob", SessionID: "s1"}, cmd)
}

func TestDecodeUpdateStep(t *testing.T) {
	require := require.New(t)

	frame := []byte(`{"type":"update_step","payload":{"sessionId":"s1","newStep":3,"notes":"reduce the heat"}}`)

	cmd, err := Decode(frame, "alice")
	require.NoError(err)
	require.Equal(domain.UpdateStep{UserID: "alice", SessionID: "s1", NewStep: 3, Notes: "reduce the heat"}, cmd)
}

func TestDecodeSessionMessage(t *testing.T) {
	require := require.New(t)

	frame := []byte(`{"type":"session_message","payload":{"sessionId":"s1","message":"smells great","messageType":"text"}}`)

	cmd, err := Decode(frame, "bob")
	require.NoError(err)
	require.Equal(domain.PostMessage{UserID: "bob", SessionID: "s1", Message: "smells great", MessageType: "text"}, cmd)
}

func TestDecodeSocialCommands(t *testing.T) {
	require := require.New(t)

	cmd, err := Decode([]byte(`{"type":"share_recipe","payload":{"recipeId":"r1","title":"Ratatouille","tags":["veggie"]}}`), "alice")
	require.NoError(err)
	share, ok := cmd.(domain.ShareRecipe)
	require.True(ok)
	require.Equal([]string{"veggie"}, share.Tags)

	cmd, err = Decode([]byte(`{"type":"like_share","payload":{"shareId":"sh1"}}`), "bob")
	require.NoError(err)
	require.Equal(domain.LikeShare{UserID: "bob", ShareID: "sh1"}, cmd)

	cmd, err = Decode([]byte(`{"type":"comment_share","payload":{"shareId":"sh1","comment":"looks amazing"}}`), "bob")
	require.NoError(err)
	require.Equal(domain.CommentShare{UserID: "bob", ShareID: "sh1", Comment: "looks amazing"}, cmd)

	cmd, err = Decode([]byte(`{"type":"share_scan","payload":{"ingredients":["tomato","basil"],"confidence":0.92}}`), "carol")
	require.NoError(err)
	scan, ok := cmd.(domain.ShareScan)
	require.True(ok)
	require.InDelta(0.92, scan.Confidence, 1e-9)

	cmd, err = Decode([]byte(`{"type":"request_collab","payload":{"targetUserId":"bob","message":"cook with me"}}`), "alice")
	require.NoError(err)
	require.Equal(domain.RequestCollab{UserID: "alice", TargetUserID: "bob", Message: "cook with me"}, cmd)

	cmd, err = Decode([]byte(`{"type":"update_status","payload":{"status":"cooking","recipeId":"r1","currentStep":2}}`), "alice")
	require.NoError(err)
	require.Equal(domain.UpdateStatus{UserID: "alice", Status: "cooking", RecipeID: "r1", CurrentStep: 2}, cmd)
}

func TestDecodeUnknownType(t *testing.T) {
	require := require.New(t)

	_, err := Decode([]byte(`{"type":"teleport","payload":{}}`), "alice")
	require.ErrorIs(err, errors.ErrUnknownCommand)
}

func TestDecodeMalformedFrame(t *testing.T) {
	require := require.New(t)

	_, err := Decode([]byte(`{"type":`), "alice")
	require.Error(err)
}

func TestDecodeMissingPayload(t *testing.T) {
	require := require.New(t)

	_, err := Decode([]byte(`{"type":"join_session"}`), "alice")
	require.Error(err)
}

func TestDecodeValidationFailure(t *testing.T) {
	require := require.New(t)

	// sessionId is required on join
	_, err := Decode([]byte(`{"type":"join_session","payload":{}}`), "alice")
	require.Error(err)

	// confidence must stay within [0,1]
	_, err = Decode([]byte(`{"type":"share_scan","payload":{"ingredients":["tomato"],"confidence":1.5}}`), "alice")
	require.Error(err)
}
