package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboard_Record(t *testing.T) {
	var score Scoreboard
	score.Record(SideRight)
	score.Record(SideRight)
	score.Record(SideLeft)
	score.Record(SideNone)

	assert.Equal(t, 2, score.Player, "a ball leaving on the right is the player's point")
	assert.Equal(t, 1, score.AI)
}

func TestSide_JSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Scored Side `json:"scored"`
	}{SideLeft})
	require.NoError(t, err)
	assert.JSONEq(t, `{"scored":"left"}`, string(payload))

	var decoded struct {
		Scored Side `json:"scored"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"scored":"right"}`), &decoded))
	assert.Equal(t, SideRight, decoded.Scored)

	assert.Error(t, json.Unmarshal([]byte(`{"scored":"up"}`), &decoded))
	assert.Equal(t, "none", SideNone.String())
}
