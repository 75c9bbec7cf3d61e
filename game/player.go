package game

import "fmt"

// Side names a goal: the wall the ball left through.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

var sideName = map[Side]string{
	SideNone:  "none",
	SideLeft:  "left",
	SideRight: "right",
}

func (s Side) String() string {
	return sideName[s]
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Scoreboard tallies reset events on top of the simulation, which itself
// keeps no score.
type Scoreboard struct {
	Player int `json:"player"`
	AI     int `json:"ai"`
}

// Record credits the player when the ball left on the AI's side and the AI
// when it left on the player's side.
func (s *Scoreboard) Record(exit Side) {
	switch exit {
	case SideRight:
		s.Player++
	case SideLeft:
		s.AI++
	}
}

func (s *Side) UnmarshalText(text []byte) error {
	for side, name := range sideName {
		if name == string(text) {
			*s = side
			return nil
		}
	}
	return fmt.Errorf("unknown side %q", text)
}
