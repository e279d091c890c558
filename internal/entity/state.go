package entity

// GameState is the overall outcome of a game. Every value but StateInProgress is terminal.
type GameState uint8

const (
	StateInProgress GameState = iota
	StateStalemate
	StateVictoryO
	StateVictoryX
)

// VictoryFor returns the victory state of the given player, StateInProgress for PlayerNone.
func VictoryFor(player Player) GameState {
	switch player {
	case PlayerO:
		return StateVictoryO
	case PlayerX:
		return StateVictoryX
	default:
		return StateInProgress
	}
}

func (that GameState) IsTerminal() bool {
	return that != StateInProgress
}

func (that GameState) String() string {
	switch that {
	case StateStalemate:
		return "stalemate"
	case StateVictoryO:
		return "o wins"
	case StateVictoryX:
		return "x wins"
	default:
		return "in progress"
	}
}
