package entity

import "time"

// GameRecord - a finished game as stored by the repository.
type GameRecord struct {
	ID         string    `json:"id"`
	EngineX    string    `json:"engine_x"`
	EngineO    string    `json:"engine_o"`
	Moves      []Move    `json:"moves"`
	Board      Grid      `json:"board"`
	Winner     Player    `json:"winner"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *GameRecord) IsDraw() bool {
	return that.Winner == PlayerTie
}

// Tally - results of a series of games.
type Tally struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

func (that *Tally) Add(winner Player) {
	switch winner {
	case PlayerX:
		that.XWins++
	case PlayerO:
		that.OWins++
	default:
		that.Draws++
	}
}

func (that Tally) Total() int {
	return that.XWins + that.OWins + that.Draws
}
