package entity

import "time"

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// RoundState is the controller view of the active round.
// While the status is ongoing Turn names the side to move; once finished Turn is empty.
type RoundState struct {
	Board   Board   `json:"board"`
	Status  string  `json:"status"`
	Turn    Mark    `json:"turn"`
	Outcome Outcome `json:"outcome"`
	Moves   []Move  `json:"moves"`
}

func (that RoundState) IsFinished() bool {
	return that.Status == StatusFinished
}

// Settings configure a new session.
type Settings struct {
	PlayerXName  string     `json:"player_x_name"`
	PlayerOName  string     `json:"player_o_name"`
	VsComputer   bool       `json:"vs_computer"`
	ComputerMark Mark       `json:"computer_mark,omitempty"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	Rounds       int        `json:"rounds"`
}

// Session is the persisted snapshot of one pairing of two sides.
type Session struct {
	ID          string           `json:"id"`
	Players     []Player         `json:"players"`
	Difficulty  Difficulty       `json:"difficulty,omitempty"`
	Round       RoundState       `json:"round"`
	Competition CompetitionState `json:"competition"`
	Stats       PlayerStats      `json:"stats"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ComputerMark returns the mark played by the computer, or EmptyCell.
func (that *Session) ComputerMark() Mark {
	for _, player := range that.Players {
		if player.Computer {
			return player.Mark
		}
	}

	return EmptyCell
}

func (that *Session) PlayerName(mark Mark) string {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player.Name
		}
	}

	return string(mark)
}

// CompetitionRecord is the archived summary of a finished competition.
type CompetitionRecord struct {
	ID            int64     `json:"id"`
	SessionID     string    `json:"session_id"`
	PlayerXName   string    `json:"player_x_name"`
	PlayerOName   string    `json:"player_o_name"`
	TotalRounds   int       `json:"total_rounds"`
	Standings     Standings `json:"standings"`
	OverallWinner Mark      `json:"overall_winner"`
	FinishedAt    time.Time `json:"finished_at"`
}
