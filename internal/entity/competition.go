package entity

const (
	MinRounds = 1
	MaxRounds = 10
)

// RoundResult is appended once per completed round and never changed afterwards.
type RoundResult struct {
	Round   int     `json:"round"`
	Outcome Outcome `json:"outcome"`
	Moves   []Move  `json:"moves"`
}

func (that RoundResult) Summary() string {
	if that.Outcome.IsWin() {
		return string(that.Outcome.Winner) + " wins"
	}

	return "Draw"
}

type Standings struct {
	WinsX int `json:"wins_x"`
	WinsO int `json:"wins_o"`
	Draws int `json:"draws"`
}

func (that *Standings) Record(outcome Outcome) {
	switch {
	case outcome.IsDraw():
		that.Draws++
	case outcome.Winner == PlayerX:
		that.WinsX++
	case outcome.Winner == PlayerO:
		that.WinsO++
	}
}

// Leader returns the side with strictly more wins, or PlayerTie.
func (that Standings) Leader() Mark {
	switch {
	case that.WinsX > that.WinsO:
		return PlayerX
	case that.WinsO > that.WinsX:
		return PlayerO
	default:
		return PlayerTie
	}
}

// RoundStatus is reported after a round end has been recorded.
type RoundStatus struct {
	Result        RoundResult `json:"result"`
	Complete      bool        `json:"complete"`
	NextRound     int         `json:"next_round,omitempty"`
	OverallWinner Mark        `json:"overall_winner,omitempty"`
}

type CompetitionState struct {
	TotalRounds   int           `json:"total_rounds"`
	CurrentRound  int           `json:"current_round"`
	Results       []RoundResult `json:"results"`
	Standings     Standings     `json:"standings"`
	Complete      bool          `json:"complete"`
	OverallWinner Mark          `json:"overall_winner,omitempty"`
}
