package entity

type OutcomeStatus string

const (
	OutcomeInProgress OutcomeStatus = "in_progress"
	OutcomeWin        OutcomeStatus = "win"
	OutcomeDraw       OutcomeStatus = "draw"
)

// Outcome is the evaluation of a board: in progress, a win with its line, or a draw.
type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Winner Mark          `json:"winner,omitempty"`
	Line   *Line         `json:"line,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: OutcomeInProgress}
}

func Win(winner Mark, line Line) Outcome {
	return Outcome{Status: OutcomeWin, Winner: winner, Line: &line}
}

func Draw() Outcome {
	return Outcome{Status: OutcomeDraw}
}

func (that Outcome) IsWin() bool {
	return that.Status == OutcomeWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == OutcomeDraw
}

func (that Outcome) IsTerminal() bool {
	return that.IsWin() || that.IsDraw()
}
