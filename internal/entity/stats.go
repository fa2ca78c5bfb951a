package entity

// PlayerStats are lifetime statistics seen from one side.
type PlayerStats struct {
	TotalGames    int `json:"total_games"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	Draws         int `json:"draws"`
	WinStreak     int `json:"win_streak"`
	BestWinStreak int `json:"best_win_streak"`
}

// Record counts a finished round for side. Draws and losses break the streak.
func (that *PlayerStats) Record(outcome Outcome, side Mark) {
	if !outcome.IsTerminal() {
		return
	}

	that.TotalGames++

	switch {
	case outcome.IsDraw():
		that.Draws++
		that.WinStreak = 0
	case outcome.Winner == side:
		that.Wins++
		that.WinStreak++
		if that.WinStreak > that.BestWinStreak {
			that.BestWinStreak = that.WinStreak
		}
	default:
		that.Losses++
		that.WinStreak = 0
	}
}

// WinRate is the share of won games in percent.
func (that PlayerStats) WinRate() float64 {
	if that.TotalGames == 0 {
		return 0
	}

	return float64(that.Wins) * 100 / float64(that.TotalGames)
}
