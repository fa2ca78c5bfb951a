package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	colorX    = "#E06C75"
	colorO    = "#61AFEF"
	colorInfo = "#98C379"
	colorWarn = "#E5C07B"
)

// renderer writes the board and the status lines with the colours the output profile supports.
type renderer struct {
	out *termenv.Output
}

func (that *renderer) mark(mark entity.Mark, highlight bool) string {
	style := that.out.String(string(mark)).Bold()

	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.out.Color(colorX))
	case entity.PlayerO:
		style = style.Foreground(that.out.Color(colorO))
	}

	if highlight {
		style = style.Reverse()
	}

	return style.String()
}

func (that *renderer) board(board entity.Board, outcome entity.Outcome) string {
	winning := map[int]bool{}
	if outcome.IsWin() && outcome.Line != nil {
		for _, cell := range outcome.Line {
			winning[cell] = true
		}
	}

	var sb strings.Builder
	for row := range 3 {
		cells := make([]string, 0, 3)
		for col := range 3 {
			cell := row*3 + col
			if board[cell] == entity.EmptyCell {
				cells = append(cells, that.out.String(strconv.Itoa(cell+1)).Faint().String())
				continue
			}

			cells = append(cells, that.mark(board[cell], winning[cell]))
		}

		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}

	return sb.String()
}

func (that *renderer) status(session *entity.Session) string {
	round := session.Round
	competition := session.Competition

	if !round.IsFinished() {
		return fmt.Sprintf("Round %d of %d: %s (%s) to move",
			competition.CurrentRound, competition.TotalRounds, session.PlayerName(round.Turn), that.mark(round.Turn, false))
	}

	finished := competition.CurrentRound
	if n := len(competition.Results); n > 0 {
		finished = competition.Results[n-1].Round
	}

	if round.Outcome.IsDraw() {
		return that.info(fmt.Sprintf("Round %d is a draw", finished))
	}

	return that.info(fmt.Sprintf("%s wins round %d", session.PlayerName(round.Outcome.Winner), finished))
}

func (that *renderer) standings(session *entity.Session) string {
	standings := session.Competition.Standings
	line := fmt.Sprintf("Standings: %s %d, %s %d, draws %d",
		session.PlayerName(entity.PlayerX), standings.WinsX,
		session.PlayerName(entity.PlayerO), standings.WinsO,
		standings.Draws)

	if !session.Competition.Complete {
		return line
	}

	if session.Competition.OverallWinner == entity.PlayerTie {
		return line + "\n" + that.info("Competition over: it's a tie")
	}

	return line + "\n" + that.info("Competition over: "+session.PlayerName(session.Competition.OverallWinner)+" wins")
}

func (that *renderer) results(session *entity.Session) string {
	var sb strings.Builder
	for _, result := range session.Competition.Results {
		fmt.Fprintf(&sb, "Round %d: %s\n", result.Round, result.Summary())
	}

	return sb.String()
}

// allMoves - the move log of every finished round, then the round in play.
func (that *renderer) allMoves(session *entity.Session) string {
	var sb strings.Builder
	for _, result := range session.Competition.Results {
		fmt.Fprintf(&sb, "Round %d (%s)\n", result.Round, result.Summary())
		for _, move := range result.Moves {
			sb.WriteString("  " + move.String() + "\n")
		}
	}

	if session.Round.IsFinished() || len(session.Round.Moves) == 0 {
		if sb.Len() == 0 {
			return "No moves yet\n"
		}

		return sb.String()
	}

	fmt.Fprintf(&sb, "Round %d (in play)\n", session.Competition.CurrentRound)
	for _, move := range session.Round.Moves {
		sb.WriteString("  " + move.String() + "\n")
	}

	return sb.String()
}

func (that *renderer) stats(stats entity.PlayerStats) string {
	return fmt.Sprintf("Games %d, wins %d, losses %d, draws %d, win rate %.1f%%, streak %d, best streak %d",
		stats.TotalGames, stats.Wins, stats.Losses, stats.Draws, stats.WinRate(), stats.WinStreak, stats.BestWinStreak)
}

func (that *renderer) info(text string) string {
	return that.out.String(text).Foreground(that.out.Color(colorInfo)).String()
}

func (that *renderer) warn(text string) string {
	return that.out.String(text).Foreground(that.out.Color(colorWarn)).String()
}
