package entity

// Mark is the content of a single board cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"

	// PlayerTie is only used as the overall result of a competition.
	PlayerTie Mark = "-"
)

const (
	BoardSize = 9
	sideSize  = 3
)

// Opponent returns the other playing mark.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// IsPlayer reports whether the mark is one of the two playing marks.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Line is a triple of board indices.
type Line [3]int

// WinLines are scanned in this order: rows, columns, diagonals.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major.
type Board [BoardSize]Mark

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// Completes reports whether every cell of the line holds mark.
func (that Board) Completes(line Line, mark Mark) bool {
	return mark != EmptyCell &&
		that[line[0]] == mark &&
		that[line[1]] == mark &&
		that[line[2]] == mark
}

// IsValidCell reports whether cell is a board index.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// CellPosition converts a board index into zero-based row and column.
func CellPosition(cell int) (int, int) {
	return cell / sideSize, cell % sideSize
}
