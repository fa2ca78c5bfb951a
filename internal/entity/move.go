package entity

import "fmt"

// Move is one entry of the append-only move log of a round.
type Move struct {
	Seq  int  `json:"seq"`
	Mark Mark `json:"mark"`
	Row  int  `json:"row"`
	Col  int  `json:"col"`
}

func NewMove(seq int, mark Mark, cell int) Move {
	row, col := CellPosition(cell)

	return Move{
		Seq:  seq,
		Mark: mark,
		Row:  row,
		Col:  col,
	}
}

// Cell returns the board index of the move.
func (that Move) Cell() int {
	return that.Row*sideSize + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("Move %d: %s at row %d, column %d", that.Seq, that.Mark, that.Row+1, that.Col+1)
}
