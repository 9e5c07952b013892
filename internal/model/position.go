package model

import "fmt"

// Size is the board dimension. The authored catalogue is written for it.
const Size = 3

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) (Position, error) {
	if !onBoard(row, col) {
		return Position{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return Position{Row: row, Col: col}, nil
}

// MustPosition is NewPosition for authored data; it panics on out of range coordinates.
func MustPosition(row, col int) Position {
	p, err := NewPosition(row, col)
	if err != nil {
		panic(err)
	}
	return p
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Valid reports whether p lies on the board. Positions decoded from requests
// bypass NewPosition, so transport code checks this.
func (p Position) Valid() bool {
	return onBoard(p.Row, p.Col)
}

func (p Position) mirror() Position {
	return Position{Row: p.Row, Col: Size - 1 - p.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("[%d,%d]", p.Row, p.Col)
}
