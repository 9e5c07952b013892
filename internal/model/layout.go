package model

import (
	"fmt"
	"strings"
)

const (
	markerWhite = "W"
	markerBlack = "B"
	markerEmpty = "-"
)

// ParseBoard builds a board from a literal layout: Size rows, each holding
// Size tokens separated by single spaces. "W" is a white pawn, "B" a black
// pawn and "-" an empty tile.
//
//	[]string{"B B B", "- - -", "W W W"} is the opening layout.
func ParseBoard(layout []string) (*Board, error) {
	if len(layout) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidLayout, Size, len(layout))
	}
	b := &Board{}
	for row, line := range layout {
		tokens := strings.Split(line, " ")
		if len(tokens) != Size {
			return nil, fmt.Errorf("%w: row %d %q: expected %d tokens, got %d", ErrInvalidLayout, row, line, Size, len(tokens))
		}
		for col, token := range tokens {
			pos := Position{Row: row, Col: col}
			switch token {
			case markerEmpty:
			case markerWhite:
				b.white = append(b.white, &Piece{Color: PlayerColorWhite, Position: pos})
			case markerBlack:
				b.black = append(b.black, &Piece{Color: PlayerColorBlack, Position: pos})
			default:
				return nil, fmt.Errorf("%w: row %d %q: unknown token %q", ErrInvalidLayout, row, line, token)
			}
		}
	}
	if len(b.white) > Size || len(b.black) > Size {
		return nil, fmt.Errorf("%w: more than %d pawns per side", ErrInvalidLayout, Size)
	}
	return b, nil
}

// MustParseBoard is ParseBoard for authored layouts and test fixtures.
func MustParseBoard(layout ...string) *Board {
	b, err := ParseBoard(layout)
	if err != nil {
		panic(err)
	}
	return b
}
