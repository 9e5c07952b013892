package model

import (
	"fmt"
	"slices"
	"strings"
)

// Box is a catalogued position for one black turn together with the moves
// black may choose from in it.
type Box struct {
	*Board
	ID    string
	Turn  int
	Moves []*CandidateMove
}

// BoxError describes an authoring mistake in a box.
type BoxError struct {
	BoxID  string
	Turn   int
	Move   *CandidateMove
	Reason string
}

func (e *BoxError) Error() string {
	if e.Move == nil {
		return fmt.Sprintf("box %s turn %d: %s", e.BoxID, e.Turn, e.Reason)
	}
	return fmt.Sprintf("box %s turn %d: %s: %s", e.BoxID, e.Turn, e.Move, e.Reason)
}

// NewBox builds a box from a literal layout and checks every candidate move
// against it: the origin must hold a black pawn, the destination must be on
// the board, a forward move needs an empty tile and a diagonal move needs a
// white pawn to take.
func NewBox(id string, turn int, layout []string, moves ...*CandidateMove) (*Box, error) {
	if id == "" {
		return nil, &BoxError{Turn: turn, Reason: "missing id"}
	}
	if turn <= 0 || turn%2 != 0 {
		return nil, &BoxError{BoxID: id, Turn: turn, Reason: "turn must be a positive even number"}
	}
	board, err := ParseBoard(layout)
	if err != nil {
		return nil, fmt.Errorf("box %s turn %d: %w", id, turn, err)
	}
	box := &Box{Board: board, ID: id, Turn: turn, Moves: moves}
	for _, m := range moves {
		if err := box.checkMove(m); err != nil {
			return nil, err
		}
	}
	return box, nil
}

// MustBox is NewBox for authored catalogue data.
func MustBox(id string, turn int, layout []string, moves ...*CandidateMove) *Box {
	box, err := NewBox(id, turn, layout, moves...)
	if err != nil {
		panic(err)
	}
	return box
}

func (b *Box) checkMove(m *CandidateMove) error {
	if m == nil {
		return &BoxError{BoxID: b.ID, Turn: b.Turn, Reason: "nil move"}
	}
	fail := func(reason string) error {
		return &BoxError{BoxID: b.ID, Turn: b.Turn, Move: m, Reason: reason}
	}
	if !m.Movement.valid() {
		return fail("unknown movement")
	}
	if p := b.PieceAt(m.Origin); p == nil || p.Color != LearningSide {
		return fail("origin must hold a black pawn")
	}
	dest, ok := m.Destination()
	if !ok {
		return fail("destination is outside the board")
	}
	occupant := b.PieceAt(dest)
	if m.Movement == MovementForward {
		if occupant != nil {
			return fail("expecting an empty tile in front")
		}
		return nil
	}
	if occupant == nil || occupant.Color != LearningSide.Opponent() {
		return fail("expecting to take a white pawn")
	}
	return nil
}

// EnabledMoves returns the moves that have not been eliminated, in authored order.
func (b *Box) EnabledMoves() []*CandidateMove {
	var out []*CandidateMove
	for _, m := range b.Moves {
		if !m.Disabled() {
			out = append(out, m)
		}
	}
	return out
}

func (b *Box) HasMove(m *CandidateMove) bool {
	return slices.Contains(b.Moves, m)
}

// MoveTo returns the enabled candidate move from origin to dest, if any.
func (b *Box) MoveTo(origin, dest Position) (*CandidateMove, bool) {
	for _, m := range b.Moves {
		if m.Disabled() || m.Origin != origin {
			continue
		}
		if to, ok := m.Destination(); ok && to == dest {
			return m, true
		}
	}
	return nil, false
}

// Reset re-enables every move of the box.
func (b *Box) Reset() {
	for _, m := range b.Moves {
		m.Enable()
	}
}

// mirror reflects the box left to right. Diagonal moves swap direction.
func (b *Box) mirror() (*Box, error) {
	layout := b.Layout()
	for row, line := range layout {
		tokens := strings.Split(line, " ")
		slices.Reverse(tokens)
		layout[row] = strings.Join(tokens, " ")
	}
	moves := make([]*CandidateMove, len(b.Moves))
	for i, m := range b.Moves {
		moves[i] = m.mirror()
	}
	return NewBox(b.ID+"r", b.Turn, layout, moves...)
}
