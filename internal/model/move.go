package model

import "fmt"

type Movement string

const (
	MovementForward       Movement = "forward"
	MovementDiagonalLeft  Movement = "diagonal_left"
	MovementDiagonalRight Movement = "diagonal_right"
)

func (m Movement) valid() bool {
	switch m {
	case MovementForward, MovementDiagonalLeft, MovementDiagonalRight:
		return true
	}
	return false
}

func (m Movement) colDelta() int {
	switch m {
	case MovementDiagonalLeft:
		return -1
	case MovementDiagonalRight:
		return 1
	}
	return 0
}

func (m Movement) mirror() Movement {
	switch m {
	case MovementDiagonalLeft:
		return MovementDiagonalRight
	case MovementDiagonalRight:
		return MovementDiagonalLeft
	}
	return m
}

// MoveTag labels a candidate move for display, like the coloured beads of a matchbox.
type MoveTag string

const (
	TagGreen  MoveTag = "green"
	TagRed    MoveTag = "red"
	TagBlue   MoveTag = "blue"
	TagYellow MoveTag = "yellow"
)

// CandidateMove is a move of the learning side authored inside a box. Only the
// disabled flag ever changes after construction.
type CandidateMove struct {
	Origin   Position
	Movement Movement
	Tag      MoveTag
	disabled bool
}

func NewCandidateMove(origin Position, tag MoveTag, movement Movement) *CandidateMove {
	return &CandidateMove{Origin: origin, Movement: movement, Tag: tag}
}

// Destination is derived from the origin and movement alone. ok is false when
// the move would leave the board.
func (m *CandidateMove) Destination() (Position, bool) {
	row := m.Origin.Row + LearningSide.forward()
	col := m.Origin.Col + m.Movement.colDelta()
	return Position{Row: row, Col: col}, onBoard(row, col)
}

func (m *CandidateMove) Disable() { m.disabled = true }

func (m *CandidateMove) Enable() { m.disabled = false }

func (m *CandidateMove) Disabled() bool { return m.disabled }

func (m *CandidateMove) mirror() *CandidateMove {
	return NewCandidateMove(m.Origin.mirror(), m.Tag, m.Movement.mirror())
}

func (m *CandidateMove) String() string {
	return fmt.Sprintf("%s %s", m.Origin, m.Movement)
}
