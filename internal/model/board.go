package model

import (
	"fmt"
	"strings"
)

type MoveResult string

const (
	MoveNoWinner  MoveResult = "no_winner"
	MoveWhiteWins MoveResult = "white_wins"
	MoveBlackWins MoveResult = "black_wins"
	MoveInvalid   MoveResult = "invalid"
)

func winFor(c PlayerColor) MoveResult {
	if c == PlayerColorWhite {
		return MoveWhiteWins
	}
	return MoveBlackWins
}

// Winner returns the winning side if the result ends the game.
func (r MoveResult) Winner() (PlayerColor, bool) {
	switch r {
	case MoveWhiteWins:
		return PlayerColorWhite, true
	case MoveBlackWins:
		return PlayerColorBlack, true
	}
	return "", false
}

type Piece struct {
	Color    PlayerColor `json:"color"`
	Position Position    `json:"position"`
}

func (p *Piece) InPosition(pos Position) bool {
	return p.Position == pos
}

func (p Piece) Equal(other Piece) bool {
	return p.Color == other.Color && p.Position == other.Position
}

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Board holds the pawns of both sides. It is not safe for concurrent use.
type Board struct {
	white []*Piece
	black []*Piece
}

// NewBoard returns a board in the opening layout.
func NewBoard() *Board {
	b := &Board{}
	b.ResetPawns()
	return b
}

// ResetPawns restores the opening layout: black on row 0, white on the last row.
func (b *Board) ResetPawns() {
	b.white = make([]*Piece, 0, Size)
	b.black = make([]*Piece, 0, Size)
	for col := 0; col < Size; col++ {
		b.white = append(b.white, &Piece{Color: PlayerColorWhite, Position: Position{Row: Size - 1, Col: col}})
		b.black = append(b.black, &Piece{Color: PlayerColorBlack, Position: Position{Row: 0, Col: col}})
	}
}

func (b *Board) side(c PlayerColor) *[]*Piece {
	if c == PlayerColorWhite {
		return &b.white
	}
	return &b.black
}

// Pieces returns copies of the pieces of one side.
func (b *Board) Pieces(c PlayerColor) []Piece {
	pieces := *b.side(c)
	out := make([]Piece, len(pieces))
	for i, p := range pieces {
		out[i] = *p
	}
	return out
}

func (b *Board) Count(c PlayerColor) int {
	return len(*b.side(c))
}

// PieceAt returns the piece on pos, or nil if the tile is empty.
func (b *Board) PieceAt(pos Position) *Piece {
	for _, p := range b.white {
		if p.InPosition(pos) {
			return p
		}
	}
	for _, p := range b.black {
		if p.InPosition(pos) {
			return p
		}
	}
	return nil
}

// IsLegalMove reports whether piece may move to dest given the piece currently
// occupying dest (nil when empty). A legal move is one step forward onto an
// empty tile in the same column, or one step diagonally forward onto an
// opposing piece.
func (b *Board) IsLegalMove(piece *Piece, dest Position, occupant *Piece) bool {
	if piece == nil || !dest.Valid() {
		return false
	}
	if dest.Row != piece.Position.Row+piece.Color.forward() {
		return false
	}
	switch abs(dest.Col - piece.Position.Col) {
	case 0:
		return occupant == nil
	case 1:
		return occupant != nil && occupant.Color == piece.Color.Opponent()
	}
	return false
}

func (b *Board) owns(piece *Piece) bool {
	for _, p := range *b.side(piece.Color) {
		if p == piece {
			return true
		}
	}
	return false
}

// ApplyMove moves piece to dest, capturing any opposing piece there, and
// reports the outcome from the mover's perspective. Illegal moves leave the
// board untouched and return MoveInvalid.
func (b *Board) ApplyMove(piece *Piece, dest Position) MoveResult {
	if piece == nil || !b.owns(piece) {
		return MoveInvalid
	}
	occupant := b.PieceAt(dest)
	if !b.IsLegalMove(piece, dest, occupant) {
		return MoveInvalid
	}
	if occupant != nil {
		if occupant.Color == piece.Color {
			panic(fmt.Sprintf("model: %s pawn at %s captured its own side", piece.Color, dest))
		}
		b.remove(occupant)
	}
	piece.Position = dest
	return b.checkForWinner(piece)
}

func (b *Board) remove(piece *Piece) {
	side := b.side(piece.Color)
	kept := (*side)[:0]
	for _, p := range *side {
		if p != piece {
			kept = append(kept, p)
		}
	}
	*side = kept
}

func (b *Board) checkForWinner(moved *Piece) MoveResult {
	opponent := moved.Color.Opponent()
	switch {
	case b.Count(opponent) == 0:
		return winFor(moved.Color)
	case moved.Position.Row == moved.Color.backRank():
		return winFor(moved.Color)
	case !b.HasLegalMove(opponent):
		return winFor(moved.Color)
	}
	return MoveNoWinner
}

// LegalMoves lists every legal move available to one side.
func (b *Board) LegalMoves(c PlayerColor) []SimpleMove {
	var moves []SimpleMove
	for _, p := range *b.side(c) {
		row := p.Position.Row + c.forward()
		for _, dc := range []int{-1, 0, 1} {
			col := p.Position.Col + dc
			if !onBoard(row, col) {
				continue
			}
			dest := Position{Row: row, Col: col}
			if b.IsLegalMove(p, dest, b.PieceAt(dest)) {
				moves = append(moves, SimpleMove{From: p.Position, To: dest})
			}
		}
	}
	return moves
}

func (b *Board) HasLegalMove(c PlayerColor) bool {
	return len(b.LegalMoves(c)) > 0
}

// TileGrid returns a Size x Size snapshot with a copy of the piece on each
// occupied tile and nil elsewhere. It is rebuilt on every call.
func (b *Board) TileGrid() [][]*Piece {
	grid := make([][]*Piece, Size)
	for row := range grid {
		grid[row] = make([]*Piece, Size)
	}
	for _, side := range [][]*Piece{b.white, b.black} {
		for _, p := range side {
			cp := *p
			grid[p.Position.Row][p.Position.Col] = &cp
		}
	}
	return grid
}

// IsMirrorSymmetric reports whether the board reads the same with its columns reversed.
func (b *Board) IsMirrorSymmetric() bool {
	grid := b.TileGrid()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size/2; col++ {
			left, right := grid[row][col], grid[row][Size-1-col]
			if (left == nil) != (right == nil) {
				return false
			}
			if left != nil && left.Color != right.Color {
				return false
			}
		}
	}
	return true
}

// Layout renders the board in the literal layout format read by ParseBoard.
func (b *Board) Layout() []string {
	grid := b.TileGrid()
	layout := make([]string, Size)
	tokens := make([]string, Size)
	for row := range grid {
		for col, p := range grid[row] {
			if p == nil {
				tokens[col] = markerEmpty
			} else {
				tokens[col] = p.Color.marker()
			}
		}
		layout[row] = strings.Join(tokens, " ")
	}
	return layout
}

func (b *Board) key() string {
	return strings.Join(b.Layout(), "/")
}

// SameConfiguration reports whether both boards hold the same set of
// (color, position) pairs, regardless of piece order.
func (b *Board) SameConfiguration(other *Board) bool {
	if other == nil || b.Count(PlayerColorWhite) != other.Count(PlayerColorWhite) ||
		b.Count(PlayerColorBlack) != other.Count(PlayerColorBlack) {
		return false
	}
	return b.key() == other.key()
}

func (b *Board) Clone() *Board {
	clone := &Board{
		white: make([]*Piece, 0, len(b.white)),
		black: make([]*Piece, 0, len(b.black)),
	}
	for _, p := range b.white {
		cp := *p
		clone.white = append(clone.white, &cp)
	}
	for _, p := range b.black {
		cp := *p
		clone.black = append(clone.black, &cp)
	}
	return clone
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
