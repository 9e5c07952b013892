package model

import (
	"errors"
	"slices"
	"testing"
)

func TestNewPosition(t *testing.T) {
	tests := []struct {
		row, col int
		wantErr  bool
	}{
		{0, 0, false},
		{2, 2, false},
		{1, 2, false},
		{-1, 0, true},
		{0, 3, true},
		{3, 3, true},
	}
	for _, tt := range tests {
		p, err := NewPosition(tt.row, tt.col)
		if tt.wantErr {
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("NewPosition(%d, %d) error = %v, want ErrOutOfBounds", tt.row, tt.col, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewPosition(%d, %d) unexpected error: %v", tt.row, tt.col, err)
		}
		if p.Row != tt.row || p.Col != tt.col {
			t.Errorf("NewPosition(%d, %d) = %v", tt.row, tt.col, p)
		}
	}
}

func TestNewBoardOpeningLayout(t *testing.T) {
	b := NewBoard()
	want := []string{"B B B", "- - -", "W W W"}
	if got := b.Layout(); !slices.Equal(got, want) {
		t.Errorf("Layout() = %q, want %q", got, want)
	}
	if b.Count(PlayerColorWhite) != Size || b.Count(PlayerColorBlack) != Size {
		t.Errorf("counts = %d/%d, want %d each", b.Count(PlayerColorWhite), b.Count(PlayerColorBlack), Size)
	}
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{"too few rows", []string{"B B B", "- - -"}},
		{"too many tokens", []string{"B B B B", "- - -", "W W W"}},
		{"double space", []string{"B  B B", "- - -", "W W W"}},
		{"unknown token", []string{"B B X", "- - -", "W W W"}},
		{"too many white", []string{"W B B", "- - -", "W W W"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBoard(tt.layout); !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("ParseBoard(%q) error = %v, want ErrInvalidLayout", tt.layout, err)
			}
		})
	}
}

func TestIsLegalMove(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		from   Position
		to     Position
		want   bool
	}{
		{"black forward to empty", []string{"- B -", "- - -", "- W -"}, Position{0, 1}, Position{1, 1}, true},
		{"black forward blocked", []string{"- B -", "- W -", "- - -"}, Position{0, 1}, Position{1, 1}, false},
		{"black diagonal to empty", []string{"- B -", "- - -", "- W -"}, Position{0, 1}, Position{1, 0}, false},
		{"black diagonal right takes white", []string{"- B -", "- - W", "- - -"}, Position{0, 1}, Position{1, 2}, true},
		{"black diagonal left takes white", []string{"- B -", "W - -", "- - -"}, Position{0, 1}, Position{1, 0}, true},
		{"black two steps", []string{"- B -", "- - -", "- - W"}, Position{0, 1}, Position{2, 1}, false},
		{"black sideways", []string{"- B -", "- - -", "- - W"}, Position{0, 1}, Position{0, 0}, false},
		{"black backwards", []string{"- - -", "- B -", "- - W"}, Position{1, 1}, Position{0, 1}, false},
		{"black diagonal onto black", []string{"- B -", "B - -", "- - W"}, Position{0, 1}, Position{1, 0}, false},
		{"white forward to empty", []string{"- B -", "- - -", "- W -"}, Position{2, 1}, Position{1, 1}, true},
		{"white forward blocked", []string{"- B -", "- B -", "- W -"}, Position{2, 1}, Position{1, 1}, false},
		{"white diagonal right takes black", []string{"- - -", "- - B", "- W -"}, Position{2, 1}, Position{1, 2}, true},
		{"white diagonal left takes black", []string{"- - -", "B - -", "- W -"}, Position{2, 1}, Position{1, 0}, true},
		{"white two steps", []string{"- B -", "- - -", "- - W"}, Position{2, 2}, Position{0, 2}, false},
		{"white backwards", []string{"- B -", "- W -", "- - -"}, Position{1, 1}, Position{2, 1}, false},
		{"off the board", []string{"- - -", "- - -", "W - -"}, Position{2, 0}, Position{1, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustParseBoard(tt.layout...)
			piece := b.PieceAt(tt.from)
			if piece == nil {
				t.Fatalf("no piece at %v", tt.from)
			}
			if got := b.IsLegalMove(piece, tt.to, b.PieceAt(tt.to)); got != tt.want {
				t.Errorf("IsLegalMove(%v -> %v) = %t, want %t", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name       string
		layout     []string
		from, to   Position
		want       MoveResult
		wantLayout []string
	}{
		{
			name:       "opening advance",
			layout:     []string{"B B B", "- - -", "W W W"},
			from:       Position{2, 0},
			to:         Position{1, 0},
			want:       MoveNoWinner,
			wantLayout: []string{"B B B", "W - -", "- W W"},
		},
		{
			name:       "white takes the last black pawn",
			layout:     []string{"- - -", "- B -", "W - W"},
			from:       Position{2, 0},
			to:         Position{1, 1},
			want:       MoveWhiteWins,
			wantLayout: []string{"- - -", "- W -", "- - W"},
		},
		{
			name:       "black takes the last white pawn",
			layout:     []string{"- - B", "B - -", "- W -"},
			from:       Position{1, 0},
			to:         Position{2, 1},
			want:       MoveBlackWins,
			wantLayout: []string{"- - B", "- - -", "- B -"},
		},
		{
			name:       "black reaches the back rank",
			layout:     []string{"- - B", "B W -", "- - -"},
			from:       Position{1, 0},
			to:         Position{2, 0},
			want:       MoveBlackWins,
			wantLayout: []string{"- - B", "- W -", "B - -"},
		},
		{
			name:       "white reaches the back rank",
			layout:     []string{"- - B", "W - -", "- - W"},
			from:       Position{1, 0},
			to:         Position{0, 0},
			want:       MoveWhiteWins,
			wantLayout: []string{"W - B", "- - -", "- - W"},
		},
		{
			name:       "black left without a move",
			layout:     []string{"B - -", "- - -", "W - -"},
			from:       Position{2, 0},
			to:         Position{1, 0},
			want:       MoveWhiteWins,
			wantLayout: []string{"B - -", "W - -", "- - -"},
		},
		{
			name:       "diagonal onto an empty tile",
			layout:     []string{"- - B", "B W -", "- - -"},
			from:       Position{1, 0},
			to:         Position{2, 1},
			want:       MoveInvalid,
			wantLayout: []string{"- - B", "B W -", "- - -"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustParseBoard(tt.layout...)
			if got := b.ApplyMove(b.PieceAt(tt.from), tt.to); got != tt.want {
				t.Errorf("ApplyMove(%v -> %v) = %s, want %s", tt.from, tt.to, got, tt.want)
			}
			if got := b.Layout(); !slices.Equal(got, tt.wantLayout) {
				t.Errorf("Layout() = %q, want %q", got, tt.wantLayout)
			}
		})
	}
}

func TestApplyMoveCaptureCounts(t *testing.T) {
	b := MustParseBoard("B B B", "- W -", "W - W")
	whiteBefore := b.Count(PlayerColorWhite)

	if res := b.ApplyMove(b.PieceAt(Position{0, 0}), Position{1, 1}); res != MoveNoWinner {
		t.Fatalf("capture result = %s, want %s", res, MoveNoWinner)
	}
	if got := b.Count(PlayerColorWhite); got != whiteBefore-1 {
		t.Errorf("white count = %d, want %d", got, whiteBefore-1)
	}
	if p := b.PieceAt(Position{1, 1}); p == nil || p.Color != PlayerColorBlack {
		t.Errorf("PieceAt(1,1) = %v, want black pawn", p)
	}
	if b.PieceAt(Position{0, 0}) != nil {
		t.Error("origin tile still occupied after capture")
	}
}

func TestApplyMoveRejectsForeignPiece(t *testing.T) {
	b := NewBoard()
	stranger := &Piece{Color: PlayerColorWhite, Position: Position{2, 0}}
	if res := b.ApplyMove(stranger, Position{1, 0}); res != MoveInvalid {
		t.Errorf("ApplyMove with a piece from another board = %s, want %s", res, MoveInvalid)
	}
	if res := b.ApplyMove(nil, Position{1, 0}); res != MoveInvalid {
		t.Errorf("ApplyMove(nil) = %s, want %s", res, MoveInvalid)
	}
}

func TestPlayFromOpening(t *testing.T) {
	b := NewBoard()
	moves := []struct {
		from, to Position
		want     MoveResult
	}{
		{Position{2, 0}, Position{1, 0}, MoveNoWinner},
		{Position{0, 2}, Position{1, 2}, MoveNoWinner},
		{Position{2, 2}, Position{1, 2}, MoveInvalid}, // blocked
		{Position{2, 1}, Position{1, 2}, MoveNoWinner},
		{Position{0, 1}, Position{1, 1}, MoveNoWinner},
		{Position{2, 2}, Position{1, 1}, MoveNoWinner},
		{Position{0, 0}, Position{1, 1}, MoveNoWinner},
		{Position{1, 0}, Position{0, 0}, MoveWhiteWins},
	}
	for i, m := range moves {
		if got := b.ApplyMove(b.PieceAt(m.from), m.to); got != m.want {
			t.Fatalf("move %d %v -> %v = %s, want %s (board %q)", i, m.from, m.to, got, m.want, b.Layout())
		}
	}
	want := []string{"W - -", "- B W", "- - -"}
	if got := b.Layout(); !slices.Equal(got, want) {
		t.Errorf("final layout = %q, want %q", got, want)
	}
}

func TestLegalMoves(t *testing.T) {
	b := NewBoard()
	if got := len(b.LegalMoves(PlayerColorWhite)); got != 3 {
		t.Errorf("white opening moves = %d, want 3", got)
	}

	b = MustParseBoard("B B B", "W - -", "- W W")
	want := []SimpleMove{
		{From: Position{0, 1}, To: Position{1, 0}},
		{From: Position{0, 1}, To: Position{1, 1}},
		{From: Position{0, 2}, To: Position{1, 2}},
	}
	got := b.LegalMoves(PlayerColorBlack)
	if len(got) != len(want) {
		t.Fatalf("LegalMoves(black) = %v, want %v", got, want)
	}
	for _, m := range want {
		if !slices.Contains(got, m) {
			t.Errorf("LegalMoves(black) missing %v", m)
		}
	}

	if MustParseBoard("B - -", "W - -", "- - -").HasLegalMove(PlayerColorBlack) {
		t.Error("blocked black pawn reported a legal move")
	}
}

func TestTileGridIsASnapshot(t *testing.T) {
	b := MustParseBoard("B - -", "- W -", "- - -")
	first := b.TileGrid()
	first[0][0].Color = PlayerColorWhite
	first[2][2] = &Piece{Color: PlayerColorBlack}

	second := b.TileGrid()
	if p := second[0][0]; p == nil || p.Color != PlayerColorBlack {
		t.Errorf("TileGrid()[0][0] = %v after editing an earlier grid", p)
	}
	if second[2][2] != nil {
		t.Error("TileGrid()[2][2] picked up a piece from an earlier grid")
	}
	if p := second[1][1]; p == nil || p.Position != (Position{1, 1}) {
		t.Errorf("TileGrid()[1][1] = %v, want white at [1,1]", p)
	}
}

func TestIsMirrorSymmetric(t *testing.T) {
	tests := []struct {
		layout []string
		want   bool
	}{
		{[]string{"B B B", "- - -", "W W W"}, true},
		{[]string{"B B B", "- W -", "W - W"}, true},
		{[]string{"B B B", "W - -", "- W W"}, false},
		{[]string{"B - W", "- - -", "- - -"}, false},
	}
	for _, tt := range tests {
		if got := MustParseBoard(tt.layout...).IsMirrorSymmetric(); got != tt.want {
			t.Errorf("IsMirrorSymmetric(%q) = %t, want %t", tt.layout, got, tt.want)
		}
	}
}

func TestSameConfigurationAndClone(t *testing.T) {
	a := MustParseBoard("B - B", "- W -", "W - -")
	b := MustParseBoard("B - B", "- W -", "W - -")
	if !a.SameConfiguration(b) {
		t.Error("identical layouts are not the same configuration")
	}

	clone := a.Clone()
	clone.ApplyMove(clone.PieceAt(Position{1, 1}), Position{0, 1})
	if !a.SameConfiguration(b) {
		t.Error("moving a clone changed the original")
	}
	if a.SameConfiguration(clone) {
		t.Error("clone still matches after a move")
	}
}
