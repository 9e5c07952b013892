package model

func cm(row, col int, tag MoveTag, movement Movement) *CandidateMove {
	return NewCandidateMove(MustPosition(row, col), tag, movement)
}

const (
	fwd = MovementForward
	dl  = MovementDiagonalLeft
	dr  = MovementDiagonalRight
)

// DefaultBoxes returns a fresh copy of the hand-authored boxes for black's
// turns 2, 4 and 6. Mirror images are left to NewCatalogue.
func DefaultBoxes() []*Box {
	return []*Box{
		MustBox("2A", 2, []string{
			"B B B",
			"W - -",
			"- W W",
		},
			cm(0, 1, TagGreen, dl),
			cm(0, 1, TagRed, fwd),
			cm(0, 2, TagBlue, fwd),
		),
		MustBox("2B", 2, []string{
			"B B B",
			"- W -",
			"W - W",
		},
			cm(0, 0, TagGreen, fwd),
			cm(0, 0, TagRed, dr),
		),
		MustBox("4A", 4, []string{
			"B - B",
			"B W -",
			"- - W",
		},
			cm(0, 0, TagRed, dr),
			cm(0, 2, TagBlue, dl),
			cm(0, 2, TagYellow, fwd),
			cm(1, 0, TagGreen, fwd),
		),
		MustBox("4B", 4, []string{
			"- B B",
			"W B -",
			"- - W",
		},
			cm(0, 1, TagGreen, dl),
			cm(0, 2, TagBlue, fwd),
			cm(1, 1, TagRed, fwd),
		),
		MustBox("4C", 4, []string{
			"B - B",
			"W W -",
			"- W -",
		},
			cm(0, 0, TagGreen, dr),
			cm(0, 2, TagRed, dl),
			cm(0, 2, TagBlue, fwd),
		),
		MustBox("4D", 4, []string{
			"B B -",
			"W - W",
			"- - W",
		},
			cm(0, 1, TagGreen, dl),
			cm(0, 1, TagRed, fwd),
			cm(0, 1, TagBlue, dr),
		),
		MustBox("4E", 4, []string{
			"- B B",
			"- B W",
			"W - -",
		},
			cm(0, 1, TagRed, dr),
			cm(1, 1, TagGreen, dl),
			cm(1, 1, TagBlue, fwd),
		),
		MustBox("4F", 4, []string{
			"- B B",
			"B W W",
			"W - -",
		},
			cm(0, 1, TagRed, dr),
			cm(0, 2, TagGreen, dl),
		),
		MustBox("4G", 4, []string{
			"B - B",
			"B - W",
			"- W -",
		},
			cm(1, 0, TagGreen, fwd),
			cm(1, 0, TagRed, dr),
		),
		MustBox("4H", 4, []string{
			"B B -",
			"W W B",
			"- - W",
		},
			cm(0, 0, TagRed, dr),
			cm(0, 1, TagGreen, dl),
		),
		MustBox("4I", 4, []string{
			"- B B",
			"- W -",
			"- - W",
		},
			cm(0, 2, TagGreen, dl),
			cm(0, 2, TagRed, fwd),
		),
		MustBox("4J", 4, []string{
			"- B B",
			"- W -",
			"W - -",
		},
			cm(0, 2, TagGreen, dl),
			cm(0, 2, TagRed, fwd),
		),
		MustBox("4K", 4, []string{
			"B - B",
			"W - -",
			"- - W",
		},
			cm(0, 2, TagGreen, fwd),
		),
		MustBox("6A", 6, []string{
			"- - B",
			"B B W",
			"- - -",
		},
			cm(1, 0, TagGreen, fwd),
			cm(1, 1, TagRed, fwd),
		),
		MustBox("6B", 6, []string{
			"B - -",
			"W W W",
			"- - -",
		},
			cm(0, 0, TagGreen, dr),
		),
		MustBox("6C", 6, []string{
			"- B -",
			"B W W",
			"- - -",
		},
			cm(0, 1, TagRed, dr),
			cm(1, 0, TagGreen, fwd),
		),
		MustBox("6D", 6, []string{
			"- B -",
			"W W B",
			"- - -",
		},
			cm(0, 1, TagGreen, dl),
			cm(1, 2, TagRed, fwd),
		),
		MustBox("6E", 6, []string{
			"B - -",
			"B B W",
			"- - -",
		},
			cm(1, 0, TagGreen, fwd),
			cm(1, 1, TagRed, fwd),
		),
		MustBox("6F", 6, []string{
			"- - B",
			"W B B",
			"- - -",
		},
			cm(1, 1, TagGreen, fwd),
			cm(1, 2, TagRed, fwd),
		),
		MustBox("6G", 6, []string{
			"- - B",
			"B W -",
			"- - -",
		},
			cm(0, 2, TagRed, dl),
			cm(0, 2, TagBlue, fwd),
			cm(1, 0, TagGreen, fwd),
		),
		MustBox("6H", 6, []string{
			"- B -",
			"W B -",
			"- - -",
		},
			cm(0, 1, TagGreen, dl),
			cm(1, 1, TagRed, fwd),
		),
		MustBox("6I", 6, []string{
			"- B -",
			"- B W",
			"- - -",
		},
			cm(0, 1, TagRed, dr),
			cm(1, 1, TagGreen, fwd),
		),
		MustBox("6J", 6, []string{
			"B - -",
			"B W -",
			"- - -",
		},
			cm(0, 0, TagRed, dr),
			cm(1, 0, TagGreen, fwd),
		),
		MustBox("6K", 6, []string{
			"- - B",
			"- W B",
			"- - -",
		},
			cm(0, 2, TagGreen, dl),
			cm(1, 2, TagRed, fwd),
		),
	}
}

// DefaultCatalogue builds the mirror-completed catalogue of the authored boxes.
// It panics if the authored data is inconsistent.
func DefaultCatalogue() *Catalogue {
	c, err := NewCatalogue(DefaultBoxes())
	if err != nil {
		panic(err)
	}
	return c
}
