package model

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

// LearningSide is the side played from the catalogue.
const LearningSide = PlayerColorBlack

func (c PlayerColor) Opponent() PlayerColor {
	if c == PlayerColorWhite {
		return PlayerColorBlack
	}
	return PlayerColorWhite
}

// forward is the row delta of a single step: white moves up the board, black down.
func (c PlayerColor) forward() int {
	if c == PlayerColorWhite {
		return -1
	}
	return 1
}

// backRank is the row this side has to reach to break through.
func (c PlayerColor) backRank() int {
	if c == PlayerColorWhite {
		return 0
	}
	return Size - 1
}

func (c PlayerColor) marker() string {
	if c == PlayerColorWhite {
		return markerWhite
	}
	return markerBlack
}

type ClientPlayer struct {
	ID       string      `json:"id"`
	Color    PlayerColor `json:"color"`
	Computer bool        `json:"computer"`
}
