package model

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

type boxKey struct {
	turn   int
	layout string
}

func keyOf(turn int, b *Board) boxKey {
	return boxKey{turn: turn, layout: b.key()}
}

// Catalogue is the set of boxes black plays from. It is built once, then only
// the disabled flags of its moves change. It is not safe for concurrent use.
type Catalogue struct {
	boxes []*Box
	index map[boxKey]*Box
}

// NewCatalogue registers the authored boxes and completes them with the
// mirror image of every asymmetric box whose reflection is not already there.
func NewCatalogue(boxes []*Box) (*Catalogue, error) {
	c := &Catalogue{index: make(map[boxKey]*Box, len(boxes)*2)}
	for _, box := range boxes {
		if err := c.add(box); err != nil {
			return nil, err
		}
	}
	for _, box := range c.boxes[:len(boxes)] {
		if box.IsMirrorSymmetric() {
			continue
		}
		mirrored, err := box.mirror()
		if err != nil {
			return nil, fmt.Errorf("mirror of box %s: %w", box.ID, err)
		}
		if existing, ok := c.index[keyOf(mirrored.Turn, mirrored.Board)]; ok {
			log.Debugf("box %s is a mirror of %s", box.ID, existing.ID)
			continue
		}
		log.Debugf("adding mirrored box %s", mirrored.ID)
		if err := c.add(mirrored); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalogue) add(box *Box) error {
	key := keyOf(box.Turn, box.Board)
	if existing, ok := c.index[key]; ok {
		return fmt.Errorf("%w: %s and %s share turn %d and layout %s", ErrDuplicateBox, existing.ID, box.ID, box.Turn, key.layout)
	}
	c.index[key] = box
	c.boxes = append(c.boxes, box)
	return nil
}

// MatchFor returns the box for the given turn whose pawns sit exactly where
// they sit on board. A miss is normal once play leaves the catalogued games.
func (c *Catalogue) MatchFor(turn int, board *Board) (*Box, bool) {
	if board == nil {
		return nil, false
	}
	box, ok := c.index[keyOf(turn, board)]
	return box, ok
}

// DisableMove eliminates move from box for the rest of the catalogue's life,
// or until ResetAll.
func (c *Catalogue) DisableMove(box *Box, move *CandidateMove) error {
	if box == nil || c.index[keyOf(box.Turn, box.Board)] != box {
		return ErrBoxNotFound
	}
	if !box.HasMove(move) {
		return fmt.Errorf("%w: %v in box %s", ErrMoveNotInBox, move, box.ID)
	}
	move.Disable()
	return nil
}

// ResetAll re-enables every move in every box.
func (c *Catalogue) ResetAll() {
	for _, box := range c.boxes {
		box.Reset()
	}
}

// Boxes returns the boxes in registration order: authored boxes first, then mirrors.
func (c *Catalogue) Boxes() []*Box {
	out := make([]*Box, len(c.boxes))
	copy(out, c.boxes)
	return out
}

func (c *Catalogue) Box(id string) (*Box, bool) {
	for _, box := range c.boxes {
		if box.ID == id {
			return box, true
		}
	}
	return nil, false
}

func (c *Catalogue) DisabledCount() int {
	n := 0
	for _, box := range c.boxes {
		n += len(box.Moves) - len(box.EnabledMoves())
	}
	return n
}
