package model

import "errors"

var (
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrInvalidLayout = errors.New("invalid board layout")
	ErrDuplicateBox  = errors.New("duplicate box")
	ErrMoveNotInBox  = errors.New("move does not belong to box")
	ErrBoxNotFound   = errors.New("box not in catalogue")

	ErrGameNotFound  = errors.New("game not found")
	ErrGameExists    = errors.New("game already exists")
	ErrGameOver      = errors.New("game is over")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNotAuthorized = errors.New("not authorized for this game")
	ErrNoBox         = errors.New("no catalogue entry for this position")
	ErrMoveIndex     = errors.New("candidate move index out of range")
	ErrMoveDisabled  = errors.New("candidate move is disabled")
)
