package model

import (
	"errors"
	"fmt"
)

var (
	ErrNoPiece          = errors.New("no piece at from square")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrIllegalMove      = errors.New("invalid move, not legal")
	ErrInvalidPromotion = errors.New("invalid promotion piece")
	ErrNoHistory        = errors.New("no move to undo")

	ErrMalformedSetup = errors.New("malformed setup")
	ErrBadRankCount   = fmt.Errorf("%w: expected 8 ranks", ErrMalformedSetup)
	ErrBadRankLength  = fmt.Errorf("%w: rank does not cover 8 squares", ErrMalformedSetup)
	ErrUnknownPiece   = fmt.Errorf("%w: unknown piece letter", ErrMalformedSetup)
	ErrBadSideToMove  = fmt.Errorf("%w: side to move must be w or b", ErrMalformedSetup)
	ErrBadCastling    = fmt.Errorf("%w: bad castling field", ErrMalformedSetup)
	ErrBadEnPassant   = fmt.Errorf("%w: bad en passant field", ErrMalformedSetup)
	ErrTooManyKings   = fmt.Errorf("%w: more than one king of a color", ErrMalformedSetup)
)
