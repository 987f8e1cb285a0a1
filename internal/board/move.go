package board

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidFormat is returned for tokens that are not <letter><digit><letter><digit>.
var ErrInvalidFormat = errors.New("invalid move format")

// Letters and digits are not limited to a-h/1-8 here; off-board halves fall
// through to a no-op in Apply.
var moveFormat = regexp.MustCompile(`^[a-zA-Z][0-9][a-zA-Z][0-9]$`)

// Move is a parsed token, both halves lowercased.
type Move struct {
	From string
	To   string
}

func (m Move) String() string { return m.From + m.To }

// ParseMove checks the token shape and splits it into source and destination.
func ParseMove(token string) (Move, error) {
	if !moveFormat.MatchString(token) {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidFormat, token)
	}
	lower := strings.ToLower(token)
	return Move{From: lower[:2], To: lower[2:]}, nil
}

// Apply relocates whatever occupies the source square to the destination,
// without any rule checks. The source is always cleared and the destination
// always overwritten, so moving from an empty square empties the target.
// Coordinates off the board are silently skipped. Every well-formed token
// advances the turn counter by one; only a malformed token returns an error,
// and then the board is untouched.
func (b *Board) Apply(token string) error {
	mv, err := ParseMove(token)
	if err != nil {
		return err
	}

	held := Empty
	if src := b.lookup(mv.From); src != nil {
		held = src.piece
		src.piece = Empty
	}
	if dst := b.lookup(mv.To); dst != nil {
		dst.piece = held
	}

	b.turn++
	return nil
}
