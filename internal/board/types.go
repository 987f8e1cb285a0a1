// Package board holds the 8×8 chessboard model and the unvalidated move applicator.
package board

// Side is the colour of a player or of a piece.
type Side int

const (
	White Side = iota
	Black
)

// String returns "White" or "Black".
func (s Side) String() string {
	if s == Black {
		return "Black"
	}
	return "White"
}

// Shade is the fixed display colour of a square.
type Shade int

const (
	Light Shade = iota
	Dark
)

func (s Shade) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}

// Kind is a piece type without colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	King
	Queen
	Rook
	Bishop
	Knight
)

const numKinds = 6

var kindNames = [numKinds + 1]string{"none", "pawn", "king", "queen", "rook", "bishop", "knight"}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Piece is the value occupying a square: Empty or one of twelve kind/side combinations.
// Pieces carry no identity; moving one copies the value and clears the source.
type Piece int

const (
	Empty Piece = iota
	WhitePawn
	WhiteKing
	WhiteQueen
	WhiteRook
	WhiteBishop
	WhiteKnight
	BlackPawn
	BlackKing
	BlackQueen
	BlackRook
	BlackBishop
	BlackKnight
)

// MakePiece combines a side and a kind. NoKind yields Empty.
func MakePiece(side Side, kind Kind) Piece {
	if kind <= NoKind || kind > numKinds {
		return Empty
	}
	return Piece(int(side)*numKinds + int(kind))
}

// Kind returns the piece type, NoKind for Empty.
func (p Piece) Kind() Kind {
	if p <= Empty || p > BlackKnight {
		return NoKind
	}
	return Kind((int(p)-1)%numKinds + 1)
}

// Side returns the owner of the piece. Empty reports White.
func (p Piece) Side() Side {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// String returns a token such as "white_pawn", or "empty".
func (p Piece) String() string {
	if p.Kind() == NoKind {
		return "empty"
	}
	if p.Side() == Black {
		return "black_" + p.Kind().String()
	}
	return "white_" + p.Kind().String()
}
