package board

import (
	"strings"

	nchess "github.com/corentings/chess/v2"
)

// Board dimensions and coordinate bases.
const (
	Size      = 8
	FirstFile = 'a'
	LastFile  = FirstFile + Size - 1
	FirstRank = '1'
	LastRank  = FirstRank + Size - 1
)

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Square is one of the 64 board positions. Coordinate and shade are fixed at
// construction; the piece changes only through Board.Apply.
type Square struct {
	coord string
	shade Shade
	piece Piece
}

func (s Square) Coord() string { return s.coord }
func (s Square) Shade() Shade  { return s.shade }
func (s Square) Piece() Piece  { return s.piece }

// Board is the grid, stored rank 8 down to rank 1 and file a to h, plus the
// turn counter that drives the "to play" label.
type Board struct {
	ranks [Size][Size]Square
	turn  int
}

// New returns the standard starting position with the turn counter at 1.
func New() *Board {
	b := &Board{turn: 1}
	for row := 0; row < Size; row++ {
		rank := Size - row
		for file := 0; file < Size; file++ {
			shade := Light
			if (row+file)%2 == 1 {
				shade = Dark
			}
			b.ranks[row][file] = Square{
				coord: string([]byte{byte(FirstFile + file), byte('0' + rank)}),
				shade: shade,
				piece: startingPiece(file, rank),
			}
		}
	}
	return b
}

func startingPiece(file, rank int) Piece {
	switch rank {
	case 1:
		return MakePiece(White, backRank[file])
	case 2:
		return MakePiece(White, Pawn)
	case 7:
		return MakePiece(Black, Pawn)
	case 8:
		return MakePiece(Black, backRank[file])
	default:
		return Empty
	}
}

// Turn returns the move counter. It starts at 1 and grows by one per applied move.
func (b *Board) Turn() int { return b.turn }

// ToPlay derives the side shown in the footer purely from counter parity.
func (b *Board) ToPlay() Side {
	if b.turn%2 == 0 {
		return Black
	}
	return White
}

// Square looks up a square by coordinate ("e4", case-insensitive).
func (b *Board) Square(coord string) (Square, bool) {
	sq := b.lookup(strings.ToLower(coord))
	if sq == nil {
		return Square{}, false
	}
	return *sq, true
}

// Ranks returns a copy of the grid, rank 8 first.
func (b *Board) Ranks() [Size][Size]Square {
	return b.ranks
}

// lookup maps a lowercase coordinate straight to its grid cell.
// Anything outside a1..h8 yields nil.
func (b *Board) lookup(coord string) *Square {
	if len(coord) != 2 {
		return nil
	}
	file, rank := coord[0], coord[1]
	if file < FirstFile || file > LastFile || rank < FirstRank || rank > LastRank {
		return nil
	}
	row := Size - 1 - int(rank-FirstRank)
	return &b.ranks[row][file-FirstFile]
}

// Placement returns the FEN piece-placement field of the current grid.
func (b *Board) Placement() string {
	pieces := make(map[nchess.Square]nchess.Piece, 32)
	for row := 0; row < Size; row++ {
		for file := 0; file < Size; file++ {
			p := b.ranks[row][file].piece
			if p == Empty {
				continue
			}
			sq := nchess.NewSquare(nchess.File(file), nchess.Rank(Size-1-row))
			pieces[sq] = enginePiece(p)
		}
	}
	return nchess.NewBoard(pieces).String()
}

var enginePieces = map[Piece]nchess.Piece{
	WhitePawn:   nchess.WhitePawn,
	WhiteKing:   nchess.WhiteKing,
	WhiteQueen:  nchess.WhiteQueen,
	WhiteRook:   nchess.WhiteRook,
	WhiteBishop: nchess.WhiteBishop,
	WhiteKnight: nchess.WhiteKnight,
	BlackPawn:   nchess.BlackPawn,
	BlackKing:   nchess.BlackKing,
	BlackQueen:  nchess.BlackQueen,
	BlackRook:   nchess.BlackRook,
	BlackBishop: nchess.BlackBishop,
	BlackKnight: nchess.BlackKnight,
}

func enginePiece(p Piece) nchess.Piece {
	if ep, ok := enginePieces[p]; ok {
		return ep
	}
	return nchess.NoPiece
}
