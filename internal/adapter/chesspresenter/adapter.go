package chesspresenter

import (
	"strings"

	"github.com/park285/cheese-cli-chess/internal/board"
	"github.com/park285/cheese-cli-chess/pkg/chessdto"
)

// ToDTOState snapshots b for rendering.
func ToDTOState(sessionID string, b *board.Board) *chessdto.BoardState {
	if b == nil {
		return nil
	}
	grid := b.Ranks()
	ranks := make([]chessdto.RankRow, 0, board.Size)
	for row := range grid {
		squares := make([]chessdto.SquareView, 0, board.Size)
		for _, sq := range grid[row] {
			squares = append(squares, toDTOSquare(sq))
		}
		ranks = append(ranks, chessdto.RankRow{Number: board.Size - row, Squares: squares})
	}
	return &chessdto.BoardState{
		SessionID: sessionID,
		Turn:      b.Turn(),
		ToPlay:    strings.ToLower(b.ToPlay().String()),
		Ranks:     ranks,
	}
}

func toDTOSquare(sq board.Square) chessdto.SquareView {
	piece := ""
	if sq.Piece() != board.Empty {
		piece = sq.Piece().String()
	}
	return chessdto.SquareView{
		Coord: sq.Coord(),
		Shade: sq.Shade().String(),
		Piece: piece,
	}
}
