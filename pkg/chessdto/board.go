package chessdto

// SquareView is one rendered square: coordinate, "light"/"dark" shade and a
// piece token such as "white_rook" ("" when empty).
type SquareView struct {
	Coord string
	Shade string
	Piece string
}

// RankRow is one board row, Number 8 down to 1.
type RankRow struct {
	Number  int
	Squares []SquareView
}

// BoardState is a read-only snapshot handed to the presenter.
type BoardState struct {
	SessionID string
	Turn      int
	// ToPlay is "white" or "black".
	ToPlay string
	Ranks  []RankRow
}
