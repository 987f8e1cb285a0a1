package chesspresenter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/park285/cheese-cli-chess/internal/msgcat"
	"github.com/park285/cheese-cli-chess/pkg/chessdto"
)

const (
	frameInnerWidth = 26

	defaultTitle       = "CLI Chess"
	defaultInvalidMove = "invalid move"
)

const (
	frameTop     = "┏━━━━━━━━━━━━━━━━━━━━━━━━━━┓\n"
	frameDivider = "┣━━━━━━━━━━━━━━━━━━━━━━━━━━┫\n"
	frameFiles   = "┃   a  b  c  d  e  f  g  h ┃\n"
	frameBottom  = "┗━━━━━━━━━━━━━━━━━━━━━━━━━━┛\n"
	frameSide    = "┃"
)

var shadeGlyphs = map[string]string{
	"light": "◻️",
	"dark":  "◼️",
}

var pieceGlyphs = map[string]string{
	"white_pawn":   "♙",
	"white_king":   "♔",
	"white_queen":  "♕",
	"white_rook":   "♖",
	"white_bishop": "♗",
	"white_knight": "♘",
	"black_pawn":   "♟",
	"black_king":   "♚",
	"black_queen":  "♛",
	"black_rook":   "♜",
	"black_bishop": "♝",
	"black_knight": "♞",
}

// MessageSource supplies user-facing strings; *msgcat.Catalog satisfies it.
type MessageSource interface {
	Text(key string, data any, fallback string) string
}

// Formatter renders board snapshots and notices into terminal text.
type Formatter struct {
	messages MessageSource
}

func NewFormatter(messages MessageSource) *Formatter {
	return &Formatter{messages: messages}
}

func (f *Formatter) text(key string, data any, fallback string) string {
	if f == nil || f.messages == nil {
		return fallback
	}
	return f.messages.Text(key, data, fallback)
}

// Frame returns the bordered board followed by the "<Side> to play: " prompt,
// which has no trailing newline.
func (f *Formatter) Frame(state *chessdto.BoardState) string {
	if state == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(frameTop)
	sb.WriteString(frameSide)
	sb.WriteString(centre(f.text(msgcat.KeyBoardTitle, nil, defaultTitle), frameInnerWidth))
	sb.WriteString(frameSide + "\n")
	sb.WriteString(frameDivider)
	sb.WriteString(frameFiles)

	for _, rank := range state.Ranks {
		sb.WriteString(fmt.Sprintf("%s%d ", frameSide, rank.Number))
		for _, sq := range rank.Squares {
			sb.WriteString(shadeGlyph(sq.Shade))
			sb.WriteString(pieceGlyph(sq.Piece))
			sb.WriteByte(' ')
		}
		sb.WriteString(frameSide + "\n")
	}

	sb.WriteString(frameBottom)
	sb.WriteString(f.ToPlay(state.ToPlay))
	return sb.String()
}

// ToPlay renders the footer prompt for side ("white" or "black").
func (f *Formatter) ToPlay(side string) string {
	name := f.SideName(side)
	return f.text(msgcat.KeyBoardToPlay, map[string]string{"Side": name}, name+" to play: ")
}

func (f *Formatter) SideName(side string) string {
	if strings.EqualFold(strings.TrimSpace(side), "black") {
		return f.text(msgcat.KeySideBlack, nil, "Black")
	}
	return f.text(msgcat.KeySideWhite, nil, "White")
}

func (f *Formatter) InvalidMove() string {
	return f.text(msgcat.KeyMoveInvalid, nil, defaultInvalidMove)
}

func (f *Formatter) ReadError(err error) string {
	detail := "<nil>"
	if err != nil {
		detail = err.Error()
	}
	return f.text(msgcat.KeyReadError, map[string]string{"Err": detail}, "couldn't read move input: "+detail)
}

func shadeGlyph(shade string) string {
	if g, ok := shadeGlyphs[shade]; ok {
		return g
	}
	return shadeGlyphs["light"]
}

func pieceGlyph(piece string) string {
	if g, ok := pieceGlyphs[piece]; ok {
		return g
	}
	return " "
}

// centre pads s to width runes, odd padding going left. Longer text is kept as is.
func centre(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n + 1) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
