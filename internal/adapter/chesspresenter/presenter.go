package chesspresenter

import (
	"io"

	"github.com/park285/cheese-cli-chess/pkg/chessdto"
)

// ClearScreen erases the terminal and homes the cursor.
const ClearScreen = "\x1b[2J\x1b[1;1H"

type flusher interface {
	Flush() error
}

// Presenter writes frames and notices to the terminal. Output is flushed
// after every call so the prompt is visible before input is read.
type Presenter struct {
	out       io.Writer
	formatter *Formatter
}

func NewPresenter(out io.Writer, formatter *Formatter) *Presenter {
	return &Presenter{out: out, formatter: formatter}
}

// Clear writes the clear-screen sequence.
func (p *Presenter) Clear() error {
	if p == nil {
		return nil
	}
	return p.write(ClearScreen)
}

// Board renders the snapshot and leaves the cursor after the prompt.
func (p *Presenter) Board(state *chessdto.BoardState) error {
	if p == nil {
		return nil
	}
	return p.write(p.formatter.Frame(state))
}

// Notice prints one line of text.
func (p *Presenter) Notice(text string) error {
	return p.write(text + "\n")
}

// InvalidMove prints the rejected-move notice.
func (p *Presenter) InvalidMove() error {
	if p == nil {
		return nil
	}
	return p.Notice(p.formatter.InvalidMove())
}

func (p *Presenter) write(s string) error {
	if p == nil || p.out == nil {
		return nil
	}
	if _, err := io.WriteString(p.out, s); err != nil {
		return err
	}
	if f, ok := p.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}
