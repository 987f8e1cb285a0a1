package chesspresenter

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/park285/cheese-cli-chess/internal/board"
	"github.com/park285/cheese-cli-chess/internal/msgcat"
)

const initialFrame = "┏━━━━━━━━━━━━━━━━━━━━━━━━━━┓\n" +
	"┃         CLI Chess        ┃\n" +
	"┣━━━━━━━━━━━━━━━━━━━━━━━━━━┫\n" +
	"┃   a  b  c  d  e  f  g  h ┃\n" +
	"┃8 ◻️♜ ◼️♞ ◻️♝ ◼️♛ ◻️♚ ◼️♝ ◻️♞ ◼️♜ ┃\n" +
	"┃7 ◼️♟ ◻️♟ ◼️♟ ◻️♟ ◼️♟ ◻️♟ ◼️♟ ◻️♟ ┃\n" +
	"┃6 ◻️  ◼️  ◻️  ◼️  ◻️  ◼️  ◻️  ◼️  ┃\n" +
	"┃5 ◼️  ◻️  ◼️  ◻️  ◼️  ◻️  ◼️  ◻️  ┃\n" +
	"┃4 ◻️  ◼️  ◻️  ◼️  ◻️  ◼️  ◻️  ◼️  ┃\n" +
	"┃3 ◼️  ◻️  ◼️  ◻️  ◼️  ◻️  ◼️  ◻️  ┃\n" +
	"┃2 ◻️♙ ◼️♙ ◻️♙ ◼️♙ ◻️♙ ◼️♙ ◻️♙ ◼️♙ ┃\n" +
	"┃1 ◼️♖ ◻️♘ ◼️♗ ◻️♕ ◼️♔ ◻️♗ ◼️♘ ◻️♖ ┃\n" +
	"┗━━━━━━━━━━━━━━━━━━━━━━━━━━┛\n" +
	"White to play: "

func newCatalog(t *testing.T) *msgcat.Catalog {
	t.Helper()
	c, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	return c
}

func TestFrameInitialBoard(t *testing.T) {
	f := NewFormatter(newCatalog(t))
	got := f.Frame(ToDTOState("s1", board.New()))
	if diff := cmp.Diff(strings.Split(initialFrame, "\n"), strings.Split(got, "\n")); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameWithoutCatalog(t *testing.T) {
	var f *Formatter
	if got := f.Frame(ToDTOState("", board.New())); got != initialFrame {
		t.Errorf("nil formatter frame differs:\n%s", got)
	}
	if got := NewFormatter(nil).InvalidMove(); got != "invalid move" {
		t.Errorf("InvalidMove() = %q", got)
	}
}

func TestFrameAfterMove(t *testing.T) {
	b := board.New()
	if err := b.Apply("e2e4"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got := NewFormatter(newCatalog(t)).Frame(ToDTOState("s1", b))
	lines := strings.Split(got, "\n")

	if last := lines[len(lines)-1]; last != "Black to play: " {
		t.Errorf("footer = %q; want %q", last, "Black to play: ")
	}
	if want := "┃4 ◻️  ◼️  ◻️  ◼️  ◻️♙ ◼️  ◻️  ◼️  ┃"; lines[8] != want {
		t.Errorf("rank 4 = %q; want %q", lines[8], want)
	}
	if want := "┃2 ◻️♙ ◼️♙ ◻️♙ ◼️♙ ◻️  ◼️♙ ◻️♙ ◼️♙ ┃"; lines[10] != want {
		t.Errorf("rank 2 = %q; want %q", lines[10], want)
	}
}

func TestFrameFooterParity(t *testing.T) {
	f := NewFormatter(newCatalog(t))
	b := board.New()
	for i, want := range []string{"White to play: ", "Black to play: ", "White to play: "} {
		if got := f.Frame(ToDTOState("", b)); !strings.HasSuffix(got, "\n"+want) {
			t.Errorf("after %d moves footer mismatch, want %q", i, want)
		}
		if err := b.Apply("z9z9"); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}
}

func TestFrameNil(t *testing.T) {
	if got := NewFormatter(nil).Frame(nil); got != "" {
		t.Errorf("Frame(nil) = %q; want empty", got)
	}
}

type stubMessages map[string]string

func (s stubMessages) Text(key string, data any, fallback string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return fallback
}

func TestFrameCentresTitle(t *testing.T) {
	f := NewFormatter(stubMessages{msgcat.KeyBoardTitle: "Chess"})
	lines := strings.Split(f.Frame(ToDTOState("", board.New())), "\n")
	if want := "┃           Chess          ┃"; lines[1] != want {
		t.Errorf("title = %q; want %q", lines[1], want)
	}
}

func TestCentre(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"CLI Chess", 26, "         CLI Chess        "},
		{"ab", 4, " ab "},
		{"abc", 4, " abc"},
		{"toolong", 4, "toolong"},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := centre(tt.in, tt.width); got != tt.want {
			t.Errorf("centre(%q, %d) = %q; want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestReadError(t *testing.T) {
	f := NewFormatter(newCatalog(t))
	if got, want := f.ReadError(errors.New("stream closed")), "couldn't read move input: stream closed"; got != want {
		t.Errorf("ReadError = %q; want %q", got, want)
	}
}
