package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/park285/cheese-cli-chess/internal/adapter/chesspresenter"
)

func clearChessEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CHESS_LOG_LEVEL", "CHESS_LOG_FORMAT", "CHESS_LOG_TO_CONSOLE",
		"CHESS_LOG_CALLER", "CHESS_LOG_FILE", "CHESS_MESSAGES_DIR",
	} {
		t.Setenv(k, "")
	}
}

func TestRunExitStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode int
		wantTail string
	}{
		{"eof", "e2e4\n", 0, "Black to play: "},
		{"invalid move keeps going", "nope\n", 0, "White to play: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearChessEnv(t)
			var out bytes.Buffer
			if code := run(strings.NewReader(tt.input), &out); code != tt.wantCode {
				t.Fatalf("run() = %d; want %d", code, tt.wantCode)
			}
			if !strings.HasPrefix(out.String(), chesspresenter.ClearScreen) {
				t.Error("output does not start with the clear sequence")
			}
			if !strings.HasSuffix(out.String(), tt.wantTail) {
				t.Errorf("output tail = %q; want suffix %q", out.String()[max(0, out.Len()-40):], tt.wantTail)
			}
		})
	}
}

func TestRunReadErrorExitsOne(t *testing.T) {
	clearChessEnv(t)
	var out bytes.Buffer

	code := run(iotest.ErrReader(errors.New("boom")), &out)
	if code != 1 {
		t.Fatalf("run() = %d; want 1", code)
	}
	if !strings.HasSuffix(out.String(), "White to play: couldn't read move input: boom\n") {
		t.Errorf("output tail = %q", out.String()[max(0, out.Len()-60):])
	}
}

func TestRunInvalidUTF8ExitsOne(t *testing.T) {
	clearChessEnv(t)
	var out bytes.Buffer

	code := run(strings.NewReader("e2\xffe4\n"), &out)
	if code != 1 {
		t.Fatalf("run() = %d; want 1", code)
	}
	want := "couldn't read move input: stream did not contain valid UTF-8\n"
	if !strings.HasSuffix(out.String(), want) {
		t.Errorf("output tail = %q; want suffix %q", out.String()[max(0, out.Len()-80):], want)
	}
	if strings.Contains(out.String(), "invalid move") {
		t.Error("bad input reported as an invalid move")
	}
}

func TestRunBadConfigExitsOne(t *testing.T) {
	clearChessEnv(t)
	t.Setenv("CHESS_LOG_FORMAT", "xml")
	var out bytes.Buffer

	if code := run(strings.NewReader(""), &out); code != 1 {
		t.Fatalf("run() = %d; want 1", code)
	}
	if out.Len() != 0 {
		t.Errorf("stdout written before config failed: %q", out.String())
	}
}
