package chess

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/park285/cheese-cli-chess/internal/adapter/chesspresenter"
	"github.com/park285/cheese-cli-chess/internal/board"
	"go.uber.org/zap"
)

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ReadError reports a failure reading move input. It is fatal to the session.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read move input: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Service owns the board for one terminal session and drives the
// render → read → apply loop.
type Service struct {
	sessionID string
	board     *board.Board
	presenter *chesspresenter.Presenter
	logger    *zap.Logger
}

func NewService(presenter *chesspresenter.Presenter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Service{
		sessionID: id,
		board:     board.New(),
		presenter: presenter,
		logger:    logger.With(zap.String("session_id", id)),
	}
}

func (s *Service) SessionID() string   { return s.sessionID }
func (s *Service) Board() *board.Board { return s.board }

// Run clears the screen, then renders, reads one line and applies it until the
// input ends. End of input returns nil; a read failure returns *ReadError.
func (s *Service) Run(ctx context.Context, in io.Reader) error {
	if err := s.presenter.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	s.logger.Info("session_start", zap.String("placement", s.board.Placement()))

	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.presenter.Board(chesspresenter.ToDTOState(s.sessionID, s.board)); err != nil {
			return fmt.Errorf("render board: %w", err)
		}
		line, err := readLine(reader)
		switch {
		case errors.Is(err, io.EOF):
			s.logger.Info("input_closed", zap.Int("turn", s.board.Turn()))
			return nil
		case err != nil:
			s.logger.Error("input_error", zap.Error(err), zap.Int("turn", s.board.Turn()))
			return &ReadError{Err: err}
		}
		if err := s.Play(line); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its "\n" or "\r\n" terminator. Lines
// have no length limit; a line that is not valid UTF-8 is a read failure.
// io.EOF is returned only when no bytes remain.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	if !utf8.ValidString(line) {
		return "", errInvalidUTF8
	}
	if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
		line = strings.TrimSuffix(trimmed, "\r")
	}
	return line, nil
}

// Play applies one input line exactly as read, then clears the screen. A
// malformed token leaves the board alone and prints the invalid-move notice.
func (s *Service) Play(line string) error {
	applyErr := s.board.Apply(line)
	if err := s.presenter.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	switch {
	case applyErr == nil:
		s.logger.Info("move_applied",
			zap.String("move", line),
			zap.Int("turn", s.board.Turn()),
			zap.Stringer("to_play", s.board.ToPlay()),
			zap.String("placement", s.board.Placement()),
		)
		return nil
	case errors.Is(applyErr, board.ErrInvalidFormat):
		s.logger.Info("move_rejected", zap.String("move", line), zap.Error(applyErr))
		if err := s.presenter.InvalidMove(); err != nil {
			return fmt.Errorf("print notice: %w", err)
		}
		return nil
	default:
		return applyErr
	}
}
