package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/park285/cheese-cli-chess/internal/adapter/chesspresenter"
	appcfg "github.com/park285/cheese-cli-chess/internal/config"
	"github.com/park285/cheese-cli-chess/internal/msgcat"
	"github.com/park285/cheese-cli-chess/internal/obslog"
	svcchess "github.com/park285/cheese-cli-chess/internal/service/chess"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

// run plays one session on in/out and returns the process exit status.
func run(in io.Reader, stdout io.Writer) int {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Printf("config error: %v", err)
		return 1
	}
	if err := obslog.Init(cfg.Log); err != nil {
		log.Printf("logger init error: %v", err)
		return 1
	}
	defer func() { _ = obslog.L().Sync() }()

	catalog, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		log.Printf("message catalog error: %v", err)
		return 1
	}

	out := bufio.NewWriter(stdout)
	formatter := chesspresenter.NewFormatter(catalog)
	presenter := chesspresenter.NewPresenter(out, formatter)
	svc := svcchess.NewService(presenter, obslog.L())

	err = svc.Run(context.Background(), in)
	if err == nil {
		return 0
	}

	var readErr *svcchess.ReadError
	if errors.As(err, &readErr) {
		_ = presenter.Notice(formatter.ReadError(readErr.Err))
	} else {
		obslog.L().Error("session_failed", zap.Error(err))
		log.Printf("chess session error: %v", err)
	}
	return 1
}
