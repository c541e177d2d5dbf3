package main

import (
	"context"
	"os"

	"github.com/desertthunder/mags/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Debug("application error", "error", err)
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
