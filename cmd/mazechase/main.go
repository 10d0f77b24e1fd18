package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/vinser/mazechase/internal/app"
	"github.com/vinser/mazechase/internal/flags"
)

var version = "dev"

func main() {
	if err := flags.LoadDotEnv(".env"); err != nil {
		fail(err)
	}
	fl, err := flags.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fail(err)
	}

	if fl.About {
		if err := app.About(os.Stdout); err != nil {
			fail(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	res, err := app.Run(ctx, fl, version)
	stop()
	if err != nil {
		fail(err)
	}
	fmt.Printf("Score: %d (%s)\n", res.Score, res.Outcome)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
