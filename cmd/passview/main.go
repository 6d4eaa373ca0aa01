package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/calef/passview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	tracePath := flag.String("trace", "", "recorded run file to inspect")
	configPath := flag.String("config", "", "override config path (optional)")
	demo := flag.Bool("demo", false, "inspect the built-in demo run")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		TracePath:  *tracePath,
		ConfigPath: *configPath,
		Demo:       *demo,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "passview: %v\n", err)
		return 1
	}
	return 0
}
