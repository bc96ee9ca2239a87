package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	instream "github.com/adrian-budau/input-stream"

	"github.com/scott-cotton/cli"
)

func instreamMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// eachSource runs fn over a Stream for each argument, "-" and no arguments
// both meaning stdin.
func eachSource(args []string, fn func(*instream.Stream) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := withSource(arg, fn); err != nil {
			return fmt.Errorf("error scanning %s: %w", arg, err)
		}
	}
	return nil
}

func withSource(arg string, fn func(*instream.Stream) error) error {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		defer f.Close()
		rd = f
	}
	return fn(instream.NewFromReader(rd))
}
