package main

import (
	"fmt"
	"io"
	"os"

	instream "github.com/adrian-budau/input-stream"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Limit int  `cli:"name=limit desc='max token size in bytes (0: no limit)'"`
	Color bool `cli:"name=color desc='force color output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// scanString pulls the next token, honoring the -limit option.
func (cfg *MainConfig) scanString(s *instream.Stream) (string, error) {
	if cfg.Limit > 0 {
		return instream.NextLimit[string](s, cfg.Limit)
	}
	return instream.Next[string](s)
}

type sprintfFunc func(format string, a ...interface{}) string

// colors returns token and index formatters, active when w is a terminal or
// -color was given.
func (cfg *MainConfig) colors(w io.Writer) (tok, idx sprintfFunc) {
	f, isFile := w.(*os.File)
	if cfg.Color || (isFile && isatty.IsTerminal(f.Fd())) {
		return color.CyanString, color.HiBlackString
	}
	return fmt.Sprintf, fmt.Sprintf
}

type SplitConfig struct {
	*MainConfig
	N bool `cli:"name=n desc='prefix each token with its index'"`

	Split *cli.Command
}

type SumConfig struct {
	*MainConfig

	Sum *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Int   bool `cli:"name=int desc='parse tokens as int64 before evaluating'"`
	Float bool `cli:"name=float desc='parse tokens as float64 before evaluating'"`

	Env  map[string]any
	Eval *cli.Command
}
