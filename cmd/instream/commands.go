package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "instream").
		WithSynopsis("instream [opts] command [opts] [files]").
		WithDescription("instream works with whitespace-delimited token streams.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return instreamMain(cfg, cc, args)
		}).
		WithSubs(
			SplitCommand(cfg),
			SumCommand(cfg),
			EvalCommand(cfg))
}

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("split").
		WithAliases("sp").
		WithSynopsis("split [-n] [files]").
		WithDescription("print one token per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return split(cfg, cc, args)
		})
	cfg.Split = cmd
	return cmd
}

func SumCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SumConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("sum").
		WithSynopsis("sum [files]").
		WithDescription("fold integer tokens into count, sum and xor").
		WithRun(func(cc *cli.Context, args []string) error {
			return sum(cfg, cc, args)
		})
	cfg.Sum = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(envOptTypeFunc(cfg.Env), "(key=val)"),
		})
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e key=val [ -e key2=val2 ]...] <expr> [files]").
		WithDescription("evaluate an expression for each token").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalTokens(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}
