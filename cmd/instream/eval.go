package main

import (
	"fmt"
	"strconv"
	"strings"

	instream "github.com/adrian-budau/input-stream"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func evalTokens(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression argument", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	program, err := expr.Compile(src)
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", src, err)
	}
	env := map[string]any{}
	for k, v := range cfg.Env {
		env[k] = v
	}
	i := 0
	return eachSource(args, func(s *instream.Stream) error {
		for {
			tok, err := cfg.scanString(s)
			if err != nil {
				return err
			}
			if tok == "" {
				return nil
			}
			var val any = tok
			switch {
			case cfg.Int:
				n, err := strconv.ParseInt(tok, 10, 64)
				if err != nil {
					return err
				}
				val = n
			case cfg.Float:
				f, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return err
				}
				val = f
			}
			env["tok"] = val
			env["i"] = i
			res, err := vm.Run(program, env)
			if err != nil {
				return fmt.Errorf("error evaluating %q: %w", src, err)
			}
			fmt.Fprintln(cc.Out, res)
			i++
		}
	})
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc parses a "key=val" option into env, with val interpreted as YAML
// and dotted keys creating nested maps.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: key %q already bound", cli.ErrUsage, strings.Join(parts[:i+1], "."))
		}
		tmpEnv = m
	}
	return nil
}
