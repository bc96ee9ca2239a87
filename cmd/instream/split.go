package main

import (
	"fmt"

	instream "github.com/adrian-budau/input-stream"

	"github.com/scott-cotton/cli"
)

func split(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		cfg.Split.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	tokColor, idxColor := cfg.colors(cc.Out)
	i := 0
	return eachSource(args, func(s *instream.Stream) error {
		for {
			tok, err := cfg.scanString(s)
			if err != nil {
				return err
			}
			if tok == "" {
				// exhausted
				return nil
			}
			if cfg.N {
				fmt.Fprintf(cc.Out, "%s %s\n", idxColor("%d", i), tokColor("%s", tok))
			} else {
				fmt.Fprintln(cc.Out, tokColor("%s", tok))
			}
			i++
		}
	})
}
