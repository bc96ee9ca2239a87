package main

import (
	"fmt"
	"strconv"

	instream "github.com/adrian-budau/input-stream"

	"github.com/scott-cotton/cli"
)

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		cfg.Sum.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var count, total, xor int64
	err = eachSource(args, func(s *instream.Stream) error {
		for {
			tok, err := cfg.scanString(s)
			if err != nil {
				return err
			}
			if tok == "" {
				return nil
			}
			n, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return err
			}
			count++
			total += n
			xor ^= n
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "count %d sum %d xor %d\n", count, total, xor)
	return nil
}
