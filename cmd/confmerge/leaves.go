package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/confmerge/ir"
	"github.com/signadot/confmerge/merge"
)

func leavesMain(cfg *LeavesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Leaves.Parse(cc, args)
	if err != nil {
		cfg.Leaves.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: leaves requires at least one file", cli.ErrUsage)
	}
	for _, arg := range args {
		if err := cfg.leaves(cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *LeavesConfig) leaves(w io.Writer, p string) error {
	_, doc, err := cfg.readDoc(p)
	if err != nil {
		return err
	}
	for _, l := range merge.Leaves(doc, cfg.log()) {
		n := doc.Node(l.Node)
		line := l.Address
		if cfg.Values && n.Value.Kind == ir.ScalarValue {
			line += " " + n.Value.Scalar
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
