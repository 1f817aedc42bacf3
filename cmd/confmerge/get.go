package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/confmerge/encode"
)

func getMain(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires an address and at least one file", cli.ErrUsage)
	}
	for _, arg := range args[1:] {
		if err := cfg.get(cc.Out, args[0], arg); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", args[0], arg, err)
		}
	}
	return nil
}

func (cfg *GetConfig) get(w io.Writer, addr, p string) error {
	_, doc, err := cfg.readDoc(p)
	if err != nil {
		return err
	}
	ids, err := doc.Resolve(addr)
	if err != nil {
		return err
	}
	from, to := doc.GroupRange(ids)
	if err := encode.EncodeRange(doc, from, to, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
