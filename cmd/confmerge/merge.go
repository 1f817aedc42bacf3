package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/signadot/confmerge/encode"
	"github.com/signadot/confmerge/format"
	"github.com/signadot/confmerge/libdiff"
	"github.com/signadot/confmerge/merge"
	"github.com/signadot/confmerge/overrides"
	"github.com/spf13/afero"
)

func mergeMain(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return cfg.run(cc.Out, args)
}

// run merges with the positional arguments of merge.  The report and diff
// go to out, or to standard error when the merged document itself is
// written to out.
func (cfg *MergeConfig) run(out io.Writer, args []string) error {
	if len(args) != 3 && len(args) != 4 {
		return fmt.Errorf("%w: merge requires 3 or 4 args, got %v", cli.ErrUsage, args)
	}
	ann := ""
	if len(args) == 4 {
		ann = args[3]
	}
	msgs := out
	if args[2] == "-" {
		msgs = cfg.stderr()
	}
	res, err := cfg.mergeFiles(out, msgs, args[0], args[1], args[2], ann)
	if err != nil {
		return err
	}
	if err := report(msgs, res, cfg.colors(msgs)); err != nil {
		return err
	}
	if res.Failed() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// mergeFiles merges source into template and writes the result to output,
// or to w if output is "-".  The output is written even if the merge
// recorded errors.  A diff, if asked for, goes to msgs.
func (cfg *MergeConfig) mergeFiles(w, msgs io.Writer, source, template, output, annotations string) (*merge.Result, error) {
	srcData, src, err := cfg.readDoc(source)
	if err != nil {
		return nil, err
	}
	tmplData, dst, err := cfg.readDoc(template)
	if err != nil {
		return nil, err
	}
	opts := []merge.Option{merge.Logger(cfg.log())}
	if annotations != "" {
		m, err := cfg.loadAnnotations(annotations)
		if err != nil {
			return nil, err
		}
		opts = append(opts, merge.Overrides(m))
	}
	res, err := merge.Merge(src, dst, opts...)
	if err != nil {
		return nil, fmt.Errorf("error merging %s into %s: %w", source, template, err)
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(dst, buf); err != nil {
		return nil, err
	}
	if output == "-" {
		if err := encode.Encode(dst, w, cfg.encOpts(w)...); err != nil {
			return nil, err
		}
	} else {
		if !cfg.NoBackup {
			if err := afero.WriteFile(cfg.Fs, output+".backup", srcData, 0644); err != nil {
				return nil, fmt.Errorf("error writing backup: %w", err)
			}
		}
		if err := afero.WriteFile(cfg.Fs, output, buf.Bytes(), 0644); err != nil {
			return nil, err
		}
		cfg.log().Debug("wrote output", "path", output, "warnings", len(res.Warnings), "errors", len(res.Errors))
	}
	if cfg.Diff {
		if err := cfg.writeDiff(msgs, string(tmplData), buf.String()); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (cfg *MergeConfig) loadAnnotations(p string) (map[string]string, error) {
	var f format.Format
	if cfg.Annotations != nil {
		f = *cfg.Annotations
	} else {
		var err error
		f, err = format.FromPath(p)
		if err != nil {
			return nil, fmt.Errorf("%w (use -I)", err)
		}
	}
	file, err := cfg.Fs.Open(p)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	m, err := overrides.Load(file, f)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", p, err)
	}
	return m, nil
}

func (cfg *MergeConfig) writeDiff(w io.Writer, from, to string) error {
	lines := libdiff.Lines(from, to)
	if !libdiff.Changed(lines) {
		return nil
	}
	var paint func(libdiff.Op, string) string
	if cfg.colors(w) {
		del := color.New(color.FgRed).SprintFunc()
		ins := color.New(color.FgGreen).SprintFunc()
		paint = func(op libdiff.Op, s string) string {
			switch op {
			case libdiff.Delete:
				return del(s)
			case libdiff.Insert:
				return ins(s)
			}
			return s
		}
	}
	return libdiff.Write(w, lines, cfg.Context, paint)
}
