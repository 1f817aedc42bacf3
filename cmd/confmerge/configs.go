package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/confmerge/encode"
	"github.com/signadot/confmerge/format"
	"github.com/signadot/confmerge/ir"
	"github.com/signadot/confmerge/parse"
	"github.com/spf13/afero"
)

type MainConfig struct {
	V     bool `cli:"name=v desc='debug logging'"`
	Color bool `cli:"name=color desc='report with color'"`
	Tabs  int  `cli:"name=tabs desc='number of spaces a tab expands to'"`

	Fs     afero.Fs
	Log    *slog.Logger
	Stderr io.Writer

	Main *cli.Command
}

func (cfg *MainConfig) stderr() io.Writer {
	if cfg.Stderr == nil {
		return os.Stderr
	}
	return cfg.Stderr
}

func (cfg *MainConfig) log() *slog.Logger {
	if cfg.Log == nil {
		cfg.Log = newLog(cfg.stderr(), cfg.V)
	}
	return cfg.Log
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseTabWidth(cfg.Tabs)}
}

// colors reports whether output to w is coloured.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if !cfg.colors(w) {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
}

func (cfg *MainConfig) readDoc(p string) ([]byte, *ir.Document, error) {
	d, err := afero.ReadFile(cfg.Fs, p)
	if err != nil {
		return nil, nil, err
	}
	doc, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing %s: %w", p, err)
	}
	return d, doc, nil
}

type MergeConfig struct {
	*MainConfig
	NoBackup bool `cli:"name=nobackup desc='do not write <output>.backup'"`
	Diff     bool `cli:"name=diff desc='show the changes made to the template'"`
	Context  int  `cli:"name=context desc='lines of context in diffs'"`

	Annotations *format.Format

	Merge *cli.Command
}

func (cfg *MergeConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Annotations = &f
		return f, nil
	})
}

type LeavesConfig struct {
	*MainConfig
	Values bool `cli:"name=values desc='show the value of each leaf'"`

	Leaves *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}
