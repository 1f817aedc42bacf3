package main

import (
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/confmerge/token"
	"github.com/spf13/afero"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Tabs: token.DefaultTabWidth, Fs: afero.NewOsFs(), Stderr: os.Stderr}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "confmerge").
		WithSynopsis("confmerge [opts] command [opts]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return confmergeMain(cfg, cc, args)
		}).
		WithSubs(
			MergeCommand(cfg),
			LeavesCommand(cfg),
			GetCommand(cfg))
}

const mainDescription = `confmerge merges configuration values into a template.

The template is a YAML-like file whose lines are kept as they are, except
those holding values found in the source.  Comments in the template of the
form [MERGE ...] direct the merge:

  [MERGE IGNORE]         keep the template value
  [MERGE FROM .a.b]      take the value at .a.b in the source
  [MERGE INSTEAD .a.b]   take the key and value at .a.b in the source
  [MERGE PREFIX p]       prepend p to the merged scalar
  [MERGE SUPER]          merge the whole subtree as one value
  [MERGE SUPER LIST]     on a first list item, merge the whole list

Addresses name values by keys and list positions, as in .server.ports.0.name.`

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "I",
		Aliases:     []string{"afmt"},
		Description: "annotations format: yaml/y, json/j, toml/t (default by suffix)",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [opts] <source> <template> <output> [annotations]").
		WithDescription("merge source values into template, writing output ('-' for stdout)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeMain(cfg, cc, args)
		})
}

func LeavesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LeavesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Leaves, "leaves").
		WithAliases("l").
		WithSynopsis("leaves [opts] [files]").
		WithDescription("list the addresses merged in template files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return leavesMain(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <address> [files]").
		WithDescription("print the lines at an address").
		WithRun(func(cc *cli.Context, args []string) error {
			return getMain(cfg, cc, args)
		})
}
