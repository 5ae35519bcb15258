package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/psd-format/go-psd/ir"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: psd/p, script/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "psd").
		WithSynopsis("psd [opts] command [opts]").
		WithDescription("psd is a tool for working with data-literal mappings.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return psdMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			MergeCommand(cfg),
			FilterCommand(cfg),
			DiffCommand(cfg),
			DumpCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "co").
		WithSynopsis("convert [files]").
		WithDescription("convert json or yaml documents to the output format").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [-force] [-mergepatch] <base> [overrides]").
		WithDescription("fold override mappings into a base mapping, left to right").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "removeKey",
			Description: "remove the entry with this key (repeatable)",
			Type:        cli.NamedFuncOpt(appendStrOpt(&cfg.RemoveKeys), "(key)"),
		},
		&cli.Opt{
			Name:        "keepKey",
			Description: "keep the entry with this key (repeatable)",
			Type:        cli.NamedFuncOpt(appendStrOpt(&cfg.KeepKeys), "(key)"),
		},
		&cli.Opt{
			Name:        "removeType",
			Description: "remove entries with values of this type (repeatable)",
			Type:        cli.NamedFuncOpt(appendTypeOpt(&cfg.RemoveTypes), "(type)"),
		},
		&cli.Opt{
			Name:        "keepType",
			Description: "keep entries with values of this type (repeatable)",
			Type:        cli.NamedFuncOpt(appendTypeOpt(&cfg.KeepTypes), "(type)"),
		})
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter [opts] [files]").
		WithDescription("remove entries from mappings by key, type, emptiness or expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff the rendered forms of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump IR").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func appendStrOpt(dst *[]string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		*dst = append(*dst, a)
		return a, nil
	})
}

func appendTypeOpt(dst *[]ir.Type) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		var t ir.Type
		if err := t.UnmarshalText([]byte(a)); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*dst = append(*dst, t)
		return t, nil
	})
}
