package main

import (
	"github.com/scott-cotton/cli"

	"github.com/psd-format/go-psd/mapop"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := mapop.FilterOptions{
		KeepKeys:        cfg.KeepKeys,
		KeepTypes:       cfg.KeepTypes,
		KeepNullOrEmpty: cfg.KeepNullOrEmpty,
		NullOrEmpty:     cfg.NullOrEmpty,
		RemoveTypes:     cfg.RemoveTypes,
		RemoveKeys:      cfg.RemoveKeys,
		Where:           cfg.Where,
		RemoveAll:       cfg.RemoveAll,
	}
	for i, arg := range args {
		node, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := mapop.Filter(node, opts); err != nil {
			return err
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := writeNode(cfg.MainConfig, cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}
