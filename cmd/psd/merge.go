package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/psd-format/go-psd/codec"
	"github.com/psd-format/go-psd/format"
	"github.com/psd-format/go-psd/ir"
	"github.com/psd-format/go-psd/mapop"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: merge requires a base document", cli.ErrUsage)
	}
	if cfg.MergePatch {
		return mergePatch(cfg, cc, args)
	}
	base, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	overrides := make([]*ir.Node, 0, len(args)-1)
	for _, arg := range args[1:] {
		node, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		overrides = append(overrides, node)
	}
	res, err := mapop.Merge(base, overrides, cfg.Force)
	if err != nil {
		return err
	}
	return writeNode(cfg.MainConfig, cc.Out, res)
}

// mergePatch applies RFC 7386 merge-patch semantics over raw json
// documents, then renders the result in the output format.
func mergePatch(cfg *MergeConfig, cc *cli.Context, args []string) error {
	doc, err := readRaw(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		patch, err := readRaw(arg)
		if err != nil {
			return err
		}
		doc, err = jsonpatch.MergePatch(doc, patch)
		if err != nil {
			return fmt.Errorf("error applying merge patch %s: %w", arg, err)
		}
	}
	node, err := codec.Decode(doc, format.JSONFormat)
	if err != nil {
		return err
	}
	return writeNode(cfg.MainConfig, cc.Out, node)
}
