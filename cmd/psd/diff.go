package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/psd-format/go-psd/encode"
	"github.com/psd-format/go-psd/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two arguments", cli.ErrUsage)
	}
	a, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := readArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	aText, err := renderPlain(cfg, a)
	if err != nil {
		return err
	}
	bText, err := renderPlain(cfg, b)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(aText, bText, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if f, ok := cc.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		_, err = fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		return err
	}
	_, err = fmt.Fprint(cc.Out, dmp.PatchToText(dmp.PatchMake(aText, diffs)))
	return err
}

// renderPlain formats a node without color so the diff compares
// bytes, not escape sequences.
func renderPlain(cfg *DiffConfig, node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	opts := []encode.EncodeOption{
		encode.AlignKeys(cfg.Align),
		encode.NestArrays(cfg.Nest),
	}
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}
