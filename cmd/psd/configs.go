package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/psd-format/go-psd/encode"
	"github.com/psd-format/go-psd/format"
	"github.com/psd-format/go-psd/ir"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Align bool `cli:"name=align desc='align keys within each mapping'"`
	Nest  bool `cli:"name=nest desc='keep nested sequences nested'"`

	P bool `cli:"name=p aliases=psd desc='output in psd'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat resolves the format a given input argument is read in:
// -I wins, then the -j/-y shorthands, then the argument's own file
// suffix, and finally json.
func (cfg *MainConfig) inFormat(arg string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if arg != "-" {
		if f, err := format.ForPath(arg); err == nil && !f.IsLiteral() {
			return f
		}
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.PsdFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.AlignKeys(cfg.Align),
		encode.NestArrays(cfg.Nest),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Force      bool `cli:"name=force desc='let null or empty overrides replace existing values'"`
	MergePatch bool `cli:"name=mergepatch desc='apply RFC 7386 json merge patch semantics (json inputs)'"`

	Merge *cli.Command
}

type FilterConfig struct {
	*MainConfig
	NullOrEmpty     bool   `cli:"name=nullOrEmpty desc='remove entries with null or empty string values'"`
	KeepNullOrEmpty bool   `cli:"name=keepNullOrEmpty desc='keep entries with null or empty string values'"`
	RemoveAll       bool   `cli:"name=removeAll desc='remove every entry no keep flag pins'"`
	Where           string `cli:"name=where desc='remove entries matching an expression over key, type, value'"`

	RemoveKeys, KeepKeys   []string
	RemoveTypes, KeepTypes []ir.Type

	Filter *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}
