package clicmds

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/puppetk/params"
	"gitlab.com/puppetk/puppetk"
)

// urlWindow is a window that is only a url
type urlWindow string

func (u urlWindow) CurrentURL() string {
	return string(u)
}

func ParamsFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "url",
			Usage: "url to read parameters from",
		},
		&cli.StringSliceFlag{
			Name:  "string",
			Usage: "declare a string parameter, name=default",
		},
		&cli.StringSliceFlag{
			Name:  "bool",
			Usage: "declare a boolean parameter",
		},
		&cli.BoolFlag{
			Name:  "undeclared",
			Usage: "only print parameters that were not declared",
		},
	}
}

// Params prints the parameters of a url, typed by their declarations
func Params(ctx *cli.Context) error {
	cfg, err := configFromContext(ctx)
	if err != nil {
		return err
	}
	if cfg.URL == "" {
		return errors.New("--url is required")
	}

	codec := params.New(urlWindow(cfg.URL))
	codec.Declare(cfg.Params)
	for _, decl := range ctx.StringSlice("string") {
		name, value := decl, ""
		if idx := strings.Index(decl, "="); idx != -1 {
			name, value = decl[:idx], decl[idx+1:]
		}
		codec.DeclareString(name, value)
	}
	for _, name := range ctx.StringSlice("bool") {
		codec.DeclareBoolean(name)
	}

	w := ctx.App.Writer
	if ctx.Bool("undeclared") {
		printParams(w, codec.GetUndeclared())
		return nil
	}

	all := codec.GetAll()
	names := sortedNames(all)
	for _, name := range names {
		decl, ok := codec.Declared(name)
		switch {
		case !ok:
			fmt.Fprintf(w, "%s=%s (undeclared)\n", name, all[name])
		case decl.Type == params.Boolean:
			fmt.Fprintf(w, "%s=%t (%s)\n", name, codec.Bool(name), decl.Type)
		default:
			fmt.Fprintf(w, "%s=%s (%s)\n", name, codec.String(name), decl.Type)
		}
	}

	// declared but absent, shown with their defaults
	for _, decl := range codec.Declarations() {
		if _, ok := all[decl.Name]; ok {
			continue
		}
		if decl.Type == params.Boolean {
			fmt.Fprintf(w, "%s=%t (%s, default)\n", decl.Name, false, decl.Type)
			continue
		}
		fmt.Fprintf(w, "%s=%s (%s, default)\n", decl.Name, decl.Default, decl.Type)
	}
	return nil
}

func SetParamFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "url",
			Usage:    "url to modify",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "name",
			Usage:    "parameter name",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "value",
			Usage: "parameter value",
		},
	}
}

// SetParam prints url with the parameter set
func SetParam(ctx *cli.Context) error {
	fmt.Fprintln(ctx.App.Writer, params.SetURLParam(ctx.String("name"), ctx.String("value"), ctx.String("url")))
	return nil
}

func printParams(w io.Writer, values map[string]string) {
	for _, name := range sortedNames(values) {
		fmt.Fprintf(w, "%s=%s\n", name, values[name])
	}
}

func sortedNames(values map[string]string) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ puppetk.Window = urlWindow("")
