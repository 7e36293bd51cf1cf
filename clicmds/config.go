package clicmds

import (
	"io/ioutil"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/puppetk/elements"
	"gitlab.com/puppetk/puppetk"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "config",
		Usage: "toml config to use",
		Value: "",
	}
}

// LoadConfig reads path, an empty path returns the defaults.
func LoadConfig(path string) (*puppetk.Config, error) {
	cfg := &puppetk.Config{
		FlashColor: elements.DefaultFlashColor,
		Browser:    puppetk.BrowserConfig{Headless: true},
	}
	if path == "" {
		return cfg, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.NewDecoder(strings.NewReader(string(data))).Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return cfg, nil
}

// flags override the config file
func configFromContext(ctx *cli.Context) (*puppetk.Config, error) {
	cfg, err := LoadConfig(ctx.String("config"))
	if err != nil {
		return nil, err
	}

	if ctx.IsSet("url") || cfg.URL == "" {
		cfg.URL = ctx.String("url")
	}
	if ctx.IsSet("datadir") || cfg.DataPath == "" {
		cfg.DataPath = ctx.String("datadir")
	}
	if ctx.IsSet("color") {
		cfg.FlashColor = ctx.String("color")
	}
	if ctx.IsSet("chrome") {
		cfg.Browser.ChromePath = ctx.String("chrome")
	}
	if ctx.IsSet("headless") {
		cfg.Browser.Headless = ctx.Bool("headless")
	}
	return cfg, nil
}
