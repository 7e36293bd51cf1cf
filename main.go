package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/puppetk/clicmds"
)

func main() {
	app := cli.NewApp()
	app.Name = "puppetk"
	app.Version = "0.1"
	app.Usage = "locate, flash and parameterize page elements"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if ctx.Bool("debug") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:    "locate",
			Aliases: []string{"l"},
			Usage:   "resolve xpath locators against an html file or a url",
			Action:  clicmds.Locate,
			Flags:   clicmds.LocateFlags(),
		},
		{
			Name:    "setparam",
			Aliases: []string{"s"},
			Usage:   "set a query parameter on a url",
			Action:  clicmds.SetParam,
			Flags:   clicmds.SetParamFlags(),
		},
		{
			Name:    "params",
			Aliases: []string{"p"},
			Usage:   "print the query parameters of a url",
			Action:  clicmds.Params,
			Flags:   clicmds.ParamsFlags(),
		},
		{
			Name:    "journal",
			Aliases: []string{"j"},
			Usage:   "view recorded resolutions",
			Action:  clicmds.Journal,
			Flags:   clicmds.JournalFlags(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("puppetk failed")
	}
}
