package clicmds

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/puppetk/store"
)

func JournalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "data directory",
			Value: "puppetktmp",
		},
		&cli.Int64Flag{
			Name:  "limit",
			Usage: "max number of resolutions to print, 0 for all",
			Value: 0,
		},
	}
}

// Journal prints recorded resolutions in order
func Journal(ctx *cli.Context) error {
	journal := store.NewJournal(ctx.String("datadir"))
	if err := journal.Init(); err != nil {
		log.Error().Err(err).Msg("failed to init journal for viewing")
		return err
	}
	defer journal.Close()

	events, err := journal.Events(ctx.Int64("limit"))
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "Had %d resolutions\n", len(events))
	for _, evt := range events {
		kind := "get"
		if evt.All {
			kind = "getall"
		}
		fmt.Fprintf(w, "%s session=%d %s %s matches=%d\n", evt.Time.Format(time.RFC3339), evt.SessionID, kind, evt.Locator, evt.Matches)
	}
	return nil
}
