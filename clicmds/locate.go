package clicmds

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/puppetk/browser"
	"gitlab.com/puppetk/dom"
	"gitlab.com/puppetk/elements"
	"gitlab.com/puppetk/puppetk"
	"gitlab.com/puppetk/store"
)

// LocateFlags for the locate command
func LocateFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "file",
			Usage: "html file to search, if not set --url is loaded in chrome",
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "url to load in chrome",
		},
		&cli.StringSliceFlag{
			Name:     "xpath",
			Usage:    "xpath locator, may be repeated",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "return all matches instead of requiring exactly one",
		},
		&cli.BoolFlag{
			Name:  "flash",
			Usage: "highlight the matched elements",
		},
		&cli.StringFlag{
			Name:  "color",
			Usage: "highlight color",
			Value: elements.DefaultFlashColor,
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "write the (flashed) html document to this file, --file only",
		},
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "record resolutions in a journal in this directory",
		},
		&cli.StringFlag{
			Name:  "chrome",
			Usage: "path to chrome",
		},
		&cli.BoolFlag{
			Name:  "headless",
			Usage: "run chrome headless",
			Value: true,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "how long to wait for --url to load",
			Value: 30 * time.Second,
		},
		&cli.BoolFlag{
			Name:  "killold",
			Usage: "kill running chrome processes before starting",
		},
	}
}

// Locate resolves xpath locators against a document or a live tab
func Locate(ctx *cli.Context) error {
	cfg, err := configFromContext(ctx)
	if err != nil {
		return err
	}

	reporter := &countingReporter{}
	var win puppetk.Window
	var evaluator puppetk.Evaluator
	var doc *dom.Document

	switch {
	case ctx.String("file") != "":
		doc, err = dom.ParseFile(ctx.String("file"))
		if err != nil {
			return err
		}
		if cfg.URL != "" {
			doc.SetURL(cfg.URL)
		}
		win, evaluator = doc, dom.NewEvaluator()
	case cfg.URL != "":
		if ctx.Bool("killold") {
			if err := browser.KillOldProcesses(); err != nil {
				log.Warn().Err(err).Msg("failed to kill old browser processes")
			}
		}
		leaser := browser.NewLocalLeaser(&cfg.Browser)
		defer leaser.Cleanup()

		session, err := browser.Open(ctx.Context, leaser)
		if err != nil {
			return err
		}
		defer session.Close()

		session.Tab.SetNavigationTimeout(ctx.Duration("timeout"))
		if err := session.Tab.Navigate(ctx.Context, cfg.URL); err != nil {
			return err
		}
		win, evaluator = session.Tab, &browser.Evaluator{}
	default:
		return errors.New("one of --file or --url is required")
	}

	puppet := puppetk.NewContext(evaluator, reporter)
	resolver := elements.New(puppet)
	state := puppetk.NewState(ctx.Bool("flash"))

	if cfg.DataPath != "" {
		journal := store.NewJournal(cfg.DataPath)
		if err := journal.Init(); err != nil {
			return err
		}
		defer journal.Close()
		resolver.AddListener(journal.Listener(state))
	}

	flasher := &elements.Flasher{Color: cfg.FlashColor}
	w := ctx.App.Writer
	for _, x := range ctx.StringSlice("xpath") {
		var found []puppetk.Element
		if ctx.Bool("all") {
			found = resolver.GetAll(puppetk.XPath(x), win)
		} else if ele := resolver.Get(puppetk.XPath(x), win, state); ele != nil {
			found = []puppetk.Element{ele}
		}

		log.Info().Str("xpath", x).Int("matches", len(found)).Msg("resolved")
		fmt.Fprintf(w, "%s: %d match(es)\n", x, len(found))
		for _, ele := range found {
			if state.Interactive {
				flasher.Flash(ele, true)
			}
			fmt.Fprintf(w, "  %s\n", describe(ele))
		}
	}

	if out := ctx.String("out"); out != "" && doc != nil {
		if err := ioutil.WriteFile(out, []byte(doc.String()), 0644); err != nil {
			return err
		}
	}

	if reporter.count > 0 {
		return errors.Errorf("%d locator(s) failed to resolve", reporter.count)
	}
	return nil
}

func describe(ele puppetk.Element) string {
	switch e := ele.(type) {
	case *dom.Element:
		return e.OuterHTML()
	case fmt.Stringer:
		return e.String()
	}
	return fmt.Sprintf("%v", ele)
}
