package clicmds_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
	"gitlab.com/puppetk/clicmds"
)

func newApp(out *bytes.Buffer) *cli.App {
	app := cli.NewApp()
	app.Writer = out
	app.Commands = []*cli.Command{
		{
			Name:   "locate",
			Action: clicmds.Locate,
			Flags:  clicmds.LocateFlags(),
		},
		{
			Name:   "setparam",
			Action: clicmds.SetParam,
			Flags:  clicmds.SetParamFlags(),
		},
		{
			Name:   "params",
			Action: clicmds.Params,
			Flags:  clicmds.ParamsFlags(),
		},
		{
			Name:   "journal",
			Action: clicmds.Journal,
			Flags:  clicmds.JournalFlags(),
		},
	}
	return app
}

func TestLocateFile(t *testing.T) {
	out := &bytes.Buffer{}
	err := newApp(out).Run([]string{"app", "locate", "--file", "testdata/page.html", "--xpath", "//div[@id='flash']"})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if !strings.Contains(out.String(), "//div[@id='flash']: 1 match(es)") {
		t.Fatalf("expected a single match got:\n%s\n", out.String())
	}
	if !strings.Contains(out.String(), "flash me") {
		t.Fatalf("expected element html got:\n%s\n", out.String())
	}
}

func TestLocateAll(t *testing.T) {
	out := &bytes.Buffer{}
	err := newApp(out).Run([]string{"app", "locate", "--file", "testdata/page.html", "--all", "--xpath", "//li", "--xpath", "//table"})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if !strings.Contains(out.String(), "//li: 3 match(es)") {
		t.Fatalf("expected 3 matches got:\n%s\n", out.String())
	}
	if !strings.Contains(out.String(), "//table: 0 match(es)") {
		t.Fatalf("expected no matches got:\n%s\n", out.String())
	}
}

func TestLocateAmbiguous(t *testing.T) {
	out := &bytes.Buffer{}
	err := newApp(out).Run([]string{"app", "locate", "--file", "testdata/page.html", "--xpath", "//li"})
	if err == nil {
		t.Fatalf("expected error for ambiguous locator")
	}
	if !strings.Contains(out.String(), "//li: 0 match(es)") {
		t.Fatalf("expected nothing returned got:\n%s\n", out.String())
	}
}

func TestLocateFlashOut(t *testing.T) {
	dir, err := ioutil.TempDir("", "puppetk")
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	defer os.RemoveAll(dir)
	outFile := filepath.Join(dir, "flashed.html")

	out := &bytes.Buffer{}
	err = newApp(out).Run([]string{"app", "locate", "--file", "testdata/page.html", "--flash", "--color", "pink", "--out", outFile, "--xpath", "//div[@id='flash']"})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}

	data, err := ioutil.ReadFile(outFile)
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	html := string(data)
	if !strings.Contains(html, `data-puppetk-flash="pink"`) {
		t.Fatalf("expected flash marker got:\n%s\n", html)
	}
	if !strings.Contains(html, "background-color: pink") {
		t.Fatalf("expected flashed background got:\n%s\n", html)
	}
}

func TestLocateRequiresSource(t *testing.T) {
	out := &bytes.Buffer{}
	if err := newApp(out).Run([]string{"app", "locate", "--xpath", "//div"}); err == nil {
		t.Fatalf("expected error without --file or --url")
	}
}

func TestLocateJournal(t *testing.T) {
	dir, err := ioutil.TempDir("", "puppetk")
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	defer os.RemoveAll(dir)

	out := &bytes.Buffer{}
	err = newApp(out).Run([]string{"app", "locate", "--file", "testdata/page.html", "--datadir", dir, "--all", "--xpath", "//li", "--xpath", "//button"})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}

	out.Reset()
	if err := newApp(out).Run([]string{"app", "journal", "--datadir", dir}); err != nil {
		t.Fatalf("err: %s\n", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || lines[0] != "Had 2 resolutions" {
		t.Fatalf("expected 2 resolutions got:\n%s\n", out.String())
	}
	if !strings.HasSuffix(lines[1], "getall //li matches=3") {
		t.Fatalf("expected //li first got %s\n", lines[1])
	}
	if !strings.HasSuffix(lines[2], "getall //button matches=1") {
		t.Fatalf("expected //button second got %s\n", lines[2])
	}
}

func TestSetParam(t *testing.T) {
	out := &bytes.Buffer{}
	err := newApp(out).Run([]string{"app", "setparam", "--url", "http://www.google.com/search?hl=en", "--name", "q", "--value", "&="})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if strings.TrimSpace(out.String()) != "http://www.google.com/search?hl=en&q=%26%3D" {
		t.Fatalf("unexpected url %s\n", out.String())
	}
}

func TestParamsConfig(t *testing.T) {
	out := &bytes.Buffer{}
	err := newApp(out).Run([]string{"app", "params", "--config", "testdata/params.toml"})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	expected := strings.Join([]string{
		"debug=true (boolean)",
		"extra=1 (undeclared)",
		"name=&me (string)",
		"verbose=false (boolean, default)",
		"zone=us (string, default)",
	}, "\n")
	if strings.TrimSpace(out.String()) != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s\n", expected, out.String())
	}
}

func TestParamsUndeclared(t *testing.T) {
	out := &bytes.Buffer{}
	err := newApp(out).Run([]string{"app", "params", "--url", "http://x/?a=1&b&c=3", "--string", "a=0", "--bool", "b", "--undeclared"})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if strings.TrimSpace(out.String()) != "c=3" {
		t.Fatalf("expected only c got %s\n", out.String())
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := clicmds.LoadConfig("")
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if cfg.FlashColor != "yellow" || !cfg.Browser.Headless {
		t.Fatalf("unexpected defaults %#v\n", cfg)
	}

	cfg, err = clicmds.LoadConfig("testdata/params.toml")
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if cfg.Params.Strings["zone"] != "us" || len(cfg.Params.Booleans) != 2 {
		t.Fatalf("unexpected params %#v\n", cfg.Params)
	}

	if _, err := clicmds.LoadConfig("testdata/missing.toml"); err == nil {
		t.Fatalf("expected error for missing config")
	}
}
