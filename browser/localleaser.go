package browser

import (
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/wirepair/gcd"
	"gitlab.com/puppetk/puppetk"
)

var startupFlags = []string{
	"--enable-automation",
	"--test-type",
	"--disable-client-side-phishing-detection",
	"--disable-component-update",
	"--disable-infobars",
	"--disable-background-networking",
	"--disable-sync",
	"--disable-default-apps",
	"--disable-popup-blocking",
	"--disable-extensions",
	"--disable-features=TranslateUI",
	"--disable-gpu",
	"--disable-dev-shm-usage",
	"--no-sandbox",
	"--no-first-run",
	"--window-size=1024,768",
	"--password-store=basic",
}

// LocalLeaser starts chrome processes on this host
type LocalLeaser struct {
	browserLock sync.RWMutex
	browsers    map[string]*gcd.Gcd
	chrome      string
	tmp         string
	headless    bool
}

// NewLocalLeaser using cfg to find chrome, a nil cfg uses FindChrome and runs headless.
func NewLocalLeaser(cfg *puppetk.BrowserConfig) *LocalLeaser {
	chrome, tmp := FindChrome()
	s := &LocalLeaser{
		browsers: make(map[string]*gcd.Gcd),
		chrome:   chrome,
		tmp:      tmp,
		headless: true,
	}
	if cfg != nil {
		if cfg.ChromePath != "" {
			s.chrome = cfg.ChromePath
		}
		if cfg.ProfileDir != "" {
			s.tmp = cfg.ProfileDir
		}
		s.headless = cfg.Headless
	}
	return s
}

// Acquire starts a new browser and returns its debugger port
func (s *LocalLeaser) Acquire() (string, error) {
	b := gcd.NewChromeDebugger()
	b.DeleteProfileOnExit()

	profileDir, err := newProfile(s.tmp)
	if err != nil {
		return "", err
	}
	port, err := debuggerPort()
	if err != nil {
		return "", err
	}

	flags := append([]string{}, startupFlags...)
	if s.headless {
		flags = append(flags, "--headless")
	}
	b.AddFlags(append(flags, "about:blank"))
	log.Debug().Str("chrome", s.chrome).Str("profile", profileDir).Str("port", port).Msg("starting browser")
	if err := b.StartProcess(s.chrome, profileDir, port); err != nil {
		return "", errors.Wrapf(err, "starting %s", s.chrome)
	}
	s.browserLock.Lock()
	s.browsers[port] = b
	s.browserLock.Unlock()

	return port, nil
}

// Count of running browsers
func (s *LocalLeaser) Count() (string, error) {
	s.browserLock.RLock()
	count := len(s.browsers)
	s.browserLock.RUnlock()
	return strconv.Itoa(count), nil
}

// Return stops the browser listening on port
func (s *LocalLeaser) Return(port string) error {
	s.browserLock.Lock()
	defer s.browserLock.Unlock()

	if b, ok := s.browsers[port]; ok {
		if err := b.ExitProcess(); err != nil {
			return err
		}
		delete(s.browsers, port)
		return nil
	}

	return errors.New("not found")
}

// Cleanup stops every browser this leaser started and removes their profiles
func (s *LocalLeaser) Cleanup() (string, error) {
	s.browserLock.Lock()
	for port, b := range s.browsers {
		if err := b.ExitProcess(); err != nil {
			s.browserLock.Unlock()
			return "", err
		}
		delete(s.browsers, port)
	}
	s.browserLock.Unlock()

	if err := RemoveProfiles(s.tmp); err != nil {
		return "", err
	}
	return "ok", nil
}
