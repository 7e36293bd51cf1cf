package browser

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/wirepair/gcd"
)

// Session is a browser started by a leaser with a single tab open
type Session struct {
	Tab    *Tab
	g      *gcd.Gcd
	port   string
	leaser LeaserService
}

// Open starts a browser through leaser and opens a tab in it
func Open(ctx context.Context, leaser LeaserService) (*Session, error) {
	port, err := leaser.Acquire()
	if err != nil {
		return nil, errors.Wrap(err, "acquiring browser")
	}

	g := gcd.NewChromeDebugger()
	if err := g.ConnectToInstance("localhost", port); err != nil {
		leaser.Return(port)
		return nil, errors.Wrap(err, "connecting to browser")
	}

	target, err := g.NewTab()
	if err != nil {
		leaser.Return(port)
		return nil, &InvalidTabErr{Message: err.Error()}
	}

	log.Ctx(ctx).Info().Str("port", port).Msg("browser session opened")
	return &Session{Tab: NewTab(ctx, target), g: g, port: port, leaser: leaser}, nil
}

// Close the tab and return the browser to the leaser
func (s *Session) Close() error {
	s.Tab.Close()
	if err := s.g.CloseTab(s.Tab.t); err != nil {
		log.Debug().Err(err).Msg("failed to close tab")
	}
	return s.leaser.Return(s.port)
}
