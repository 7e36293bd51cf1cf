package browser

import (
	"io/ioutil"
	"net"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// chrome profiles created by a leaser start with this
const profilePrefix = "puppetk-"

// LeaserService for a browser
type LeaserService interface {
	Acquire() (string, error) // returns port number
	Return(port string) error
	Cleanup() (string, error)
	Count() (string, error)
}

// debuggerPort is a free local port for chrome's remote debugger
func debuggerPort() (string, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", errors.Wrap(err, "finding a debugger port")
	}
	defer l.Close()

	_, port, err := net.SplitHostPort(l.Addr().String())
	return port, err
}

// newProfile creates an empty chrome profile directory under root
func newProfile(root string) (string, error) {
	if root == "" {
		return "", errors.New("no profile directory configured")
	}
	if err := os.MkdirAll(root, 0700); err != nil {
		return "", errors.Wrapf(err, "creating profile root %s", root)
	}
	profile, err := ioutil.TempDir(root, profilePrefix)
	if err != nil {
		return "", errors.Wrap(err, "creating profile")
	}
	return profile, nil
}

// RemoveProfiles that leasers created under root, other files are left alone.
func RemoveProfiles(root string) error {
	if root == "" {
		return nil
	}
	profiles, err := filepath.Glob(filepath.Join(root, profilePrefix+"*"))
	if err != nil {
		return err
	}
	for _, profile := range profiles {
		if err := os.RemoveAll(profile); err != nil {
			return err
		}
	}
	return nil
}

// KillOldProcesses with a vengence
func KillOldProcesses() error {
	for _, name := range []string{"google-chrome", "chrome", "chromium"} {
		killer := FindKill(name)
		cmd := exec.Command(killer[0], killer[1:]...)
		output, err := cmd.CombinedOutput()
		if err != nil {
			log.Debug().Msgf("%s %s:%s", name, err.Error(), string(output))
		}
	}
	return nil
}
