package browser

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// FindChrome on the FS, returns the executable and a tmp dir for profiles
func FindChrome() (string, string) {
	profiles := filepath.Join(os.TempDir(), "puppetk")
	switch runtime.GOOS {
	case "windows":
		return "C:\\Program Files (x86)\\Google\\Chrome\\Application\\chrome.exe", profiles
	case "darwin":
		return "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome", profiles
	case "linux":
		for _, name := range []string{"chromium-browser", "chromium", "google-chrome"} {
			if path, err := exec.LookPath(name); err == nil {
				return path, profiles
			}
		}
		return "/usr/bin/chromium-browser", profiles
	}
	return "", profiles
}

// FindKill based on OS
func FindKill(browser string) []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"taskkill", "/IM", browser + ".exe"}
	case "darwin", "linux":
		return []string{"killall", browser}
	}
	return []string{""}
}
