// Package viewer opens processed files in the platform's document viewer.
// The capability sits behind an interface so the tools stay testable and
// platform dispatch stays out of the core packages.
package viewer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher opens a file in an external viewer.
type Launcher interface {
	Open(path string) error
}

// New returns a launcher for the current platform. A non-empty command
// overrides platform detection.
func New(command string) Launcher {
	return &execLauncher{command: command}
}

type execLauncher struct {
	command string
}

func (l *execLauncher) Open(path string) error {
	for _, candidate := range l.candidates() {
		bin, err := exec.LookPath(candidate)
		if err != nil {
			continue
		}
		// Detach; the tool should not wait for the viewer to exit.
		return exec.Command(bin, path).Start()
	}
	return fmt.Errorf("no viewer found to open %s", path)
}

func (l *execLauncher) candidates() []string {
	if l.command != "" {
		return []string{l.command}
	}
	switch runtime.GOOS {
	case "windows":
		return []string{"explorer.exe"}
	case "darwin":
		return []string{"open"}
	default:
		return []string{"evince", "xdg-open"}
	}
}
