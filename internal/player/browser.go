package player

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Browser opens targets in the system default browser.
type Browser struct{}

func (b *Browser) Name() string { return "browser" }

func (b *Browser) Available() bool {
	_, err := exec.LookPath(b.opener())
	return err == nil
}

// Open launches the target URL detached; the browser owns playback from
// here and reports nothing back.
func (b *Browser) Open(targetURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", targetURL)
	case "darwin":
		cmd = exec.Command("open", targetURL)
	default:
		cmd = exec.Command("xdg-open", targetURL)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	// Detach: the browser process outlives us.
	return cmd.Process.Release()
}

func (b *Browser) opener() string {
	switch runtime.GOOS {
	case "windows":
		return "rundll32"
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}
