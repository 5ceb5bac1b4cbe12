package player

import (
	"fmt"
	"os/exec"
)

// Generic runs a user-configured command with the target URL as its single
// argument, for users who route embeds through a dedicated app window.
type Generic struct {
	name string
}

func (g *Generic) Name() string { return g.name }

func (g *Generic) Available() bool {
	_, err := exec.LookPath(g.name)
	return err == nil
}

func (g *Generic) Open(targetURL string) error {
	cmd := exec.Command(g.name, targetURL)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("running %s: %w", g.name, err)
	}
	return cmd.Process.Release()
}
