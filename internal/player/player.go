// Package player hands a resolved playback target to an external surface.
// The target is a third-party embed document, so the surface is a web
// browser (or any configured command that accepts a URL). All invocations
// use exec.Command with explicit argument slices, never a shell.
package player

// Player is the interface for playback surfaces.
type Player interface {
	// Open loads the playback target in the surface.
	Open(targetURL string) error

	// Name returns the surface name.
	Name() string

	// Available checks if the surface can be launched on this system.
	Available() bool
}

// New creates a player by name. "browser" (the default) opens the system
// browser; any other name is treated as a command to run with the target
// URL as its single argument.
func New(name string) Player {
	switch name {
	case "", "browser":
		return &Browser{}
	default:
		return &Generic{name: name}
	}
}
