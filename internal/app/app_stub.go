//go:build !ebiten

package app

// Show reports that the viewer is unavailable in headless builds.
func Show(Outcome, int, int) error {
	return ErrNoGUI
}
