//go:build !ebiten

package app

import (
	"fmt"

	"mapgen/internal/worldgen"
)

// Viewer is a placeholder that satisfies the API expected by the GUI build.
type Viewer struct{}

// New panics to indicate that the ebiten build tag is required for GUI
// support.
func New(worldgen.Config, int) (*Viewer, error) {
	panic("app.New requires building with the 'ebiten' tag")
}

// Update always reports that the GUI build tag is missing.
func (v *Viewer) Update() error {
	return fmt.Errorf("app.Viewer.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (v *Viewer) Draw(any) {}

// Layout returns zeros in the headless build.
func (v *Viewer) Layout(int, int) (int, int) { return 0, 0 }
