package main

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
)

// exportPNG writes the composited canvas bitmap. The default export
// matches what the canvas shows (no box overlays); includeBoxes adds the
// overlay layer for a standalone shareable image.
func (m *model) exportPNG(filename string, includeBoxes bool) error {
	img := m.renderer.RenderBitmap(m.scene, m.vehicleType, m.vehicleColor, RenderOptions{
		Width:        canvasPixelWidth(m.canvasWidth()),
		Height:       canvasPixelHeight(m.canvasHeight()),
		ShowGrid:     m.showGrid,
		SelectedID:   m.selectedID,
		IncludeBoxes: includeBoxes,
	})
	dc := gg.NewContextForImage(img)
	if err := dc.SavePNG(m.config.GetSavePath(filename)); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	return nil
}

// copyConfigJSON places the current configuration on the system
// clipboard, pretty-printed.
func (m *model) copyConfigJSON() error {
	cfg := m.scene.Snapshot(m.vehicleType, m.vehicleColor)
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	return clipboard.WriteAll(string(raw))
}

func canvasPixelWidth(cells int) int {
	return cells * cellWidth
}

func canvasPixelHeight(cells int) int {
	return cells * cellHeight
}
