package main

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Cell metrics for the terminal projection of canvas units.
const (
	cellWidth  = 8
	cellHeight = 16
)

type RenderOptions struct {
	Width        int
	Height       int
	ShowGrid     bool
	SelectedID   string
	IncludeBoxes bool
}

// SceneRenderer composites the bitmap frame: grid, recolored vehicle,
// connections with arrowheads, the dashed draft, and (optionally) the
// labeled component boxes that normally live on the overlay layer.
// Render is event-driven; callers invoke it when observed state changed,
// never on a timer.
type SceneRenderer struct {
	vehicles *VehicleRenderer
	face     font.Face
}

func NewSceneRenderer(vehicles *VehicleRenderer) (*SceneRenderer, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &SceneRenderer{vehicles: vehicles, face: face}, nil
}

func (r *SceneRenderer) RenderBitmap(scene *Scene, vt VehicleType, vehicleColor string, opts RenderOptions) image.Image {
	if opts.Width <= 0 {
		opts.Width = vehicleWidth + 2*gridPitch
	}
	if opts.Height <= 0 {
		opts.Height = vehicleHeight + 2*gridPitch
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	if opts.ShowGrid {
		drawGrid(dc, opts.Width, opts.Height)
	}

	vehicle := r.vehicles.Render(vt, vehicleColor)
	vx := (opts.Width - vehicleWidth) / 2
	vy := (opts.Height - vehicleHeight) / 2
	dc.DrawImage(vehicle, vx, vy)

	for _, conn := range scene.Connections() {
		owner := scene.Component(conn.ComponentID)
		if owner == nil || !owner.IsVisible {
			continue
		}
		drawConnection(dc, owner.Anchor(), conn.Points, conn.Color)
	}

	if draft := scene.Draft(); draft != nil {
		if owner := scene.Component(draft.ComponentID); owner != nil {
			drawDraft(dc, draft.Anchor, draft.Points, owner.LineColor)
		}
	}

	if opts.IncludeBoxes {
		for _, c := range scene.Components() {
			if !c.IsVisible {
				continue
			}
			r.drawBox(dc, c, c.ID == opts.SelectedID)
		}
	}

	return dc.Image()
}

func drawGrid(dc *gg.Context, width, height int) {
	dc.SetHexColor("#e5e7eb")
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += gridPitch {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += gridPitch {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}

func setStrokeColor(dc *gg.Context, hex string) {
	if _, err := colorful.Hex(hex); err != nil {
		hex = defaultLineColor
	}
	dc.SetHexColor(hex)
}

func drawConnection(dc *gg.Context, anchor Point, points []Point, hex string) {
	if len(points) == 0 {
		return
	}
	setStrokeColor(dc, hex)
	dc.SetLineWidth(2)
	dc.MoveTo(float64(anchor.X), float64(anchor.Y))
	for _, p := range points {
		dc.LineTo(float64(p.X), float64(p.Y))
	}
	dc.Stroke()

	from := anchor
	if len(points) > 1 {
		from = points[len(points)-2]
	}
	drawArrowhead(dc, from, points[len(points)-1])
}

// drawArrowhead fills a triangle at tip oriented along the final
// segment's direction.
func drawArrowhead(dc *gg.Context, from, tip Point) {
	angle := math.Atan2(float64(tip.Y-from.Y), float64(tip.X-from.X))
	const size = 9.0
	const spread = 0.45

	tx, ty := float64(tip.X), float64(tip.Y)
	dc.MoveTo(tx, ty)
	dc.LineTo(tx-size*math.Cos(angle-spread), ty-size*math.Sin(angle-spread))
	dc.LineTo(tx-size*math.Cos(angle+spread), ty-size*math.Sin(angle+spread))
	dc.ClosePath()
	dc.Fill()
}

func drawDraft(dc *gg.Context, anchor Point, points []Point, hex string) {
	if len(points) == 0 {
		return
	}
	setStrokeColor(dc, hex)
	dc.SetLineWidth(2)
	dc.SetDash(6, 4)
	dc.MoveTo(float64(anchor.X), float64(anchor.Y))
	for _, p := range points {
		dc.LineTo(float64(p.X), float64(p.Y))
	}
	dc.Stroke()
	dc.SetDash()
}

func (r *SceneRenderer) drawBox(dc *gg.Context, c ComponentBox, selected bool) {
	x, y := float64(c.X), float64(c.Y)

	dc.SetHexColor("#1f2937")
	dc.DrawRoundedRectangle(x, y, boxWidth, boxHeight, 6)
	dc.Fill()

	setStrokeColor(dc, c.LineColor)
	if selected {
		dc.SetLineWidth(4)
	} else {
		dc.SetLineWidth(2)
	}
	dc.DrawRoundedRectangle(x, y, boxWidth, boxHeight, 6)
	dc.Stroke()

	dc.SetFontFace(r.face)
	dc.SetHexColor("#f9fafb")
	dc.DrawStringAnchored(c.Label, x+boxWidth/2, y+14, 0.5, 0.5)
	if sub := boxSubtitle(c); sub != "" {
		dc.SetHexColor("#9ca3af")
		dc.DrawStringAnchored(sub, x+boxWidth/2, y+28, 0.5, 0.5)
	}
}

func boxSubtitle(c ComponentBox) string {
	switch {
	case c.Brand != "" && c.Model != "":
		return c.Brand + " " + c.Model
	case c.Brand != "":
		return c.Brand
	default:
		return c.Model
	}
}

// --- terminal projection ---------------------------------------------

// cellFrame is the character-cell view of the scene: runes plus a
// parallel per-cell hex color ("" means the terminal default).
type cellFrame struct {
	width  int
	height int
	runes  [][]rune
	colors [][]string
}

func newCellFrame(width, height int) *cellFrame {
	f := &cellFrame{width: width, height: height}
	f.runes = make([][]rune, height)
	f.colors = make([][]string, height)
	for y := 0; y < height; y++ {
		f.runes[y] = make([]rune, width)
		f.colors[y] = make([]string, width)
		for x := 0; x < width; x++ {
			f.runes[y][x] = ' '
		}
	}
	return f
}

func (f *cellFrame) set(x, y int, r rune, hex string) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.runes[y][x] = r
	f.colors[y][x] = hex
}

func toCell(p Point) (int, int) {
	return p.X / cellWidth, p.Y / cellHeight
}

// RenderCells projects the scene onto a character grid for the TUI.
// Same draw order as the bitmap: grid, vehicle sample, connections,
// draft, box overlays on top.
func (r *SceneRenderer) RenderCells(scene *Scene, vt VehicleType, vehicleColor string, opts RenderOptions) *cellFrame {
	f := newCellFrame(opts.Width, opts.Height)

	if opts.ShowGrid {
		for cy := 0; cy < opts.Height; cy++ {
			for cx := 0; cx < opts.Width; cx++ {
				if (cx*cellWidth)%(gridPitch*4) == 0 && (cy*cellHeight)%(gridPitch*4) == 0 {
					f.set(cx, cy, '·', "#4b5563")
				}
			}
		}
	}

	r.sampleVehicle(f, vt, vehicleColor, opts)

	for _, conn := range scene.Connections() {
		owner := scene.Component(conn.ComponentID)
		if owner == nil || !owner.IsVisible {
			continue
		}
		drawCellPolyline(f, owner.Anchor(), conn.Points, conn.Color, false)
	}
	if draft := scene.Draft(); draft != nil {
		if owner := scene.Component(draft.ComponentID); owner != nil {
			drawCellPolyline(f, draft.Anchor, draft.Points, owner.LineColor, true)
		}
	}

	for _, c := range scene.Components() {
		if !c.IsVisible {
			continue
		}
		drawCellBox(f, c, c.ID == opts.SelectedID)
	}
	return f
}

// sampleVehicle downsamples the recolored bitmap into shaded cells so
// the silhouette is visible in the terminal.
func (r *SceneRenderer) sampleVehicle(f *cellFrame, vt VehicleType, vehicleColor string, opts RenderOptions) {
	img := r.vehicles.Render(vt, vehicleColor)
	offX := (opts.Width*cellWidth - vehicleWidth) / 2
	offY := (opts.Height*cellHeight - vehicleHeight) / 2
	for cy := 0; cy < opts.Height; cy++ {
		for cx := 0; cx < opts.Width; cx++ {
			px := cx*cellWidth + cellWidth/2 - offX
			py := cy*cellHeight + cellHeight/2 - offY
			if px < 0 || py < 0 || px >= vehicleWidth || py >= vehicleHeight {
				continue
			}
			cr, cg, cb, ca := img.At(px, py).RGBA()
			if ca == 0 {
				continue
			}
			hex := fmt.Sprintf("#%02x%02x%02x", uint8(cr>>8), uint8(cg>>8), uint8(cb>>8))
			f.set(cx, cy, '▒', hex)
		}
	}
}

func drawCellPolyline(f *cellFrame, anchor Point, points []Point, hex string, dashed bool) {
	if len(points) == 0 {
		return
	}
	prev := anchor
	for _, p := range points {
		drawCellSegment(f, prev, p, hex, dashed)
		prev = p
	}
	tx, ty := toCell(points[len(points)-1])
	f.set(tx, ty, '◆', hex)
}

// drawCellSegment walks the segment in cell space, one step along the
// dominant axis per cell.
func drawCellSegment(f *cellFrame, a, b Point, hex string, dashed bool) {
	x0, y0 := toCell(a)
	x1, y1 := toCell(b)
	dx, dy := x1-x0, y1-y0
	steps := maxInt(absInt(dx), absInt(dy))
	if steps == 0 {
		f.set(x0, y0, lineRune(dx, dy), hex)
		return
	}
	for i := 0; i <= steps; i++ {
		if dashed && i%2 == 1 {
			continue
		}
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		f.set(x, y, lineRune(dx, dy), hex)
	}
}

func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func drawCellBox(f *cellFrame, c ComponentBox, selected bool) {
	x0, y0 := c.X/cellWidth, c.Y/cellHeight
	w := boxWidth / cellWidth
	h := boxHeight/cellHeight + 1

	hex := c.LineColor
	tl, tr, bl, br, hz, vt := '┌', '┐', '└', '┘', '─', '│'
	if selected {
		tl, tr, bl, br, hz, vt = '╔', '╗', '╚', '╝', '═', '║'
	}

	for x := x0; x <= x0+w; x++ {
		f.set(x, y0, hz, hex)
		f.set(x, y0+h, hz, hex)
	}
	for y := y0; y <= y0+h; y++ {
		f.set(x0, y, vt, hex)
		f.set(x0+w, y, vt, hex)
	}
	f.set(x0, y0, tl, hex)
	f.set(x0+w, y0, tr, hex)
	f.set(x0, y0+h, bl, hex)
	f.set(x0+w, y0+h, br, hex)

	label := c.Label
	if len(label) > w-1 {
		label = label[:w-1]
	}
	for i, r := range label {
		f.set(x0+1+i, y0+1, r, "")
	}
	if sub := boxSubtitle(c); sub != "" && h > 2 {
		if len(sub) > w-1 {
			sub = sub[:w-1]
		}
		for i, r := range sub {
			f.set(x0+1+i, y0+2, r, "#9ca3af")
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
