package main

import (
	"image"
	"image/color"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticSilhouette builds a 500x300 test image with known regions:
// a transparent top band, then tire-black, rim-gray, dark-red and
// body-white vertical bands across the lower portion.
func syntheticSilhouette() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, vehicleWidth, vehicleHeight))
	fill := func(x0, x1 int, c color.RGBA) {
		for y := 60; y < vehicleHeight; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	fill(0, 120, color.RGBA{10, 10, 10, 255})      // tire
	fill(120, 240, color.RGBA{120, 120, 120, 255}) // rim gray
	fill(240, 360, color.RGBA{150, 30, 30, 255})   // dark red, no rule applies
	fill(360, 500, color.RGBA{240, 240, 240, 255}) // body panel
	return img
}

func TestRecolorClassification(t *testing.T) {
	body, err := colorful.Hex("#ff0000")
	require.NoError(t, err)

	out := RecolorVehicle(syntheticSilhouette(), body)

	sample := func(x, y int) color.RGBA {
		return out.RGBAAt(x, y)
	}

	// Transparent pixels are skipped entirely.
	assert.Equal(t, color.RGBA{}, sample(250, 30))

	// Tires forced to near-black.
	assert.Equal(t, color.RGBA{20, 20, 20, 255}, sample(60, 150))

	// Gray mid band forced to rim silver.
	assert.Equal(t, color.RGBA{160, 160, 170, 255}, sample(180, 150))

	// Dark saturated pixels match no rule and pass through.
	assert.Equal(t, color.RGBA{150, 30, 30, 255}, sample(300, 150))

	// Body panels blend the user color with the original shading:
	// lum(240,240,240) = 240/255, shade = lum*0.5+0.5,
	// R = 255*shade*0.7 + 240*0.3 = 245, G = B = 0 + 72.
	assert.Equal(t, color.RGBA{245, 72, 72, 255}, sample(430, 150))
}

func TestRecolorOutputSize(t *testing.T) {
	body, _ := colorful.Hex("#3b82f6")
	// A tiny source gets scaled into the fixed logical buffer.
	src := image.NewRGBA(image.Rect(0, 0, 50, 30))
	out := RecolorVehicle(src, body)
	assert.Equal(t, vehicleWidth, out.Bounds().Dx())
	assert.Equal(t, vehicleHeight, out.Bounds().Dy())
}

func TestVehicleRendererCaches(t *testing.T) {
	r := NewVehicleRenderer("")
	first := r.Render(VehicleSedan, "#3b82f6")
	second := r.Render(VehicleSedan, "#3b82f6")
	assert.Same(t, first, second, "same type and color must hit the cache")

	recolored := r.Render(VehicleSedan, "#22c55e")
	assert.NotSame(t, first, recolored)

	other := r.Render(VehicleVan, "#3b82f6")
	assert.NotSame(t, first, other)
}

func TestVehicleRendererBadHexFallsBack(t *testing.T) {
	r := NewVehicleRenderer("")
	out := r.Render(VehicleSedan, "not-a-color")
	require.NotNil(t, out)
	assert.Equal(t, vehicleWidth, out.Bounds().Dx())
}

func TestVehicleRendererMissingAssetUsesBuiltin(t *testing.T) {
	r := NewVehicleRenderer(t.TempDir()) // empty dir, no PNGs
	out := r.Render(VehicleSUV, "#3b82f6")
	require.NotNil(t, out)

	opaque := 0
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] > 0 {
			opaque++
		}
	}
	assert.Greater(t, opaque, 1000, "builtin silhouette must be visible, not blank")
}

func TestBuiltinSilhouetteRegions(t *testing.T) {
	body, _ := colorful.Hex("#3b82f6")
	out := RecolorVehicle(builtinSilhouette(VehicleSedan), body)

	// Wheel centers land on rim silver, tire ring on near-black.
	assert.Equal(t, color.RGBA{160, 160, 170, 255}, out.RGBAAt(140, 225))
	assert.Equal(t, color.RGBA{20, 20, 20, 255}, out.RGBAAt(140, 190))

	// The body shell picks up the blue blend: more blue than red.
	shell := out.RGBAAt(250, 195)
	assert.Greater(t, shell.B, shell.R)
}

func TestVehicleTypeCatalog(t *testing.T) {
	assert.Len(t, vehicleTypes, 6)
	for _, vt := range vehicleTypes {
		assert.True(t, vt.Valid())
		assert.NotEmpty(t, vt.Label())
	}
	assert.False(t, VehicleType("hovercraft").Valid())
	assert.Equal(t, "hovercraft", VehicleType("hovercraft").Label())
}
