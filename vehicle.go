package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

type VehicleType string

const (
	VehicleSUV            VehicleType = "suv"
	VehicleTruckSingleCab VehicleType = "truck-single-cab"
	VehicleTruckExtCab    VehicleType = "truck-ext-cab"
	VehicleSedan          VehicleType = "sedan"
	VehicleVan            VehicleType = "van"
	VehicleHatchback      VehicleType = "sedan-hatchback"
)

var vehicleTypes = []VehicleType{
	VehicleSUV,
	VehicleTruckSingleCab,
	VehicleTruckExtCab,
	VehicleSedan,
	VehicleVan,
	VehicleHatchback,
}

var vehicleLabels = map[VehicleType]string{
	VehicleSUV:            "SUV",
	VehicleTruckSingleCab: "Truck (Single Cab)",
	VehicleTruckExtCab:    "Truck (Extended Cab)",
	VehicleSedan:          "Sedan",
	VehicleVan:            "Van",
	VehicleHatchback:      "Hatchback",
}

func (v VehicleType) Valid() bool {
	_, ok := vehicleLabels[v]
	return ok
}

func (v VehicleType) Label() string {
	if label, ok := vehicleLabels[v]; ok {
		return label
	}
	return string(v)
}

// VehicleRenderer produces the recolored silhouette bitmap for the
// selected vehicle. Results are cached per (type, color) so the pixel
// pass reruns only when the selection actually changes.
type VehicleRenderer struct {
	assetDir string
	cache    map[string]*image.RGBA
}

func NewVehicleRenderer(assetDir string) *VehicleRenderer {
	return &VehicleRenderer{
		assetDir: assetDir,
		cache:    make(map[string]*image.RGBA),
	}
}

// Render returns the recolored bitmap for the vehicle type. Unknown hex
// colors fall back to the default body color rather than failing; a
// missing or undecodable asset falls back to the built-in silhouette so
// the vehicle layer is never blank.
func (r *VehicleRenderer) Render(vt VehicleType, hex string) *image.RGBA {
	key := string(vt) + "|" + hex
	if img, ok := r.cache[key]; ok {
		return img
	}
	body, err := colorful.Hex(hex)
	if err != nil {
		body, _ = colorful.Hex(defaultVehicleColor)
	}
	img := RecolorVehicle(r.silhouette(vt), body)
	r.cache[key] = img
	return img
}

func (r *VehicleRenderer) silhouette(vt VehicleType) image.Image {
	if r.assetDir != "" {
		if img, err := loadSilhouettePNG(filepath.Join(r.assetDir, string(vt)+".png")); err == nil {
			return img
		}
	}
	return builtinSilhouette(vt)
}

func loadSilhouettePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// RecolorVehicle scales the silhouette into a fixed 500x300 buffer and
// classifies every opaque pixel: near-black stays tire-black, the gray
// mid band stays rim-silver, and everything bright enough to be body
// panel takes a shaded blend of the user color. Pure function, no canvas
// dependency, so the classification rules are testable on synthetic
// images.
func RecolorVehicle(src image.Image, body colorful.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, vehicleWidth, vehicleHeight))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	bodyR := body.R * 255
	bodyG := body.G * 255
	bodyB := body.B * 255

	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i+3] == 0 {
			continue
		}
		pr := float64(dst.Pix[i])
		pg := float64(dst.Pix[i+1])
		pb := float64(dst.Pix[i+2])
		lum := (0.299*pr + 0.587*pg + 0.114*pb) / 255

		switch {
		case lum < 0.15:
			// Tires stay near-black regardless of the chosen body color.
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = 20, 20, 20
		case lum < 0.6 && absf(pr-pg) < 20 && absf(pg-pb) < 20:
			// Gray mid band reads as rim metal.
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = 160, 160, 170
		case lum >= 0.3:
			shade := lum*0.5 + 0.5
			dst.Pix[i] = clamp255(bodyR*shade*0.7 + pr*0.3)
			dst.Pix[i+1] = clamp255(bodyG*shade*0.7 + pg*0.3)
			dst.Pix[i+2] = clamp255(bodyB*shade*0.7 + pb*0.3)
		}
	}
	return dst
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp255(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// builtinSilhouette draws a side-view placeholder for the vehicle type.
// Body panels are light gray, tires near-black, and rims mid-gray, so
// the recolor pass classifies each region the same way it would a real
// raster asset.
func builtinSilhouette(vt VehicleType) image.Image {
	dc := gg.NewContext(vehicleWidth, vehicleHeight)

	bodyTone := color.RGBA{205, 205, 205, 255}
	tireTone := color.RGBA{12, 12, 12, 255}
	rimTone := color.RGBA{120, 120, 126, 255}

	// Lower body shell, shared by every type.
	dc.SetColor(bodyTone)
	dc.DrawRoundedRectangle(40, 160, 420, 70, 18)
	dc.Fill()

	// Upper body varies by silhouette.
	switch vt {
	case VehicleSUV:
		dc.DrawRoundedRectangle(90, 95, 300, 80, 22)
	case VehicleTruckSingleCab:
		dc.DrawRoundedRectangle(90, 100, 120, 75, 16)
	case VehicleTruckExtCab:
		dc.DrawRoundedRectangle(90, 100, 180, 75, 16)
	case VehicleVan:
		dc.DrawRoundedRectangle(80, 70, 330, 105, 20)
	case VehicleHatchback:
		dc.MoveTo(110, 175)
		dc.LineTo(170, 105)
		dc.LineTo(330, 105)
		dc.LineTo(400, 175)
		dc.ClosePath()
	default: // sedan
		dc.MoveTo(120, 175)
		dc.LineTo(180, 110)
		dc.LineTo(320, 110)
		dc.LineTo(390, 175)
		dc.ClosePath()
	}
	dc.Fill()

	// Truck bed rail.
	if vt == VehicleTruckSingleCab || vt == VehicleTruckExtCab {
		dc.SetColor(bodyTone)
		dc.DrawRectangle(280, 130, 180, 40)
		dc.Fill()
	}

	for _, wheelX := range []float64{140, 370} {
		dc.SetColor(tireTone)
		dc.DrawCircle(wheelX, 225, 42)
		dc.Fill()
		dc.SetColor(rimTone)
		dc.DrawCircle(wheelX, 225, 20)
		dc.Fill()
	}

	return dc.Image()
}
