package icon

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
)

// Theme colors from the app
var (
	tileYellow = color.RGBA{R: 0xFA, G: 0xCC, B: 0x15, A: 0xFF}
	tileShade  = color.RGBA{R: 0xEA, G: 0xB3, B: 0x08, A: 0xFF}
	headBlack  = color.RGBA{R: 0x09, G: 0x09, B: 0x0B, A: 0xFF}
	eyeWhite   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a yellow tile with a fighter's head silhouette on it.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	f := rasterx.NewFiller(size, size, rasterx.NewScannerGV(size, size, img, img.Bounds()))

	fill := func(c color.Color, shape func(rasterx.Adder)) {
		f.Clear()
		f.SetColor(c)
		shape(f)
		f.Draw()
	}

	// Tile with a darker lower band
	fill(tileYellow, func(a rasterx.Adder) {
		rasterx.AddRoundRect(0, 0, s, s, s*0.18, s*0.18, 0, rasterx.RoundGap, a)
	})
	fill(tileShade, func(a rasterx.Adder) {
		rasterx.AddRoundRect(0, s*0.78, s, s, s*0.18, s*0.18, 0, rasterx.RoundGap, a)
	})

	// Shoulders, then the head above them
	fill(headBlack, func(a rasterx.Adder) {
		rasterx.AddEllipse(s*0.5, s*0.98, s*0.34, s*0.22, 0, a)
	})
	fill(headBlack, func(a rasterx.Adder) {
		rasterx.AddCircle(s*0.5, s*0.44, s*0.22, a)
	})

	// Eyes
	fill(eyeWhite, func(a rasterx.Adder) {
		rasterx.AddEllipse(s*0.42, s*0.42, s*0.035, s*0.06, 0, a)
		rasterx.AddEllipse(s*0.58, s*0.42, s*0.035, s*0.06, 0, a)
	})
	return img
}
