package cache

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"path"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Decode decodes PNG, JPEG or SVG data. SVGs are rasterized so that their
// longer side is svgSize pixels. name is only used to recognise SVGs by
// extension.
func Decode(data []byte, name string, svgSize int) (image.Image, error) {
	if isSVG(data, name) {
		return rasterizeSVG(data, svgSize)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

func isSVG(data []byte, name string) bool {
	if strings.EqualFold(path.Ext(name), ".svg") {
		return true
	}
	head := bytes.TrimSpace(data[:min(len(data), 512)])
	return bytes.HasPrefix(head, []byte("<svg")) ||
		(bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(head, []byte("<svg")))
}

func rasterizeSVG(data []byte, size int) (image.Image, error) {
	if size <= 0 {
		size = 256
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	w, h := size, size
	if vw, vh := icon.ViewBox.W, icon.ViewBox.H; vw > 0 && vh > 0 {
		if vw >= vh {
			h = int(math.Max(1, math.Round(float64(size)*vh/vw)))
		} else {
			w = int(math.Max(1, math.Round(float64(size)*vw/vh)))
		}
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return rgba, nil
}
