package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type faceKey struct {
	size float64
	bold bool
}

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
	fontFaces     = map[faceKey]*text.GoTextFace{}
)

// InitFonts loads the regular and bold TTFs used everywhere in the UI.
func InitFonts(regular, bold []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(regular))
	if err != nil {
		return err
	}
	b, err := text.NewGoTextFaceSource(bytes.NewReader(bold))
	if err != nil {
		return err
	}
	regularSource = src
	boldSource = b
	fontFaces = map[faceKey]*text.GoTextFace{}
	return nil
}

func GetFace(size float64, bold bool) *text.GoTextFace {
	key := faceKey{size, bold}
	if face, ok := fontFaces[key]; ok {
		return face
	}
	src := regularSource
	if bold {
		src = boldSource
	}
	face := &text.GoTextFace{Source: src, Size: size}
	fontFaces[key] = face
	return face
}

func drawText(dst *ebiten.Image, txt string, x, y, size float64, bold bool, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, GetFace(size, bold), op)
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	drawText(dst, txt, x, y, size, false, clr)
}

func DrawTextBold(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	drawText(dst, txt, x, y, size, true, clr)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := text.Measure(txt, GetFace(size, false), 0)
	drawText(dst, txt, cx-w/2, cy-h/2, size, false, clr)
}

func DrawTextBoldCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := text.Measure(txt, GetFace(size, true), 0)
	drawText(dst, txt, cx-w/2, cy-h/2, size, true, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, GetFace(size, false), 0)
}

func MeasureTextBold(txt string, size float64) (float64, float64) {
	return text.Measure(txt, GetFace(size, true), 0)
}

// DrawTextWrapped draws txt word-wrapped to maxWidth, honouring explicit
// newlines, and returns the height used. Lines past maxHeight (when > 0) are
// dropped.
func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth, maxHeight float64, size float64, clr color.Color) float64 {
	face := GetFace(size, false)
	lineHeight := face.Size * 1.4

	cy := y
	emit := func(line string) bool {
		if maxHeight > 0 && cy+lineHeight-y > maxHeight {
			return false
		}
		DrawText(dst, line, x, cy, size, clr)
		cy += lineHeight
		return true
	}

	for _, para := range strings.Split(txt, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			if !emit("") {
				break
			}
			continue
		}
		line := words[0]
		full := false
		for _, word := range words[1:] {
			test := line + " " + word
			if w, _ := text.Measure(test, face, 0); w > maxWidth {
				if !emit(line) {
					full = true
					break
				}
				line = word
			} else {
				line = test
			}
		}
		if full || !emit(line) {
			break
		}
	}
	return cy - y
}

func truncateText(s string, maxWidth float64, fontSize float64, bold bool) string {
	face := GetFace(fontSize, bold)
	if w, _ := text.Measure(s, face, 0); w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := string(runes[:i]) + "…"
		w, _ := text.Measure(candidate, face, 0)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
