package ui

import (
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TextInput handles text editing with cursor navigation.
type TextInput struct {
	Text   string
	Cursor int // rune position within Text

	// Multiline lets Enter insert a newline instead of being left to the screen.
	Multiline bool
	// MaxLen caps the text length in runes; 0 means unlimited.
	MaxLen int
}

// SetText replaces the text and moves cursor to the end.
func (ti *TextInput) SetText(text string) {
	ti.Text = text
	ti.Cursor = utf8.RuneCountInString(text)
}

// Clear resets the text and cursor.
func (ti *TextInput) Clear() {
	ti.Text = ""
	ti.Cursor = 0
}

// Update processes input events. Returns true if the text changed.
func (ti *TextInput) Update() bool {
	changed := false
	runeCount := utf8.RuneCountInString(ti.Text)

	// Cursor movement
	if inputRepeating(ebiten.KeyArrowLeft) {
		if ti.Cursor > 0 {
			ti.Cursor--
		}
	}
	if inputRepeating(ebiten.KeyArrowRight) {
		if ti.Cursor < runeCount {
			ti.Cursor++
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		ti.Cursor = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		ti.Cursor = runeCount
	}

	// Ctrl+V paste from clipboard
	if inpututil.IsKeyJustPressed(ebiten.KeyV) && (ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)) {
		if clip := readClipboard(); clip != "" {
			ti.insertAtCursor(clip)
			changed = true
		}
	}

	// Character input
	inputChars = ebiten.AppendInputChars(inputChars[:0])
	for _, r := range inputChars {
		if !unicode.IsControl(r) {
			ti.insertAtCursor(string(r))
			changed = true
		}
	}
	if ti.Multiline && inputRepeating(ebiten.KeyEnter) && !IsModifierPressed() {
		ti.insertAtCursor("\n")
		changed = true
	}

	// Backspace: delete before cursor
	if inputRepeating(ebiten.KeyBackspace) && ti.Cursor > 0 {
		before, after := ti.splitAtCursor()
		_, size := utf8.DecodeLastRuneInString(before)
		ti.Text = before[:len(before)-size] + after
		ti.Cursor--
		changed = true
	}

	// Delete: delete after cursor
	if inputRepeating(ebiten.KeyDelete) && ti.Cursor < runeCount {
		_, after := ti.splitAtCursor()
		before := ti.Text[:len(ti.Text)-len(after)]
		_, size := utf8.DecodeRuneInString(after)
		ti.Text = before + after[size:]
		changed = true
	}

	return changed
}

// DisplayText returns the text with a cursor indicator inserted at the cursor position.
func (ti *TextInput) DisplayText() string {
	before, after := ti.splitAtCursor()
	return before + "│" + after
}

func (ti *TextInput) insertAtCursor(s string) {
	if ti.MaxLen > 0 {
		room := ti.MaxLen - utf8.RuneCountInString(ti.Text)
		if room <= 0 {
			return
		}
		if r := []rune(s); len(r) > room {
			s = string(r[:room])
		}
	}
	before, after := ti.splitAtCursor()
	ti.Text = before + s + after
	ti.Cursor += utf8.RuneCountInString(s)
}

// splitAtCursor returns the text before and after the cursor position.
func (ti *TextInput) splitAtCursor() (before, after string) {
	bytePos := 0
	for i := 0; i < ti.Cursor; i++ {
		_, size := utf8.DecodeRuneInString(ti.Text[bytePos:])
		bytePos += size
	}
	return ti.Text[:bytePos], ti.Text[bytePos:]
}

var inputChars []rune
