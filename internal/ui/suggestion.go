package ui

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gabun/headicons/internal/suggest"
)

const (
	suggestPrompt  = "Your suggestion."
	suggestThanks  = "Thanks for your suggestion !"
	suggestFailure = "Error while sending, please try again."
)

// Sender delivers a suggestion message.
type Sender interface {
	Send(ctx context.Context, message string) error
}

// SuggestionState is where the suggestion form is in its send cycle.
type SuggestionState int

const (
	SuggestionEditing SuggestionState = iota
	SuggestionSending
	SuggestionSent
	SuggestionFailed
)

// SuggestionScreen is the modal form for proposing a new icon.
type SuggestionScreen struct {
	Input TextInput

	sender Sender

	mu         sync.Mutex
	state      SuggestionState
	note       string
	clearInput bool

	panel    ButtonRect
	inputBox ButtonRect
	sendBtn  ButtonRect
	closeBtn ButtonRect
	cursorOn int
}

func NewSuggestionScreen(sender Sender) *SuggestionScreen {
	return &SuggestionScreen{
		Input:  TextInput{Multiline: true, MaxLen: 1000},
		sender: sender,
	}
}

func (ss *SuggestionScreen) Name() string { return "Suggestion" }
func (ss *SuggestionScreen) Modal() bool  { return true }
func (ss *SuggestionScreen) OnEnter()     {}
func (ss *SuggestionScreen) OnExit()      {}

// State returns the send state and the status line shown under the form.
func (ss *SuggestionScreen) State() (SuggestionState, string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.state, ss.note
}

func (ss *SuggestionScreen) setState(st SuggestionState, note string) {
	ss.mu.Lock()
	ss.state = st
	ss.note = note
	ss.mu.Unlock()
}

// Submit sends the typed message in the background.
func (ss *SuggestionScreen) Submit() {
	st, _ := ss.State()
	if st == SuggestionSending {
		return
	}
	msg := ss.Input.Text
	if ss.sender == nil {
		ss.setState(SuggestionFailed, suggestFailure)
		return
	}
	ss.setState(SuggestionSending, "Sending...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		err := ss.sender.Send(ctx, msg)
		switch {
		case err == nil:
			ss.mu.Lock()
			ss.clearInput = true
			ss.mu.Unlock()
			ss.setState(SuggestionSent, suggestThanks)
		case errors.Is(err, suggest.ErrEmptyMessage):
			ss.setState(SuggestionEditing, suggestPrompt)
		default:
			log.Printf("Failed to send suggestion: %v", err)
			ss.setState(SuggestionFailed, suggestFailure)
		}
	}()
}

func (ss *SuggestionScreen) layout() {
	w, h := float64(ScreenWidth), float64(ScreenHeight)
	pw := min(w-2*PagePadding, 520)
	ph := min(h-2*PagePadding, 380)
	ss.panel = ButtonRect{X: (w - pw) / 2, Y: (h - ph) / 2, W: pw, H: ph}
	p := ss.panel
	ss.closeBtn = ButtonRect{X: p.X + p.W - 44, Y: p.Y + 8, W: 36, H: 36}
	ss.inputBox = ButtonRect{X: p.X + 20, Y: p.Y + 64, W: p.W - 40, H: p.H - 64 - 110}
	ss.sendBtn = ButtonRect{X: p.X + 20, Y: p.Y + p.H - 64, W: p.W - 40, H: 44}
}

func (ss *SuggestionScreen) Update() (*ScreenTransition, error) {
	ss.layout()
	ss.cursorOn++
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	ss.mu.Lock()
	if ss.clearInput {
		ss.Input.Clear()
		ss.clearInput = false
	}
	ss.mu.Unlock()

	st, _ := ss.State()
	if st != SuggestionSending {
		if ss.Input.Update() && st != SuggestionEditing {
			ss.setState(SuggestionEditing, "")
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && IsModifierPressed() {
			ss.Submit()
		}
	}

	if mx, my, released := MouseJustReleased(); released {
		switch {
		case ss.closeBtn.Contains(mx, my), !ss.panel.Contains(mx, my):
			return &ScreenTransition{Type: TransitionPop}, nil
		case ss.sendBtn.Contains(mx, my):
			ss.Submit()
		}
	}
	return nil, nil
}

func (ss *SuggestionScreen) Draw(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, float32(ScreenWidth), float32(ScreenHeight), ColorOverlay, false)

	p := ss.panel
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), ColorSurface, false)
	vector.StrokeRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 1, ColorBorder, false)
	DrawTextBold(dst, "Suggest an icon", p.X+20, p.Y+18, FontSizeHeading, ColorText)
	c := ss.closeBtn
	drawCloseIcon(dst, float32(c.X+c.W/2), float32(c.Y+c.H/2), 8, ColorTextSecondary)

	b := ss.inputBox
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), ColorBackground, false)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, ColorFocusBorder, false)
	txt := ss.Input.Text
	if (ss.cursorOn/30)%2 == 0 {
		txt = ss.Input.DisplayText()
	}
	if ss.Input.Text == "" {
		DrawText(dst, suggestPrompt, b.X+12, b.Y+10, FontSizeBody, ColorTextMuted)
	}
	DrawTextWrapped(dst, txt, b.X+12, b.Y+10, b.W-24, b.H-20, FontSizeBody, ColorText)

	st, note := ss.State()
	label := "Send"
	if st == SuggestionSending {
		label = "Sending..."
	}
	mx, my := ebiten.CursorPosition()
	drawButton(dst, label, ss.sendBtn.X, ss.sendBtn.Y, ss.sendBtn.W, ss.sendBtn.H, true, ss.sendBtn.Contains(mx, my), drawEnvelopeIcon)

	if note != "" {
		clr := ColorTextSecondary
		switch st {
		case SuggestionSent:
			clr = ColorSuccess
		case SuggestionFailed:
			clr = ColorError
		}
		DrawText(dst, note, p.X+20, ss.sendBtn.Y-30, FontSizeSmall, clr)
	}
}
