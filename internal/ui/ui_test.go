package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gabun/headicons/internal/catalog"
	"github.com/gabun/headicons/internal/suggest"
)

type fakeScreen struct {
	name    string
	modal   bool
	drawn   *[]string
	entered int
	exited  int
}

func (f *fakeScreen) Update() (*ScreenTransition, error) { return nil, nil }
func (f *fakeScreen) Draw(*ebiten.Image)                  { *f.drawn = append(*f.drawn, f.name) }
func (f *fakeScreen) OnEnter()                            { f.entered++ }
func (f *fakeScreen) OnExit()                             { f.exited++ }
func (f *fakeScreen) Name() string                        { return f.name }
func (f *fakeScreen) Modal() bool                         { return f.modal }

func TestScreenManagerDrawsModalsOverBase(t *testing.T) {
	var drawn []string
	sm := NewScreenManager()
	base := &fakeScreen{name: "gallery", drawn: &drawn}
	hidden := &fakeScreen{name: "hidden", drawn: &drawn}
	sm.Push(hidden)
	sm.Push(base)
	sm.Push(&fakeScreen{name: "preview", modal: true, drawn: &drawn})
	sm.Push(&fakeScreen{name: "suggest", modal: true, drawn: &drawn})

	sm.Draw(nil)
	want := []string{"gallery", "preview", "suggest"}
	if len(drawn) != len(want) {
		t.Fatalf("drawn = %v, want %v", drawn, want)
	}
	for i := range want {
		if drawn[i] != want[i] {
			t.Fatalf("drawn = %v, want %v", drawn, want)
		}
	}

	sm.Pop()
	sm.Pop()
	if sm.Current() != base || base.entered != 2 {
		t.Fatalf("current = %v, entered %d times", sm.Current().Name(), base.entered)
	}
}

func TestScreenManagerApply(t *testing.T) {
	var drawn []string
	sm := NewScreenManager()
	a := &fakeScreen{name: "a", drawn: &drawn}
	b := &fakeScreen{name: "b", drawn: &drawn}
	sm.Apply(&ScreenTransition{Type: TransitionPush, Screen: a})
	sm.Apply(&ScreenTransition{Type: TransitionReplace, Screen: b})
	if sm.StackSize() != 1 || sm.Current() != b || a.exited != 1 {
		t.Fatalf("stack %d, current %s, a exited %d", sm.StackSize(), sm.Current().Name(), a.exited)
	}
	sm.Apply(&ScreenTransition{Type: TransitionPop})
	sm.Apply(nil)
	if sm.Current() != nil {
		t.Fatal("stack not empty")
	}
}

func TestScrollStateClamp(t *testing.T) {
	var s ScrollState
	s.SetMax(300)
	s.ScrollBy(-50)
	if s.TargetScrollY != 0 {
		t.Fatalf("target = %v, want 0", s.TargetScrollY)
	}
	s.ScrollBy(1000)
	if s.TargetScrollY != 300 {
		t.Fatalf("target = %v, want 300", s.TargetScrollY)
	}
	for i := 0; i < 200; i++ {
		s.Animate()
	}
	if s.ScrollY != 300 {
		t.Fatalf("ScrollY = %v, want 300", s.ScrollY)
	}
	s.SetMax(-10)
	if s.ScrollY != 0 || s.TargetScrollY != 0 {
		t.Fatalf("negative max left %v/%v", s.ScrollY, s.TargetScrollY)
	}
}

func TestScrollStateEnsureVisible(t *testing.T) {
	s := ScrollState{MaxScrollY: 1000}
	// Viewport shows content [100, 600) at scroll 0.
	s.EnsureVisible(700, 100, 100, 500)
	if s.TargetScrollY != 200 {
		t.Fatalf("scroll down target = %v, want 200", s.TargetScrollY)
	}
	s.EnsureVisible(250, 100, 100, 500)
	if s.TargetScrollY != 150 {
		t.Fatalf("scroll up target = %v, want 150", s.TargetScrollY)
	}
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{320, 2},
		{639, 2},
		{640, 3},
		{768, 4},
		{1023, 4},
		{1024, 6},
		{1920, 6},
	}
	for _, tt := range tests {
		if got := GridColumns(tt.width); got != tt.want {
			t.Errorf("GridColumns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestFocusGrid(t *testing.T) {
	fg := NewFocusGrid(3, 7)
	if fg.Update(DirUp) {
		t.Fatal("moving up from the first row should leave the grid")
	}
	fg.Update(DirDown)
	fg.Update(DirDown)
	if fg.Focused != 6 {
		t.Fatalf("focused = %d, want 6", fg.Focused)
	}
	if fg.Update(DirRight) {
		t.Fatal("moved past the last item")
	}
	fg.SetTotal(4)
	if fg.Focused != 3 {
		t.Fatalf("focused after shrink = %d, want 3", fg.Focused)
	}
}

func TestButtonRectContains(t *testing.T) {
	if (ButtonRect{}).Contains(0, 0) {
		t.Fatal("empty rect contains the origin")
	}
	r := ButtonRect{X: 10, Y: 10, W: 20, H: 20}
	if !r.Contains(10, 30) || r.Contains(31, 15) {
		t.Fatal("edge handling wrong")
	}
}

func TestTextInputMaxLen(t *testing.T) {
	ti := TextInput{MaxLen: 5}
	ti.insertAtCursor("héllo world")
	if ti.Text != "héllo" || ti.Cursor != 5 {
		t.Fatalf("text %q cursor %d", ti.Text, ti.Cursor)
	}
	ti.Cursor = 1
	ti.insertAtCursor("x")
	if ti.Text != "héllo" {
		t.Fatalf("insert past the limit changed text to %q", ti.Text)
	}
	if got := ti.DisplayText(); got != "h│éllo" {
		t.Fatalf("DisplayText = %q", got)
	}
}

func TestMailtoURL(t *testing.T) {
	tests := []struct {
		addr, subject, want string
	}{
		{"me@example.com", "Message from Shi", "mailto:me@example.com?subject=Message%20from%20Shi"},
		{"me@example.com", "", "mailto:me@example.com"},
	}
	for _, tt := range tests {
		if got := MailtoURL(tt.addr, tt.subject); got != tt.want {
			t.Errorf("MailtoURL(%q, %q) = %q, want %q", tt.addr, tt.subject, got, tt.want)
		}
	}
}

func TestPreviewCarouselWraps(t *testing.T) {
	icon := catalog.Icon{Name: "Link", SVG: "link.svg", PNG: "link.png", Images: []string{"link-2.png"}}
	ps := NewPreviewScreen(icon, nil, t.TempDir(), nil)
	if ps.Current() != "link.svg" {
		t.Fatalf("first source = %q", ps.Current())
	}
	ps.Prev()
	if ps.Current() != "link-2.png" {
		t.Fatalf("prev from first = %q, want last", ps.Current())
	}
	ps.Next()
	ps.Next()
	if ps.Current() != "link.png" {
		t.Fatalf("current = %q, want link.png", ps.Current())
	}
}

func TestPreviewSave(t *testing.T) {
	done := make(chan string, 1)
	save := func(_ context.Context, src, dir string) (string, error) {
		done <- src
		return dir + "/kirby.svg", nil
	}
	ps := NewPreviewScreen(catalog.Icon{Name: "Kirby", SVG: "kirby.svg"}, nil, "/tmp/downloads", save)
	ps.Save(ps.Icon.SVG)
	if got := <-done; got != "kirby.svg" {
		t.Fatalf("saved %q", got)
	}
	waitFor(t, func() bool {
		status, busy := ps.Status()
		return !busy && status == "Saved to downloads/kirby.svg"
	})
}

type fakeSender struct {
	err  error
	sent chan string
}

func (f *fakeSender) Send(_ context.Context, msg string) error {
	f.sent <- msg
	return f.err
}

func TestSuggestionSubmit(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantState SuggestionState
		wantNote  string
	}{
		{"sent", nil, SuggestionSent, suggestThanks},
		{"empty", suggest.ErrEmptyMessage, SuggestionEditing, suggestPrompt},
		{"failed", errors.New("API error 400: bad"), SuggestionFailed, suggestFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{err: tt.err, sent: make(chan string, 1)}
			ss := NewSuggestionScreen(sender)
			ss.Input.SetText("Add Ness please")
			ss.Submit()
			if got := <-sender.sent; got != "Add Ness please" {
				t.Fatalf("sent %q", got)
			}
			waitFor(t, func() bool {
				st, note := ss.State()
				return st == tt.wantState && note == tt.wantNote
			})
		})
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
