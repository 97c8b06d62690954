package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asengupta/cyberquest/internal/screen"
)

type fakeScreen struct {
	name    string
	inits   int
	lastMsg tea.Msg
	updates int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.updates++
	f.lastMsg = msg
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestStackOperations(t *testing.T) {
	tests := []struct {
		name       string
		run        func(r *Router, a, b *fakeScreen)
		wantDepth  int
		wantActive string
		wantBInits int
	}{
		{
			name:       "push grows the stack and inits the new screen",
			run:        func(r *Router, a, b *fakeScreen) { r.Push(b) },
			wantDepth:  2,
			wantActive: "b",
			wantBInits: 1,
		},
		{
			name: "pop returns to the previous screen",
			run: func(r *Router, a, b *fakeScreen) {
				r.Push(b)
				r.Pop()
			},
			wantDepth:  1,
			wantActive: "a",
			wantBInits: 1,
		},
		{
			name:       "pop at the bottom keeps the root screen",
			run:        func(r *Router, a, b *fakeScreen) { r.Pop() },
			wantDepth:  1,
			wantActive: "a",
		},
		{
			name:       "replace swaps in place without growing the stack",
			run:        func(r *Router, a, b *fakeScreen) { r.Replace(b) },
			wantDepth:  1,
			wantActive: "b",
			wantBInits: 1,
		},
		{
			name: "replace above the root keeps the screens beneath",
			run: func(r *Router, a, b *fakeScreen) {
				r.Push(&fakeScreen{name: "mid"})
				r.Replace(b)
			},
			wantDepth:  2,
			wantActive: "b",
			wantBInits: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeScreen{name: "a"}
			b := &fakeScreen{name: "b"}
			r := New(a)

			tt.run(r, a, b)

			if r.Depth() != tt.wantDepth {
				t.Errorf("depth = %d, want %d", r.Depth(), tt.wantDepth)
			}
			if got := r.Active().Title(); got != tt.wantActive {
				t.Errorf("active = %q, want %q", got, tt.wantActive)
			}
			if b.inits != tt.wantBInits {
				t.Errorf("inits on b = %d, want %d", b.inits, tt.wantBInits)
			}
		})
	}
}

func TestUpdateNavigationMessages(t *testing.T) {
	tests := []struct {
		name       string
		msg        func(b *fakeScreen) tea.Msg
		wantDepth  int
		wantActive string
	}{
		{
			name:       "push message",
			msg:        func(b *fakeScreen) tea.Msg { return PushScreenMsg{Screen: b} },
			wantDepth:  2,
			wantActive: "b",
		},
		{
			name:       "replace message",
			msg:        func(b *fakeScreen) tea.Msg { return ReplaceScreenMsg{Screen: b} },
			wantDepth:  1,
			wantActive: "b",
		},
		{
			name:       "pop message at the bottom is a no-op",
			msg:        func(b *fakeScreen) tea.Msg { return PopScreenMsg{} },
			wantDepth:  1,
			wantActive: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeScreen{name: "a"}
			b := &fakeScreen{name: "b"}
			r := New(a)

			r.Update(tt.msg(b))

			if r.Depth() != tt.wantDepth {
				t.Errorf("depth = %d, want %d", r.Depth(), tt.wantDepth)
			}
			if got := r.Active().Title(); got != tt.wantActive {
				t.Errorf("active = %q, want %q", got, tt.wantActive)
			}
		})
	}
}

func TestUpdateForwardsToActiveScreenOnly(t *testing.T) {
	bottom := &fakeScreen{name: "bottom"}
	top := &fakeScreen{name: "top"}
	r := New(bottom)
	r.Push(top)

	type pingMsg struct{}
	r.Update(pingMsg{})

	if top.updates != 1 {
		t.Errorf("updates on top = %d, want 1", top.updates)
	}
	if _, ok := top.lastMsg.(pingMsg); !ok {
		t.Errorf("top saw %T, want pingMsg", top.lastMsg)
	}
	if bottom.updates != 0 {
		t.Errorf("updates on bottom = %d, want 0", bottom.updates)
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&fakeScreen{name: "a"})
	r.Push(&fakeScreen{name: "b"})

	if got := r.View(80, 24); got != "b" {
		t.Errorf("view = %q, want %q", got, "b")
	}
}
