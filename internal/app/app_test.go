package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asengupta/cyberquest/internal/engine"
)

func TestSaveWarningShowsBanner(t *testing.T) {
	ch := make(chan error, 1)
	m := newAppModel(engine.New(nil), nil, ch)

	ch <- errors.New("database is locked")
	msg := waitForWarning(ch)()
	warn, ok := msg.(saveWarningMsg)
	if !ok {
		t.Fatalf("expected saveWarningMsg, got %T", msg)
	}

	updated, cmd := m.Update(warn)
	m = updated.(AppModel)

	if !strings.Contains(m.notice, "Progress may not be saved") {
		t.Errorf("notice = %q, want save warning text", m.notice)
	}
	if !strings.Contains(m.notice, "database is locked") {
		t.Errorf("notice = %q, want underlying error included", m.notice)
	}
	if cmd == nil {
		t.Error("expected a command re-subscribing to the warning channel")
	}
}

func TestSaveWarningDismiss(t *testing.T) {
	m := newAppModel(engine.New(nil), nil, make(chan error))
	m.notice = "⚠ Progress may not be saved: disk full · Ctrl+X to dismiss"

	updated, _ := m.Update(tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl})
	m = updated.(AppModel)

	if m.notice != "" {
		t.Errorf("notice = %q, want cleared after ctrl+x", m.notice)
	}
}

func TestNoticeSurvivesOtherKeys(t *testing.T) {
	m := newAppModel(engine.New(nil), nil, make(chan error))
	m.notice = "⚠ Progress may not be saved: disk full · Ctrl+X to dismiss"

	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m = updated.(AppModel)

	if m.notice == "" {
		t.Error("notice dismissed by an unrelated key")
	}
}

func TestWaitForWarningClosedChannel(t *testing.T) {
	ch := make(chan error)
	close(ch)

	if msg := waitForWarning(ch)(); msg != nil {
		t.Errorf("expected nil msg on closed channel, got %#v", msg)
	}
}

func TestAnonymousSessionHasNoSubscription(t *testing.T) {
	m := newAppModel(engine.New(nil), nil, nil)
	if cmd := m.Init(); cmd != nil {
		t.Error("expected no warning subscription without a channel")
	}
}
