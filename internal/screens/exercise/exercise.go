package exercise

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asengupta/cyberquest/internal/catalog"
	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/router"
	"github.com/asengupta/cyberquest/internal/screen"
	"github.com/asengupta/cyberquest/internal/ui/components"
	"github.com/asengupta/cyberquest/internal/ui/layout"
	"github.com/asengupta/cyberquest/internal/ui/theme"
)

// phase tracks where the learner is inside one exercise.
type phase int

const (
	phaseAnswering phase = iota
	phaseRevealed
	phaseSequenceDone
)

// ExerciseScreen runs the weekly threat detection sequence: one scenario at
// a time, an answer prompt, a reveal, then on to the next exercise.
type ExerciseScreen struct {
	eng *engine.Engine

	ex      catalog.Exercise
	input   components.TextInput
	phase   phase
	correct bool

	// bonus is the challenge completion banner carried until dismissed.
	bonus string
}

var _ screen.Screen = (*ExerciseScreen)(nil)
var _ screen.KeyHintProvider = (*ExerciseScreen)(nil)

// New opens the next exercise in the sequence. When the weekly pass is
// already finished the screen opens on the done view instead.
func New(eng *engine.Engine) *ExerciseScreen {
	s := &ExerciseScreen{eng: eng}
	if ex, ok := eng.ContinueChallenge(); ok {
		s.open(ex)
	} else {
		s.phase = phaseSequenceDone
	}
	return s
}

func (s *ExerciseScreen) open(ex catalog.Exercise) {
	s.ex = ex
	s.input = components.NewTextInput("type your answer...", 120)
	s.phase = phaseAnswering
	s.correct = false
}

func (s *ExerciseScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ExerciseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch s.phase {
	case phaseAnswering:
		if isKey && kmsg.String() == "enter" {
			if strings.TrimSpace(s.input.Value()) == "" {
				return s, nil
			}
			s.correct = answerMatches(s.input.Value(), s.ex.Answer)
			s.input.Submit(s.correct)
			s.phase = phaseRevealed
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseRevealed:
		if isKey && kmsg.String() == "enter" {
			out, ok := s.eng.CompleteExercise()
			if !ok {
				return s, nil
			}
			s.bonus = ""
			if out.Completion != nil {
				s.bonus = fmt.Sprintf("🏆 %s complete! +%d XP",
					out.Completion.Title, out.Completion.XPReward)
			}
			if out.Next != nil {
				s.open(*out.Next)
				return s, s.input.Init()
			}
			s.phase = phaseSequenceDone
			return s, nil
		}
		return s, nil

	case phaseSequenceDone:
		if isKey {
			switch kmsg.String() {
			case "r":
				s.eng.Restart()
				if ex, ok := s.eng.ContinueChallenge(); ok {
					s.bonus = ""
					s.open(ex)
					return s, s.input.Init()
				}
			case "enter":
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
		return s, nil
	}

	return s, nil
}

func (s *ExerciseScreen) View(width, height int) string {
	if s.phase == phaseSequenceDone {
		return s.viewDone(width)
	}

	st := s.eng.ExerciseState()
	pos := fmt.Sprintf("Exercise %d of %d", st.ActiveIndex+1, catalog.ExerciseCount())

	var sections []string
	sections = append(sections, theme.Subtitle.Width(width).Render(pos))
	if s.bonus != "" {
		sections = append(sections, theme.Correct.Width(width).Align(lipgloss.Center).Render(s.bonus))
	}
	sections = append(sections, theme.Title.Width(width).Render(s.ex.Title))

	scenario := theme.Card.Width(min(width-4, 70)).Render(
		theme.Body.Render(s.ex.Scenario))
	sections = append(sections, scenario)

	sections = append(sections, "  "+s.input.View())

	if s.phase == phaseRevealed {
		var verdict string
		if s.correct {
			verdict = theme.Correct.Render("  Correct!")
		} else {
			verdict = theme.Incorrect.Render("  Not quite.")
		}
		sections = append(sections, verdict)
		sections = append(sections,
			theme.Hint.Render("  Expected: "+s.ex.Answer))
		sections = append(sections,
			theme.Body.Render("  Press Enter to continue"))
	}

	return strings.Join(sections, "\n\n")
}

func (s *ExerciseScreen) viewDone(width int) string {
	st := s.eng.Stats()
	var sections []string
	if s.bonus != "" {
		sections = append(sections, theme.Correct.Width(width).Align(lipgloss.Center).Render(s.bonus))
	}
	sections = append(sections, theme.Title.Width(width).Render("WEEKLY SEQUENCE COMPLETE"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		fmt.Sprintf("All %d exercises done · %d XP total", catalog.ExerciseCount(), st.XP)))
	sections = append(sections, theme.Body.Width(width).Align(lipgloss.Center).Render(
		"Press r to practice again, or Enter to return"))
	return strings.Join(sections, "\n\n")
}

func (s *ExerciseScreen) Title() string {
	return "Threat Detection"
}

// OnBack releases the open exercise when the learner leaves the screen.
// Progress is kept; the same exercise reopens next time.
func (s *ExerciseScreen) OnBack() {
	s.eng.Back()
}

func (s *ExerciseScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseRevealed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseSequenceDone:
		return []layout.KeyHint{
			{Key: "r", Description: "Practice again"},
			{Key: "Enter", Description: "Portal"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// answerMatches compares answers ignoring case and surrounding space.
func answerMatches(got, want string) bool {
	norm := func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return norm(got) == norm(want)
}
