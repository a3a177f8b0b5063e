// Package lesson is the per-lesson orchestrator: it hosts the lesson
// text, the quiz run, and the practice sandbox behind tabs, and turns
// their completion signals into progress updates.
package lesson

import (
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"viteroad/internal/catalog"
	"viteroad/internal/course"
	"viteroad/internal/practice"
	"viteroad/internal/quiz"
	"viteroad/internal/router"
	"viteroad/internal/screen"
	"viteroad/internal/store"
	"viteroad/internal/tutor"
	"viteroad/internal/ui/components"
	"viteroad/internal/ui/layout"
)

type tab int

const (
	tabLearn tab = iota
	tabQuiz
	tabPractice
)

func (t tab) label() string {
	switch t {
	case tabQuiz:
		return "Quiz"
	case tabPractice:
		return "Practice"
	default:
		return "Learn"
	}
}

// LessonScreen drives one lesson. All sub-state (quiz run, sandbox
// buffer) is created fresh when the screen is entered and survives tab
// switches within the visit.
type LessonScreen struct {
	state  *course.State
	lesson catalog.Lesson

	// visitID correlates the events of this visit in the log.
	visitID string

	tabs   []tab
	active int

	// optionCursor is the highlighted quiz option before answering.
	optionCursor int
	quizRun      *quiz.Session

	sandbox *practice.Sandbox
	editor  components.Editor
	edits   int

	insight        *tutor.Insight
	insightPending bool

	celebrating bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.EscHandler = (*LessonScreen)(nil)

// New creates a lesson screen with fresh activity state.
func New(state *course.State, l catalog.Lesson) *LessonScreen {
	s := &LessonScreen{state: state, lesson: l, visitID: uuid.New().String()}

	s.tabs = []tab{tabLearn}
	if l.HasQuiz() {
		s.tabs = append(s.tabs, tabQuiz)
		s.quizRun = quiz.New(l.Quiz)
	}
	if l.HasPractice() {
		s.tabs = append(s.tabs, tabPractice)
		s.sandbox = practice.NewSandbox(*l.Practice, state.RenderPreview)
		s.editor = components.NewEditor(l.Practice.InitialCode, 72, 12)
	}

	// Land on the lesson's activity; reading is always one Tab away.
	switch {
	case l.HasQuiz():
		s.active = s.tabIndex(tabQuiz)
	case l.HasPractice():
		s.active = s.tabIndex(tabPractice)
	}
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	if s.state.Tutor == nil {
		return nil
	}
	s.insightPending = true
	s.state.Tutor.RequestInsight(s.state.Ctx, tutor.InsightInput{
		Lesson:    s.lesson,
		Completed: s.state.Progress.IsCompleted(s.lesson.ID),
	})
	return pollInsight()
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

// HandleEsc leaves the editor before the app pops the screen.
func (s *LessonScreen) HandleEsc() (bool, tea.Cmd) {
	if s.editor.Focused {
		s.editor = s.editor.Blur()
		return true, nil
	}
	if s.celebrating {
		s.celebrating = false
		return true, nil
	}
	return false, nil
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case insightTickMsg:
		return s.handleInsightTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.editor.Focused {
		return s.updateEditor(msg)
	}
	return s, nil
}

func (s *LessonScreen) handleInsightTick() (screen.Screen, tea.Cmd) {
	if !s.insightPending || s.state.Tutor == nil {
		return s, nil
	}
	if insight, ok := s.state.Tutor.ConsumeInsight(); ok {
		s.insight = insight
		s.insightPending = false
		return s, nil
	}
	return s, pollInsight()
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// A focused editor owns the keyboard; everything else is typed code.
	if s.editor.Focused {
		return s.updateEditor(msg)
	}

	if s.celebrating {
		return s.handleCelebrationKey(msg)
	}

	switch msg.String() {
	case "tab":
		s.active = (s.active + 1) % len(s.tabs)
		return s, nil
	case "shift+tab":
		s.active = (s.active - 1 + len(s.tabs)) % len(s.tabs)
		return s, nil
	}

	switch s.tabs[s.active] {
	case tabLearn:
		return s.handleLearnKey(msg)
	case tabQuiz:
		return s.handleQuizKey(msg)
	case tabPractice:
		return s.handlePracticeKey(msg)
	}
	return s, nil
}

// handleLearnKey allows marking read-only lessons done; lessons with an
// activity complete through the activity instead.
func (s *LessonScreen) handleLearnKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "m" && !s.lesson.HasQuiz() && !s.lesson.HasPractice() {
		s.complete("content")
	}
	return s, nil
}

func (s *LessonScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := s.quizRun
	switch msg.String() {
	case "up", "k":
		if q.Phase() == quiz.PhaseAwaitingAnswer && s.optionCursor > 0 {
			s.optionCursor--
		}
	case "down", "j":
		if q.Phase() == quiz.PhaseAwaitingAnswer && s.optionCursor < len(q.Question().Options)-1 {
			s.optionCursor++
		}
	case "enter":
		switch q.Phase() {
		case quiz.PhaseAwaitingAnswer:
			s.answerQuiz()
		case quiz.PhaseAnswered:
			s.optionCursor = 0
			if q.Advance() {
				s.complete("quiz")
			}
		}
	case "r":
		if q.Phase() == quiz.PhaseFinished {
			q.Restart()
			s.optionCursor = 0
		}
	}
	return s, nil
}

func (s *LessonScreen) answerQuiz() {
	q := s.quizRun
	question := q.Question()
	if s.optionCursor >= len(question.Options) {
		return
	}
	selected := question.Options[s.optionCursor]
	q.Answer(selected)
	s.state.RecordAnswer(store.AnswerEventData{
		VisitID:       s.visitID,
		LessonID:      s.lesson.ID,
		QuestionIndex: q.Index(),
		QuestionText:  question.Question,
		Selected:      selected,
		CorrectAnswer: question.CorrectAnswer,
		Correct:       q.LastCorrect(),
	})
}

func (s *LessonScreen) handlePracticeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "e", "enter":
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Focus()
		return s, cmd
	case "r":
		s.sandbox.Reset()
		s.editor.SetValue(s.sandbox.Code())
		s.state.RecordPractice(store.PracticeEventData{
			VisitID:        s.visitID,
			LessonID:       s.lesson.ID,
			ChallengeTitle: s.lesson.Practice.Title,
			ChallengeType:  string(s.lesson.Practice.Type),
			Action:         "reset",
			Edits:          s.edits,
		})
	case "v":
		if s.sandbox.Verify() {
			s.state.RecordPractice(store.PracticeEventData{
				VisitID:        s.visitID,
				LessonID:       s.lesson.ID,
				ChallengeTitle: s.lesson.Practice.Title,
				ChallengeType:  string(s.lesson.Practice.Type),
				Action:         "verified",
				Edits:          s.edits,
			})
			s.complete("practice")
		}
	}
	return s, nil
}

// updateEditor forwards input to the textarea and mirrors the buffer
// into the sandbox so every keystroke re-renders the preview.
func (s *LessonScreen) updateEditor(msg tea.Msg) (screen.Screen, tea.Cmd) {
	before := s.editor.Value()
	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	if after := s.editor.Value(); after != before {
		s.sandbox.Edit(after)
		s.edits++
	}
	return s, cmd
}

func (s *LessonScreen) handleCelebrationKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "n", "enter":
		s.celebrating = false
		next, ok := s.state.Next(s.lesson.ID)
		if !ok {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if err := s.state.Select(next.ID); err != nil {
			return s, nil
		}
		replacement := New(s.state, next)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: replacement} }
	default:
		s.celebrating = false
	}
	return s, nil
}

// complete awards the lesson once and raises the celebration banner.
func (s *LessonScreen) complete(source string) {
	first, err := s.state.Complete(s.lesson.ID, source)
	if err != nil || !first {
		return
	}
	s.celebrating = true
}

// KeyHints returns the footer hints for the active tab.
func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.editor.Focused {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Leave editor"},
		}
	}
	if s.celebrating {
		return []layout.KeyHint{
			{Key: "N", Description: "Next unit"},
			{Key: "Esc", Description: "Stay"},
		}
	}

	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch tab"}}
	switch s.tabs[s.active] {
	case tabLearn:
		if !s.state.Progress.IsCompleted(s.lesson.ID) && !s.lesson.HasQuiz() && !s.lesson.HasPractice() {
			hints = append(hints, layout.KeyHint{Key: "M", Description: "Mark complete"})
		}
	case tabQuiz:
		switch s.quizRun.Phase() {
		case quiz.PhaseAwaitingAnswer:
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Choose"},
				layout.KeyHint{Key: "Enter", Description: "Answer"})
		case quiz.PhaseAnswered:
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
		case quiz.PhaseFinished:
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry unit"})
		}
	case tabPractice:
		hints = append(hints,
			layout.KeyHint{Key: "E", Description: "Edit"},
			layout.KeyHint{Key: "V", Description: "Verify"},
			layout.KeyHint{Key: "R", Description: "Reset"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Roadmap"})
	return hints
}

func (s *LessonScreen) tabIndex(t tab) int {
	for i, candidate := range s.tabs {
		if candidate == t {
			return i
		}
	}
	return 0
}
