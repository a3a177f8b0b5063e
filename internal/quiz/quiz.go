// Package quiz implements the per-lesson question sequencer: a linear walk
// over a lesson's questions with scoring, a one-shot completion signal, and
// a restart path for self-practice.
package quiz

import (
	"math"

	"viteroad/internal/catalog"
)

// Phase is the state of a quiz session.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // current question shown, no answer yet
	PhaseAnswered                    // answer locked in, explanation visible
	PhaseFinished                    // all questions consumed
)

// Session is a single run through a lesson's quiz. Not safe for concurrent
// use; driven from the UI event loop.
type Session struct {
	questions []catalog.QuizQuestion
	phase     Phase
	index     int
	selected  string
	correct   bool
	score     int

	// completed latches once the session first reaches Finished, so a
	// restarted run never re-fires the completion signal.
	completed bool
}

// New creates a session positioned at the first question.
func New(questions []catalog.QuizQuestion) *Session {
	return &Session{questions: questions}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the zero-based index of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the quiz.
func (s *Session) Total() int { return len(s.questions) }

// Score returns the number of correctly answered questions so far.
func (s *Session) Score() int { return s.score }

// Selected returns the option chosen for the current question, or "" while
// awaiting an answer.
func (s *Session) Selected() string { return s.selected }

// LastCorrect reports whether the most recent answer was correct. Only
// meaningful in PhaseAnswered.
func (s *Session) LastCorrect() bool { return s.correct }

// Question returns the current question. Only meaningful before Finished.
func (s *Session) Question() catalog.QuizQuestion {
	if s.index >= len(s.questions) {
		return catalog.QuizQuestion{}
	}
	return s.questions[s.index]
}

// Answer locks in an option for the current question. Ignored unless the
// session is awaiting an answer, so repeated input cannot double-score.
func (s *Session) Answer(option string) {
	if s.phase != PhaseAwaitingAnswer || s.index >= len(s.questions) {
		return
	}
	s.selected = option
	s.correct = option == s.questions[s.index].CorrectAnswer
	if s.correct {
		s.score++
	}
	s.phase = PhaseAnswered
}

// Advance moves past an answered question. On the last question it moves to
// Finished and reports completed=true the first time the session ever
// finishes; intermediate steps and re-finishes after Restart report false.
func (s *Session) Advance() (completed bool) {
	if s.phase != PhaseAnswered {
		return false
	}
	if s.index+1 < len(s.questions) {
		s.index++
		s.selected = ""
		s.correct = false
		s.phase = PhaseAwaitingAnswer
		return false
	}

	s.phase = PhaseFinished
	if s.completed {
		return false
	}
	s.completed = true
	return true
}

// Restart resets a finished session to the first question for another pass.
// The completion latch is preserved: a lesson completed once stays complete.
func (s *Session) Restart() {
	if s.phase != PhaseFinished {
		return
	}
	s.phase = PhaseAwaitingAnswer
	s.index = 0
	s.selected = ""
	s.correct = false
	s.score = 0
}

// Proficiency returns the finished score as a whole percentage of the
// question count. Informational only, never persisted.
func (s *Session) Proficiency() int {
	if len(s.questions) == 0 {
		return 0
	}
	return int(math.Round(float64(s.score) / float64(len(s.questions)) * 100))
}
