// Package practice implements the code-practice sandbox: a mutable code
// buffer tied to one challenge, a solved flag, and the preview documents
// rendered from the buffer. Verification is a manual self-report — the
// learner's code is never graded.
package practice

import "viteroad/internal/catalog"

// Renderer receives the full preview document after every change. The
// document always replaces the previous one; nothing is ever appended.
type Renderer func(doc string)

// Sandbox is a single practice session for one challenge. Not safe for
// concurrent use; driven from the UI event loop.
type Sandbox struct {
	challenge catalog.PracticeChallenge
	code      string
	solved    bool
	render    Renderer
}

// NewSandbox creates a sandbox seeded with the challenge's initial code and
// immediately renders the first preview document.
func NewSandbox(challenge catalog.PracticeChallenge, render Renderer) *Sandbox {
	s := &Sandbox{
		challenge: challenge,
		code:      challenge.InitialCode,
		render:    render,
	}
	s.renderPreview()
	return s
}

// Challenge returns the challenge this sandbox was created for.
func (s *Sandbox) Challenge() catalog.PracticeChallenge { return s.challenge }

// Code returns the current contents of the code buffer.
func (s *Sandbox) Code() string { return s.code }

// Solved reports whether the learner has verified this challenge.
func (s *Sandbox) Solved() bool { return s.solved }

// Document returns the preview document for the current buffer.
func (s *Sandbox) Document() string {
	return BuildDocument(s.challenge.Type, s.code)
}

// Edit replaces the code buffer and synchronously re-renders the preview.
// Every edit replaces the whole document — last edit wins.
func (s *Sandbox) Edit(code string) {
	s.code = code
	s.renderPreview()
}

// Reset restores the challenge's initial code and re-renders.
func (s *Sandbox) Reset() {
	s.code = s.challenge.InitialCode
	s.renderPreview()
}

// Verify marks the challenge solved. There is no correctness check — this
// is a deliberate self-assessment. Returns true only on the first call so
// the completion signal fires exactly once.
func (s *Sandbox) Verify() (completed bool) {
	if s.solved {
		return false
	}
	s.solved = true
	return true
}

func (s *Sandbox) renderPreview() {
	if s.render != nil {
		s.render(s.Document())
	}
}
