// Package course holds the shared state the screens operate on: the
// lesson catalog, the learner's progress, and the services that persist
// changes and enrich lessons.
package course

import (
	"context"

	"viteroad/internal/catalog"
	"viteroad/internal/preview"
	"viteroad/internal/progress"
	"viteroad/internal/store"
	"viteroad/internal/tutor"
)

// State is shared by reference across screens so a completion inside the
// lesson screen is visible to the roadmap when the learner backs out.
type State struct {
	Ctx     context.Context
	Lessons []catalog.Lesson

	Progress progress.Progress

	// Service persists progress changes. Nil disables persistence
	// (tests, dry runs).
	Service *progress.Service

	// Tutor generates lesson insights. Nil disables the tutor panel.
	Tutor *tutor.Service

	// Preview serves practice documents to the browser. Nil disables
	// live preview.
	Preview *preview.Server
}

// Classify returns the gating status for every lesson.
func (s *State) Classify() map[string]progress.Status {
	return progress.Classify(s.Lessons, s.Progress)
}

// Select makes the lesson current and persists the change.
func (s *State) Select(lessonID string) error {
	if s.Service == nil {
		s.Progress = progress.SelectLesson(s.Progress, lessonID)
		return nil
	}
	p, err := s.Service.Select(s.Ctx, s.Progress, lessonID)
	if err != nil {
		return err
	}
	s.Progress = p
	return nil
}

// Complete marks the lesson completed and awards points. Reports whether
// this call actually completed the lesson (false when already complete).
func (s *State) Complete(lessonID, source string) (bool, error) {
	if s.Progress.IsCompleted(lessonID) {
		return false, nil
	}
	if s.Service == nil {
		s.Progress = progress.CompleteLesson(s.Progress, lessonID, progress.PointsPerLesson)
		return true, nil
	}
	p, err := s.Service.Complete(s.Ctx, s.Progress, lessonID, source)
	if err != nil {
		return false, err
	}
	s.Progress = p
	return true, nil
}

// Next returns the lesson after the given one in catalog order.
func (s *State) Next(lessonID string) (catalog.Lesson, bool) {
	for i, l := range s.Lessons {
		if l.ID == lessonID && i+1 < len(s.Lessons) {
			return s.Lessons[i+1], true
		}
	}
	return catalog.Lesson{}, false
}

// RecordAnswer logs a quiz answer. Best effort: recording failures never
// interrupt the lesson.
func (s *State) RecordAnswer(data store.AnswerEventData) {
	if s.Service != nil {
		_ = s.Service.RecordAnswer(s.Ctx, data)
	}
}

// RecordPractice logs a sandbox verify or reset, same best-effort rule.
func (s *State) RecordPractice(data store.PracticeEventData) {
	if s.Service != nil {
		_ = s.Service.RecordPractice(s.Ctx, data)
	}
}

// RenderPreview pushes a practice document to the preview server.
func (s *State) RenderPreview(doc string) {
	if s.Preview != nil {
		s.Preview.SetDocument(doc)
	}
}
