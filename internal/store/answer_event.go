package store

import (
	"context"
	"fmt"

	"viteroad/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetVisitID(data.VisitID).
		SetLessonID(data.LessonID).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionText(data.QuestionText).
		SetSelected(data.Selected).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context) (AnswerStats, error) {
	total, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return AnswerStats{}, fmt.Errorf("count answers: %w", err)
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return AnswerStats{}, fmt.Errorf("count correct answers: %w", err)
	}

	return AnswerStats{Total: total, Correct: correct}, nil
}
