package store

import (
	"context"
	"fmt"

	"viteroad/ent/practiceevent"
)

func (r *eventRepo) AppendPractice(ctx context.Context, data PracticeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PracticeEvent.Create().
		SetSequence(seqNum).
		SetVisitID(data.VisitID).
		SetLessonID(data.LessonID).
		SetChallengeTitle(data.ChallengeTitle).
		SetChallengeType(data.ChallengeType).
		SetAction(data.Action).
		SetEdits(data.Edits).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save practice event: %w", err)
	}
	return nil
}

func (r *eventRepo) PracticeStats(ctx context.Context) (PracticeStats, error) {
	verified, err := r.client.PracticeEvent.Query().
		Where(practiceevent.Action("verified")).
		Count(ctx)
	if err != nil {
		return PracticeStats{}, fmt.Errorf("count verified: %w", err)
	}

	resets, err := r.client.PracticeEvent.Query().
		Where(practiceevent.Action("reset")).
		Count(ctx)
	if err != nil {
		return PracticeStats{}, fmt.Errorf("count resets: %w", err)
	}

	return PracticeStats{Verified: verified, Resets: resets}, nil
}
