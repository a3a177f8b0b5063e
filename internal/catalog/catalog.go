package catalog

import (
	"fmt"
	"strings"
)

// Lessons returns the full catalog in unlock order.
func Lessons() []Lesson {
	return lessons
}

// Len returns the number of lessons in the catalog.
func Len() int {
	return len(lessons)
}

// First returns the first lesson in the catalog.
func First() Lesson {
	return lessons[0]
}

// Get returns the lesson with the given ID.
func Get(id string) (Lesson, error) {
	for _, l := range lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("no lesson with ID %q", id)
}

// Contains reports whether the catalog has a lesson with the given ID.
func Contains(id string) bool {
	_, err := Get(id)
	return err == nil
}

// IndexOf returns the catalog position of the given ID, or -1 if absent.
func IndexOf(id string) int {
	for i, l := range lessons {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Next returns the lesson immediately after the given ID in catalog order.
// ok is false when id is the last lesson or unknown.
func Next(id string) (Lesson, bool) {
	idx := IndexOf(id)
	if idx < 0 || idx+1 >= len(lessons) {
		return Lesson{}, false
	}
	return lessons[idx+1], true
}

// Validate performs structural checks on the catalog. Returns a combined
// error describing every problem found, or nil if valid.
func Validate(catalog []Lesson) error {
	var errs []string

	if len(catalog) == 0 {
		errs = append(errs, "catalog is empty")
	}

	idSet := make(map[string]bool, len(catalog))
	for _, l := range catalog {
		if l.ID == "" {
			errs = append(errs, fmt.Sprintf("lesson %q has an empty ID", l.Title))
			continue
		}
		if idSet[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		idSet[l.ID] = true

		if l.Title == "" {
			errs = append(errs, fmt.Sprintf("lesson %q has an empty title", l.ID))
		}
		if l.Content == "" {
			errs = append(errs, fmt.Sprintf("lesson %q has no content", l.ID))
		}

		switch l.Difficulty {
		case Beginner, Intermediate, Advanced:
		default:
			errs = append(errs, fmt.Sprintf("lesson %q has unknown difficulty %q", l.ID, l.Difficulty))
		}

		for qi, q := range l.Quiz {
			prefix := fmt.Sprintf("lesson %q question %d", l.ID, qi)
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(q.Options)))
			}
			seen := make(map[string]bool, len(q.Options))
			matches := 0
			for _, opt := range q.Options {
				if seen[opt] {
					errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, opt))
				}
				seen[opt] = true
				if opt == q.CorrectAnswer {
					matches++
				}
			}
			if matches != 1 {
				errs = append(errs, fmt.Sprintf("%s: correct answer %q must match exactly one option, matched %d", prefix, q.CorrectAnswer, matches))
			}
		}

		if l.Practice != nil {
			switch l.Practice.Type {
			case ChallengeCSS, ChallengeJS, ChallengeHTML:
			default:
				errs = append(errs, fmt.Sprintf("lesson %q practice has unknown type %q", l.ID, l.Practice.Type))
			}
			if l.Practice.InitialCode == "" {
				errs = append(errs, fmt.Sprintf("lesson %q practice has no initial code", l.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
