// Package views holds the pure transforms that turn cached collections into
// render-ready shapes. Nothing here mutates its input or returns an error;
// malformed values simply fall out of the result.
package views

import (
	"sort"
	"time"

	"studydeck/internal/models"
)

// UrgencyWindow is the threshold under which a pending deadline counts as
// urgent. Overdue assignments stay urgent, they are never excluded.
const UrgencyWindow = 24 * time.Hour

// Filter narrows an assignment collection. An empty field means "no
// constraint"; a value outside the recognized enumeration matches nothing.
type Filter struct {
	Status     string
	Difficulty string
}

func FilterAssignments(assignments []models.Assignment, f Filter) []models.Assignment {
	out := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Difficulty != "" && a.Difficulty != f.Difficulty {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Deadline is an assignment ranked by due-date proximity.
type Deadline struct {
	models.Assignment
	Urgent bool
}

// UpcomingDeadlines ranks pending assignments that carry a due date,
// ascending by due date, truncated to limit (default 5 when limit <= 0).
// Assignments without a due date are excluded entirely.
func UpcomingDeadlines(assignments []models.Assignment, limit int, now time.Time) []Deadline {
	if limit <= 0 {
		limit = 5
	}

	pending := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Status == models.StatusPending && a.DueDate != nil {
			pending = append(pending, a)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(*pending[j].DueDate)
	})

	if len(pending) > limit {
		pending = pending[:limit]
	}

	deadlines := make([]Deadline, 0, len(pending))
	for _, a := range pending {
		deadlines = append(deadlines, Deadline{
			Assignment: a,
			Urgent:     a.DueDate.Sub(now) < UrgencyWindow,
		})
	}
	return deadlines
}
