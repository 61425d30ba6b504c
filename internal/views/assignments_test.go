package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydeck/internal/models"
)

func ts(t time.Time) *time.Time { return &t }

func sampleAssignments(now time.Time) []models.Assignment {
	return []models.Assignment{
		{Hash: "a1", Title: "Graphs", Status: models.StatusPending, Difficulty: models.DifficultyHard, DueDate: ts(now.Add(18 * time.Hour))},
		{Hash: "a2", Title: "Sorting", Status: models.StatusPending, Difficulty: models.DifficultyMedium, DueDate: ts(now.Add(72 * time.Hour))},
		{Hash: "a3", Title: "Amortized", Status: models.StatusCompleted, Difficulty: models.DifficultyHard, DueDate: ts(now.Add(-48 * time.Hour))},
		{Hash: "a4", Title: "Joins", Status: models.StatusPending, Difficulty: models.DifficultyEasy, DueDate: nil},
		{Hash: "a5", Title: "Indexes", Status: models.StatusPending, Difficulty: models.DifficultyHard, DueDate: ts(now.Add(-3 * time.Hour))},
	}
}

func TestFilterAssignments(t *testing.T) {
	now := time.Now()
	assignments := sampleAssignments(now)

	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{"no constraints returns everything", Filter{}, []string{"a1", "a2", "a3", "a4", "a5"}},
		{"status only", Filter{Status: models.StatusPending}, []string{"a1", "a2", "a4", "a5"}},
		{"difficulty only", Filter{Difficulty: models.DifficultyHard}, []string{"a1", "a3", "a5"}},
		{"both constraints", Filter{Status: models.StatusPending, Difficulty: models.DifficultyHard}, []string{"a1", "a5"}},
		{"unknown enum matches nothing", Filter{Difficulty: "impossible"}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterAssignments(assignments, tc.filter)
			hashes := make([]string, 0, len(got))
			for _, a := range got {
				hashes = append(hashes, a.Hash)
			}
			assert.Equal(t, tc.expected, hashes)
		})
	}
}

func TestFilterAssignmentsDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	assignments := sampleAssignments(now)
	before := make([]models.Assignment, len(assignments))
	copy(before, assignments)

	FilterAssignments(assignments, Filter{Status: models.StatusPending})

	assert.Equal(t, before, assignments)
}

func TestFilterAssignmentsEmptyInput(t *testing.T) {
	assert.Empty(t, FilterAssignments(nil, Filter{Status: models.StatusPending}))
	assert.Empty(t, FilterAssignments([]models.Assignment{}, Filter{}))
}

func TestUpcomingDeadlinesOrderingAndExclusion(t *testing.T) {
	now := time.Now()
	deadlines := UpcomingDeadlines(sampleAssignments(now), 5, now)

	// a3 is completed, a4 has no due date; the rest sort ascending.
	require.Len(t, deadlines, 3)
	assert.Equal(t, "a5", deadlines[0].Hash)
	assert.Equal(t, "a1", deadlines[1].Hash)
	assert.Equal(t, "a2", deadlines[2].Hash)
}

func TestUpcomingDeadlinesIsIdempotent(t *testing.T) {
	now := time.Now()
	first := UpcomingDeadlines(sampleAssignments(now), 5, now)

	reranked := make([]models.Assignment, 0, len(first))
	for _, d := range first {
		reranked = append(reranked, d.Assignment)
	}
	second := UpcomingDeadlines(reranked, 5, now)

	assert.Equal(t, first, second)
}

func TestUpcomingDeadlinesTruncates(t *testing.T) {
	now := time.Now()

	got := UpcomingDeadlines(sampleAssignments(now), 2, now)
	assert.Len(t, got, 2)

	// Default limit applies when none is given.
	var many []models.Assignment
	for i := 0; i < 9; i++ {
		many = append(many, models.Assignment{
			Hash:    string(rune('a' + i)),
			Status:  models.StatusPending,
			DueDate: ts(now.Add(time.Duration(i+1) * time.Hour)),
		})
	}
	assert.Len(t, UpcomingDeadlines(many, 0, now), 5)
}

func TestUrgencyThreshold(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		due    time.Duration
		urgent bool
	}{
		{"23h59m away is urgent", 23*time.Hour + 59*time.Minute, true},
		{"24h01m away is not urgent", 24*time.Hour + 1*time.Minute, false},
		{"overdue stays urgent", -2 * time.Hour, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assignments := []models.Assignment{
				{Hash: "x", Status: models.StatusPending, DueDate: ts(now.Add(tc.due))},
			}
			got := UpcomingDeadlines(assignments, 5, now)
			require.Len(t, got, 1)
			assert.Equal(t, tc.urgent, got[0].Urgent)
		})
	}
}
