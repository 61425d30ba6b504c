package views

import (
	"time"

	"studydeck/internal/models"
)

// DayGroup is one calendar day's worth of scheduled classes.
type DayGroup struct {
	Date    time.Time // midnight at the start of the day, in the grouping zone
	Classes []models.ScheduledClass
}

// GroupByDay partitions classes into day buckets keyed by the calendar date
// of their start time in loc (time.Local when nil). Buckets appear in
// first-seen order and classes keep their source order inside a bucket, so
// the result is a set partition of the input.
func GroupByDay(classes []models.ScheduledClass, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}

	var groups []DayGroup
	index := make(map[string]int)

	for _, class := range classes {
		start := time.Unix(class.StartTimestamp, 0).In(loc)
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		key := day.Format("2006-01-02")

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{Date: day})
		}
		groups[i].Classes = append(groups[i].Classes, class)
	}
	return groups
}
