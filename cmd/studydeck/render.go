package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"studydeck/internal/models"
	"studydeck/internal/views"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	urgentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	xpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dayStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	emptyStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
)

func renderAssignments(assignments []models.Assignment, now time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Assignments") + "\n\n")

	if len(assignments) == 0 {
		return b.String() + emptyStyle.Render("No assignments found") + "\n"
	}

	for _, a := range assignments {
		b.WriteString(fmt.Sprintf("%s  %s\n", a.Title, mutedStyle.Render("["+a.Status+"]")))

		meta := []string{fmt.Sprintf("%d/%d solved", a.QuestionsSolved, a.QuestionsTotal)}
		if a.Difficulty != "" {
			meta = append(meta, a.Difficulty)
		}
		if a.DueDate != nil {
			meta = append(meta, "due "+views.FormatDateTime(*a.DueDate, nil))
		}
		b.WriteString("  " + mutedStyle.Render(strings.Join(meta, " · ")))
		b.WriteString("  " + xpStyle.Render(fmt.Sprintf("%d XP", a.XP)) + "\n")
	}
	return b.String()
}

func renderDeadlines(assignments []models.Assignment, limit int, now time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upcoming Deadlines") + "\n\n")

	deadlines := views.UpcomingDeadlines(assignments, limit, now)
	if len(deadlines) == 0 {
		return b.String() + emptyStyle.Render("No pending assignments") + "\n"
	}

	for _, d := range deadlines {
		marker := " "
		if d.Urgent {
			marker = urgentStyle.Render("!")
		}
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			marker,
			d.Title,
			mutedStyle.Render(views.FormatDateTime(*d.DueDate, nil)),
			xpStyle.Render(fmt.Sprintf("%d XP", d.XP)),
		))
	}
	return b.String()
}

func renderToday(classes []models.ScheduledClass, now time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Today's Schedule") + "\n\n")

	if len(classes) == 0 {
		return b.String() + emptyStyle.Render("No classes scheduled for today") + "\n"
	}

	for _, c := range classes {
		b.WriteString(renderClass(c, now))
	}
	return b.String()
}

func renderWeek(classes []models.ScheduledClass, now time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("This Week") + "\n")

	groups := views.GroupByDay(classes, nil)
	if len(groups) == 0 {
		return b.String() + "\n" + emptyStyle.Render("No classes scheduled this week") + "\n"
	}

	for _, g := range groups {
		b.WriteString("\n" + dayStyle.Render(g.Date.Format("Monday, Jan 2")) + "\n")
		for _, c := range g.Classes {
			b.WriteString(renderClass(c, now))
		}
	}
	return b.String()
}

func renderClass(c models.ScheduledClass, now time.Time) string {
	line := fmt.Sprintf("%s  %s", views.FormatTime(c.StartTimestamp, nil), c.Subject)
	if c.Room != nil {
		line += mutedStyle.Render("  @" + *c.Room)
	}
	line += "  " + mutedStyle.Render(views.TimeUntil(c.StartTimestamp, now))
	return line + "\n"
}

func renderPerformance(overview *models.PerformanceOverview, courses []models.CoursePerformance) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Performance") + "\n\n")

	if overview != nil {
		b.WriteString(fmt.Sprintf("Attendance: %.1f%%   Assignments: %.1f%%   %s   Streak: %d days\n\n",
			overview.LectureAttendance,
			overview.AssignmentsCompleted,
			xpStyle.Render(fmt.Sprintf("%d XP", overview.TotalXP)),
			overview.StreakDays,
		))
	}

	if len(courses) == 0 {
		return b.String() + emptyStyle.Render("No course data") + "\n"
	}

	for _, c := range courses {
		line := fmt.Sprintf("%s  %s", c.CourseName, mutedStyle.Render(
			fmt.Sprintf("attendance %.1f%% · assignments %.1f%%", c.Attendance, c.Assignments)))
		if c.Quizzes != nil {
			line += mutedStyle.Render(fmt.Sprintf(" · quizzes %.1f%%", *c.Quizzes))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderSolveResult(result *models.SolveResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Status: %s\n", result.Status))
	if result.Score != nil {
		b.WriteString(fmt.Sprintf("Score: %.1f%%\n", *result.Score))
	}
	if result.XPEarned != nil {
		b.WriteString(xpStyle.Render(fmt.Sprintf("+%d XP", *result.XPEarned)) + "\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d question(s) processed", len(result.Results))) + "\n")
	return b.String()
}
