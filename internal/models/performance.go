package models

type PerformanceOverview struct {
	LectureAttendance    float64 `json:"lecture_attendance"`
	AssignmentsCompleted float64 `json:"assignments_completed"`
	TotalXP              int     `json:"total_xp"`
	StreakDays           int     `json:"streak_days"`
}

type CoursePerformance struct {
	CourseHash  string   `json:"course_hash"`
	CourseName  string   `json:"course_name"`
	Attendance  float64  `json:"attendance"`
	Assignments float64  `json:"assignments"`
	Quizzes     *float64 `json:"quizzes"`
}
