package mockapi

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"studydeck/internal/models"
)

// Fixtures is the canned dataset the mock server serves. Due dates and class
// times are laid out relative to creation time so deadline ranking, urgency
// and countdowns all have something to show.
type Fixtures struct {
	User         models.User
	Email        string
	PasswordHash []byte

	Courses     []models.Course
	Assignments []models.Assignment
	Details     map[string]models.AssignmentDetail
	Today       []models.ScheduledClass
	Week        []models.ScheduledClass
	Overview    models.PerformanceOverview
	CoursePerfs []models.CoursePerformance
}

const (
	FixtureEmail    = "student@example.com"
	FixturePassword = "studydeck-dev"
)

func DefaultFixtures() *Fixtures {
	now := time.Now()
	hash, _ := bcrypt.GenerateFromPassword([]byte(FixturePassword), bcrypt.DefaultCost)

	algo := models.Course{Hash: uuid.NewString(), Name: "Algorithms", Enrolled: true, Instructor: ptr("R. Osei")}
	dbms := models.Course{Hash: uuid.NewString(), Name: "Database Systems", Enrolled: true, Instructor: ptr("M. Tanaka")}
	web := models.Course{Hash: uuid.NewString(), Name: "Web Engineering", Enrolled: true, Instructor: ptr("A. Novak")}

	fx := &Fixtures{
		User: models.User{
			Name:    "Demo Student",
			Email:   FixtureEmail,
			Courses: []string{algo.Name, dbms.Name, web.Name},
		},
		Email:        FixtureEmail,
		PasswordHash: hash,
		Courses:      []models.Course{algo, dbms, web},
		Details:      make(map[string]models.AssignmentDetail),
		Overview: models.PerformanceOverview{
			LectureAttendance:    87.5,
			AssignmentsCompleted: 64.0,
			TotalXP:              4180,
			StreakDays:           6,
		},
		CoursePerfs: []models.CoursePerformance{
			{CourseHash: algo.Hash, CourseName: algo.Name, Attendance: 91.0, Assignments: 72.0, Quizzes: ptrF(80.0)},
			{CourseHash: dbms.Hash, CourseName: dbms.Name, Attendance: 84.0, Assignments: 58.0, Quizzes: ptrF(66.5)},
			{CourseHash: web.Hash, CourseName: web.Name, Attendance: 88.0, Assignments: 61.0},
		},
	}

	// Ten assignments; exactly three are pending and hard.
	add := func(title, course, status, difficulty string, due *time.Time, solved, total, xp int) {
		a := models.Assignment{
			Hash:            uuid.NewString(),
			Title:           title,
			Type:            "mixed",
			DueDate:         due,
			QuestionsTotal:  total,
			QuestionsSolved: solved,
			XP:              xp,
			Difficulty:      difficulty,
			Status:          status,
			CourseHash:      course,
		}
		fx.Assignments = append(fx.Assignments, a)
		fx.Details[a.Hash] = detailFor(a)
	}

	in := func(d time.Duration) *time.Time { t := now.Add(d); return &t }

	add("Graph Traversals", algo.Hash, models.StatusPending, models.DifficultyHard, in(18*time.Hour), 2, 10, 250)
	add("Sorting Lower Bounds", algo.Hash, models.StatusPending, models.DifficultyMedium, in(3*24*time.Hour), 0, 8, 180)
	add("Amortized Analysis", algo.Hash, models.StatusCompleted, models.DifficultyHard, in(-2*24*time.Hour), 6, 6, 220)
	add("Normalization Forms", dbms.Hash, models.StatusPending, models.DifficultyHard, in(40*time.Hour), 1, 12, 300)
	add("SQL Joins Drill", dbms.Hash, models.StatusPending, models.DifficultyEasy, in(6*24*time.Hour), 3, 15, 120)
	add("Transaction Isolation", dbms.Hash, models.StatusCompleted, models.DifficultyMedium, in(-5*24*time.Hour), 9, 9, 200)
	add("Index Design Lab", dbms.Hash, models.StatusPending, models.DifficultyHard, in(-3*time.Hour), 0, 5, 260)
	add("Flexbox Layouts", web.Hash, models.StatusPending, models.DifficultyEasy, nil, 0, 6, 90)
	add("HTTP Caching Quiz", web.Hash, models.StatusCompleted, models.DifficultyEasy, in(-7*24*time.Hour), 10, 10, 100)
	add("Accessibility Audit", web.Hash, models.StatusPending, models.DifficultyMedium, in(30*time.Hour), 2, 7, 160)

	// Classes for today plus the remainder of the week.
	slot := func(subject string, course models.Course, start time.Time, minutes int, room string) models.ScheduledClass {
		end := start.Add(time.Duration(minutes) * time.Minute)
		return models.ScheduledClass{
			Hash:           uuid.NewString(),
			Time:           start.Format("15:04"),
			Subject:        subject,
			Room:           ptr(room),
			JoinURL:        ptr("https://meet.example.com/" + uuid.NewString()[:8]),
			Instructor:     course.Instructor,
			StartTimestamp: start.Unix(),
			EndTimestamp:   end.Unix(),
		}
	}

	fx.Today = []models.ScheduledClass{
		slot("Algorithms", algo, now.Add(45*time.Minute), 90, "B204"),
		slot("Database Systems", dbms, now.Add(3*time.Hour), 60, "C101"),
		slot("Web Engineering", web, now.Add(6*time.Hour+30*time.Minute), 90, "Lab 2"),
	}
	fx.Week = append([]models.ScheduledClass{}, fx.Today...)
	fx.Week = append(fx.Week,
		slot("Algorithms", algo, now.Add(2*24*time.Hour), 90, "B204"),
		slot("Database Systems", dbms, now.Add(3*24*time.Hour+2*time.Hour), 60, "C101"),
		slot("Web Engineering", web, now.Add(4*24*time.Hour+5*time.Hour), 90, "Lab 2"),
	)

	return fx
}

func detailFor(a models.Assignment) models.AssignmentDetail {
	questions := make([]models.Question, 0, a.QuestionsTotal)
	for i := 0; i < a.QuestionsTotal; i++ {
		questions = append(questions, models.Question{
			Hash:   uuid.NewString(),
			Text:   "Question " + string(rune('A'+i%26)),
			Type:   "mcq",
			Solved: i < a.QuestionsSolved,
			Options: map[string]string{
				"a": "Option A", "b": "Option B", "c": "Option C", "d": "Option D",
			},
		})
	}
	return models.AssignmentDetail{
		Hash:       a.Hash,
		Title:      a.Title,
		Type:       a.Type,
		Questions:  questions,
		DueDate:    a.DueDate,
		XP:         a.XP,
		Difficulty: a.Difficulty,
	}
}

func ptr(s string) *string { return &s }

func ptrF(f float64) *float64 { return &f }
