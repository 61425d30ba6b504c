package models

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Assignment struct {
	Hash            string     `json:"hash"`
	Title           string     `json:"title"`
	Type            string     `json:"type"` // "mcq" | "coding" | "frontend" | "mixed"
	DueDate         *time.Time `json:"due_date"`
	QuestionsTotal  int        `json:"questions_total"`
	QuestionsSolved int        `json:"questions_solved"`
	XP              int        `json:"xp"`
	Difficulty      string     `json:"difficulty,omitempty"`
	Status          string     `json:"status"`
	CourseHash      string     `json:"course_hash"`
}

type Question struct {
	Hash    string            `json:"hash"`
	Text    string            `json:"text"`
	Type    string            `json:"type"`
	Options map[string]string `json:"options,omitempty"`
	Solved  bool              `json:"solved"`
	Correct *bool             `json:"correct"`
}

type AssignmentDetail struct {
	Hash        string     `json:"hash"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Type        string     `json:"type"`
	Questions   []Question `json:"questions"`
	DueDate     *time.Time `json:"due_date"`
	XP          int        `json:"xp"`
	Difficulty  string     `json:"difficulty,omitempty"`
}

type SolveRequest struct {
	Mode      string   `json:"mode"` // "learning" | "auto_submit"
	Questions []string `json:"questions,omitempty"`
}

type QuestionResult struct {
	QuestionHash string  `json:"question_hash"`
	Solved       bool    `json:"solved"`
	Answer       any     `json:"answer"`
	Correct      *bool   `json:"correct"`
	Explanation  *string `json:"explanation"`
}

type SolveResult struct {
	Status   string           `json:"status"`
	Results  []QuestionResult `json:"results"`
	Score    *float64         `json:"score"`
	XPEarned *int             `json:"xp_earned"`
}

type AssignmentStatus struct {
	Solved    int      `json:"solved"`
	Total     int      `json:"total"`
	Score     *float64 `json:"score"`
	Submitted bool     `json:"submitted"`
}
