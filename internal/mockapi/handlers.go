package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"studydeck/internal/models"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}

	s.mu.Lock()
	email, passwordHash, user := s.fixtures.Email, s.fixtures.PasswordHash, s.fixtures.User
	s.mu.Unlock()

	if req.Email != email || bcrypt.CompareHashAndPassword(passwordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication failed")
		return
	}

	token, err := s.auth.issue(req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		SessionID: token,
		User:      user,
		Message:   "Login successful",
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	status := models.AuthStatus{}
	if token := bearerToken(r); token != "" {
		if _, ok := s.auth.verify(token); ok {
			s.mu.Lock()
			user := s.fixtures.User
			s.mu.Unlock()
			status.Authenticated = true
			status.User = &user
		}
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	user := s.fixtures.User
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	courseHash := q.Get("course_hash")
	status := q.Get("status")
	difficulty := q.Get("difficulty")

	limit := 100
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION", "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Assignment, 0, len(s.fixtures.Assignments))
	for _, a := range s.fixtures.Assignments {
		if courseHash != "" && a.CourseHash != courseHash {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		if difficulty != "" && a.Difficulty != difficulty {
			continue
		}
		filtered = append(filtered, a)
	}

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	writeJSON(w, http.StatusOK, filtered)
}

func (s *Server) handleAssignmentDetail(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	s.mu.Lock()
	detail, ok := s.fixtures.Details[hash]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Assignment not found")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleSolveAssignment(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	var req models.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}
	if req.Mode != "learning" && req.Mode != "auto_submit" {
		writeError(w, http.StatusUnprocessableEntity, "VALIDATION", "mode must be learning or auto_submit")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	detail, ok := s.fixtures.Details[hash]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Assignment not found")
		return
	}

	results := make([]models.QuestionResult, 0, len(detail.Questions))
	for i := range detail.Questions {
		detail.Questions[i].Solved = true
		correct := true
		results = append(results, models.QuestionResult{
			QuestionHash: detail.Questions[i].Hash,
			Solved:       true,
			Answer:       "a",
			Correct:      &correct,
		})
	}
	s.fixtures.Details[hash] = detail

	var xpEarned int
	for i := range s.fixtures.Assignments {
		if s.fixtures.Assignments[i].Hash == hash {
			xpEarned = s.fixtures.Assignments[i].XP
			s.fixtures.Assignments[i].QuestionsSolved = s.fixtures.Assignments[i].QuestionsTotal
			if req.Mode == "auto_submit" {
				s.fixtures.Assignments[i].Status = models.StatusCompleted
			}
		}
	}

	score := 100.0
	writeJSON(w, http.StatusOK, models.SolveResult{
		Status:   "solved",
		Results:  results,
		Score:    &score,
		XPEarned: &xpEarned,
	})
}

func (s *Server) handleAssignmentStatus(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.fixtures.Assignments {
		if a.Hash == hash {
			writeJSON(w, http.StatusOK, models.AssignmentStatus{
				Solved:    a.QuestionsSolved,
				Total:     a.QuestionsTotal,
				Submitted: a.Status == models.StatusCompleted,
			})
			return
		}
	}
	writeError(w, http.StatusNotFound, "NOT_FOUND", "Assignment not found")
}

func (s *Server) handleScheduleToday(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	classes := append([]models.ScheduledClass{}, s.fixtures.Today...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, classes)
}

func (s *Server) handleScheduleWeek(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	classes := append([]models.ScheduledClass{}, s.fixtures.Week...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, classes)
}

func (s *Server) handleJoinClass(w http.ResponseWriter, r *http.Request) {
	var req models.JoinClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.fixtures.Week {
		if c.Hash == req.LectureSlotHash && c.JoinURL != nil {
			writeJSON(w, http.StatusOK, models.JoinClassResult{JoinURL: *c.JoinURL, Status: "opened"})
			return
		}
	}
	writeError(w, http.StatusNotFound, "NOT_FOUND", "Class not found or has no join link")
}

func (s *Server) handlePerformanceOverview(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	overview := s.fixtures.Overview
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleAllCoursePerformance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	perfs := append([]models.CoursePerformance{}, s.fixtures.CoursePerfs...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, perfs)
}

func (s *Server) handleCoursePerformance(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.fixtures.CoursePerfs {
		if p.CourseHash == hash {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "NOT_FOUND", "Course not found")
}

func (s *Server) handleSolveMCQ(w http.ResponseWriter, r *http.Request) {
	var req models.MCQSolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, models.MCQSolveResponse{
		Answer:      "a",
		Confidence:  0.92,
		Explanation: "Fixture answer: the mock solver always picks the first option.",
	})
}

func (s *Server) handleSolveCoding(w http.ResponseWriter, r *http.Request) {
	var req models.CodingSolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}
	language := req.Language
	if language == "" {
		language = "python"
	}
	writeJSON(w, http.StatusOK, models.CodingSolveResponse{
		Code:     "# fixture solution\nprint('ok')\n",
		Language: language,
	})
}

func (s *Server) handleSolveFrontend(w http.ResponseWriter, r *http.Request) {
	var req models.FrontendSolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, models.FrontendSolveResponse{
		HTML:       "<main>fixture</main>",
		CSS:        "main { padding: 1rem; }",
		JavaScript: "console.log('fixture')",
	})
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(authHeader) > len(prefix) && authHeader[:len(prefix)] == prefix {
		return authHeader[len(prefix):]
	}
	return ""
}
