package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studydeck/internal/models"
)

func newTestServer(t *testing.T) (*httptest.Server, *Fixtures) {
	t.Helper()
	fx := DefaultFixtures()
	ts := httptest.NewServer(NewServer("test-secret", fx).Handler())
	t.Cleanup(ts.Close)
	return ts, fx
}

func login(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	body, _ := json.Marshal(models.LoginRequest{Email: FixtureEmail, Password: FixturePassword})
	resp, err := http.Post(ts.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Login request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from login, got %d", resp.StatusCode)
	}

	var loginResp models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("Failed to decode login response: %v", err)
	}
	if loginResp.SessionID == "" {
		t.Fatal("Expected a session token")
	}
	return loginResp.SessionID
}

func authedGet(t *testing.T, ts *httptest.Server, token, path string) *http.Response {
	t.Helper()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ts, _ := newTestServer(t)

	body, _ := json.Marshal(models.LoginRequest{Email: FixtureEmail, Password: "wrong"})
	resp, err := http.Post(ts.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Login request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	ts, _ := newTestServer(t)

	paths := []string{
		"/api/assignments",
		"/api/schedule/today",
		"/api/schedule/week",
		"/api/performance/overview",
		"/api/performance/courses",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp := authedGet(t, ts, "", path)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("Expected 401 without a session, got %d", resp.StatusCode)
			}

			resp = authedGet(t, ts, "not-a-real-token", path)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("Expected 401 for a forged token, got %d", resp.StatusCode)
			}
		})
	}
}

func TestListAssignmentsFilters(t *testing.T) {
	ts, _ := newTestServer(t)
	token := login(t, ts)

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"no filters", "", 10},
		{"pending only", "?status=pending", 7},
		{"hard only", "?difficulty=hard", 4},
		{"pending and hard", "?status=pending&difficulty=hard", 3},
		{"with limit", "?status=pending&limit=2", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := authedGet(t, ts, token, "/api/assignments"+tc.query)
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("Expected 200, got %d", resp.StatusCode)
			}

			var assignments []models.Assignment
			if err := json.NewDecoder(resp.Body).Decode(&assignments); err != nil {
				t.Fatalf("Failed to decode assignments: %v", err)
			}
			if len(assignments) != tc.expected {
				t.Errorf("Expected %d assignments, got %d", tc.expected, len(assignments))
			}
		})
	}
}

func TestListAssignmentsRejectsBadLimit(t *testing.T) {
	ts, _ := newTestServer(t)
	token := login(t, ts)

	for _, limit := range []string{"0", "-5", "501", "abc"} {
		resp := authedGet(t, ts, token, "/api/assignments?limit="+limit)
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("limit=%s: expected 422, got %d", limit, resp.StatusCode)
		}
	}
}

func TestSolveMarksAssignmentSolved(t *testing.T) {
	ts, fx := newTestServer(t)
	token := login(t, ts)

	target := fx.Assignments[0]

	body, _ := json.Marshal(models.SolveRequest{Mode: "auto_submit"})
	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/assignments/"+target.Hash+"/solve?course_hash="+target.CourseHash, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Solve request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from solve, got %d", resp.StatusCode)
	}

	var result models.SolveResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode solve result: %v", err)
	}
	if result.Status != "solved" {
		t.Errorf("Expected status solved, got %q", result.Status)
	}
	if len(result.Results) != target.QuestionsTotal {
		t.Errorf("Expected %d question results, got %d", target.QuestionsTotal, len(result.Results))
	}

	// The assignment now reports as completed.
	statusResp := authedGet(t, ts, token, "/api/assignments/"+target.Hash+"/status?course_hash="+target.CourseHash)
	defer statusResp.Body.Close()

	var status models.AssignmentStatus
	if err := json.NewDecoder(statusResp.Body).Decode(&status); err != nil {
		t.Fatalf("Failed to decode status: %v", err)
	}
	if !status.Submitted || status.Solved != status.Total {
		t.Errorf("Expected a fully submitted assignment, got %+v", status)
	}
}

func TestScheduleAndPerformanceEndpoints(t *testing.T) {
	ts, fx := newTestServer(t)
	token := login(t, ts)

	resp := authedGet(t, ts, token, "/api/schedule/today")
	defer resp.Body.Close()
	var today []models.ScheduledClass
	if err := json.NewDecoder(resp.Body).Decode(&today); err != nil {
		t.Fatalf("Failed to decode today's schedule: %v", err)
	}
	if len(today) != len(fx.Today) {
		t.Errorf("Expected %d classes today, got %d", len(fx.Today), len(today))
	}

	resp = authedGet(t, ts, token, "/api/performance/overview")
	defer resp.Body.Close()
	var overview models.PerformanceOverview
	if err := json.NewDecoder(resp.Body).Decode(&overview); err != nil {
		t.Fatalf("Failed to decode overview: %v", err)
	}
	if overview.TotalXP != fx.Overview.TotalXP {
		t.Errorf("Expected %d XP, got %d", fx.Overview.TotalXP, overview.TotalXP)
	}

	resp = authedGet(t, ts, token, "/api/performance/course/"+fx.Courses[0].Hash)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 for a known course, got %d", resp.StatusCode)
	}

	resp = authedGet(t, ts, token, "/api/performance/course/does-not-exist")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 for an unknown course, got %d", resp.StatusCode)
	}
}
