package app

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"studydeck/internal/api"
	"studydeck/internal/config"
	"studydeck/internal/mockapi"
	"studydeck/internal/models"
	"studydeck/internal/session"
	"studydeck/internal/transport"
)

func newTestApp(t *testing.T) (*App, *session.Store, *bool) {
	t.Helper()

	server := httptest.NewServer(mockapi.NewServer("test-secret", nil).Handler())
	t.Cleanup(server.Close)

	cfg := &config.Config{
		APIBaseURL:    server.URL,
		CacheTTL:      time.Minute,
		DeadlineLimit: 5,
	}

	sess := session.NewStore()
	redirected := false
	a := New(cfg, sess, func() { redirected = true })
	return a, sess, &redirected
}

func TestLoginThenFilteredAssignments(t *testing.T) {
	a, sess, _ := newTestApp(t)
	ctx := context.Background()

	user, err := a.Login(ctx, mockapi.FixtureEmail, mockapi.FixturePassword)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Email != mockapi.FixtureEmail {
		t.Errorf("Unexpected user %q", user.Email)
	}
	if sess.Token() == "" {
		t.Fatal("Expected the session credential to be stored")
	}

	// Fixture holds 10 assignments, exactly 3 pending and hard.
	res := a.Assignments(ctx, api.ListParams{
		Status:     models.StatusPending,
		Difficulty: models.DifficultyHard,
		Limit:      50,
	})
	if res.Err != nil {
		t.Fatalf("Assignments failed: %v", res.Err)
	}
	if len(res.Value) != 3 {
		t.Fatalf("Expected 3 matching assignments, got %d", len(res.Value))
	}
	for i, got := range res.Value {
		if got.Status != models.StatusPending || got.Difficulty != models.DifficultyHard {
			t.Errorf("Assignment %d does not match the filters: %+v", i, got)
		}
	}

	// Source order is preserved.
	if res.Value[0].Title != "Graph Traversals" || res.Value[2].Title != "Index Design Lab" {
		t.Errorf("Filtered assignments arrived out of source order: %q, %q, %q",
			res.Value[0].Title, res.Value[1].Title, res.Value[2].Title)
	}
}

func TestDistinctFiltersUseDistinctCacheKeys(t *testing.T) {
	a, _, _ := newTestApp(t)
	ctx := context.Background()

	if _, err := a.Login(ctx, mockapi.FixtureEmail, mockapi.FixturePassword); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	pending := a.Assignments(ctx, api.ListParams{Status: models.StatusPending})
	all := a.Assignments(ctx, api.ListParams{})

	if pending.Err != nil || all.Err != nil {
		t.Fatalf("Assignments failed: %v / %v", pending.Err, all.Err)
	}
	if len(pending.Value) == len(all.Value) {
		t.Error("Expected the filtered and unfiltered lists to differ")
	}
	if len(all.Value) != 10 {
		t.Errorf("Expected 10 assignments without filters, got %d", len(all.Value))
	}
}

func TestRejectedSessionClearsCredential(t *testing.T) {
	a, sess, redirected := newTestApp(t)
	ctx := context.Background()

	sess.Set("forged-or-expired-token")

	res := a.ScheduleToday(ctx)
	if !errors.Is(res.Err, transport.ErrAuthExpired) {
		t.Fatalf("Expected ErrAuthExpired, got %v", res.Err)
	}
	if sess.Token() != "" {
		t.Error("Expected the credential to be cleared after a 401")
	}
	if !*redirected {
		t.Error("Expected the redirect hook to fire")
	}

	// A new login issues a fresh credential and requests succeed again.
	if _, err := a.Login(ctx, mockapi.FixtureEmail, mockapi.FixturePassword); err != nil {
		t.Fatalf("Re-login failed: %v", err)
	}
	res = a.ScheduleToday(ctx)
	if res.Err != nil {
		t.Fatalf("Expected schedule fetch to succeed after re-login, got %v", res.Err)
	}
	if len(res.Value) == 0 {
		t.Error("Expected fixture classes")
	}
}

func TestSolveInvalidatesAssignmentLists(t *testing.T) {
	a, _, _ := newTestApp(t)
	ctx := context.Background()

	if _, err := a.Login(ctx, mockapi.FixtureEmail, mockapi.FixturePassword); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	params := api.ListParams{Status: models.StatusPending, Difficulty: models.DifficultyHard}
	before := a.Assignments(ctx, params)
	if before.Err != nil {
		t.Fatalf("Assignments failed: %v", before.Err)
	}
	if len(before.Value) != 3 {
		t.Fatalf("Expected 3 assignments before solving, got %d", len(before.Value))
	}

	target := before.Value[0]
	if _, err := a.Solve(ctx, target.Hash, target.CourseHash, models.SolveRequest{Mode: "auto_submit"}); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	// The cached list was invalidated, so this resolve re-fetches and the
	// solved assignment no longer shows as pending.
	after := a.Assignments(ctx, params)
	if after.Err != nil {
		t.Fatalf("Assignments failed after solve: %v", after.Err)
	}
	if len(after.Value) != 2 {
		t.Errorf("Expected 2 pending hard assignments after solving one, got %d", len(after.Value))
	}
}

func TestLogoutResetsSessionAndCache(t *testing.T) {
	a, sess, _ := newTestApp(t)
	ctx := context.Background()

	if _, err := a.Login(ctx, mockapi.FixtureEmail, mockapi.FixturePassword); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if res := a.PerformanceOverview(ctx); res.Err != nil {
		t.Fatalf("Overview failed: %v", res.Err)
	}

	if err := a.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if sess.Token() != "" {
		t.Error("Expected the credential to be gone after logout")
	}

	// With no credential the next protected call is rejected.
	res := a.PerformanceOverview(ctx)
	if !errors.Is(res.Err, transport.ErrAuthExpired) {
		t.Fatalf("Expected ErrAuthExpired after logout, got %v", res.Err)
	}
}
