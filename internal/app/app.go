// Package app wires the orchestration core together: one process-wide
// context object created at startup and reset on logout, injected into the
// transport client and the cache coordinator instead of ambient globals.
package app

import (
	"context"
	"net/url"

	"studydeck/internal/api"
	"studydeck/internal/cache"
	"studydeck/internal/config"
	"studydeck/internal/models"
	"studydeck/internal/transport"
)

// Resource names used for cache keys. The presentation layer re-derives the
// key on every parameter change, so these must stay stable.
const (
	resAssignments  = "assignments"
	resAssignment   = "assignment"
	resScheduleDay  = "schedule/today"
	resScheduleWeek = "schedule/week"
	resPerfOverview = "performance/overview"
	resPerfCourses  = "performance/courses"
)

// SessionStore is the credential slot shared by the app and the transport
// client.
type SessionStore interface {
	Token() string
	Set(token string)
	Clear()
}

type App struct {
	Config  *config.Config
	Session SessionStore
	API     *api.API
	Cache   *cache.Coordinator
}

// New builds the app context. onAuthExpired runs after a rejected request
// has cleared the credential, typically navigating to the login entry point.
func New(cfg *config.Config, sess SessionStore, onAuthExpired func()) *App {
	client := transport.NewClient(cfg.APIBaseURL, sess, onAuthExpired)
	return &App{
		Config:  cfg,
		Session: sess,
		API:     api.New(client),
		Cache:   cache.NewCoordinator(cfg.CacheTTL),
	}
}

func (a *App) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := a.API.Auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	a.Session.Set(resp.SessionID)
	return &resp.User, nil
}

// Logout ends the remote session, then resets local state regardless of
// whether the remote call succeeded.
func (a *App) Logout(ctx context.Context) error {
	err := a.API.Auth.Logout(ctx)
	a.Session.Clear()
	a.Cache.Reset()
	return err
}

func (a *App) Assignments(ctx context.Context, params api.ListParams) cache.TypedResult[[]models.Assignment] {
	key := cache.Key(resAssignments, params.Values())
	return cache.ResolveAs(a.Cache, ctx, key, func(ctx context.Context) ([]models.Assignment, error) {
		return a.API.Assignments.List(ctx, params)
	})
}

func (a *App) AssignmentDetail(ctx context.Context, hash, courseHash string) cache.TypedResult[*models.AssignmentDetail] {
	key := cache.Key(resAssignment, url.Values{"course_hash": {courseHash}, "hash": {hash}})
	return cache.ResolveAs(a.Cache, ctx, key, func(ctx context.Context) (*models.AssignmentDetail, error) {
		return a.API.Assignments.Get(ctx, hash, courseHash)
	})
}

func (a *App) ScheduleToday(ctx context.Context) cache.TypedResult[[]models.ScheduledClass] {
	return cache.ResolveAs(a.Cache, ctx, cache.Key(resScheduleDay, nil), func(ctx context.Context) ([]models.ScheduledClass, error) {
		return a.API.Schedule.Today(ctx)
	})
}

func (a *App) ScheduleWeek(ctx context.Context, startDate string) cache.TypedResult[[]models.ScheduledClass] {
	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	return cache.ResolveAs(a.Cache, ctx, cache.Key(resScheduleWeek, query), func(ctx context.Context) ([]models.ScheduledClass, error) {
		return a.API.Schedule.Week(ctx, startDate)
	})
}

func (a *App) PerformanceOverview(ctx context.Context) cache.TypedResult[*models.PerformanceOverview] {
	return cache.ResolveAs(a.Cache, ctx, cache.Key(resPerfOverview, nil), func(ctx context.Context) (*models.PerformanceOverview, error) {
		return a.API.Performance.Overview(ctx)
	})
}

func (a *App) CoursePerformances(ctx context.Context) cache.TypedResult[[]models.CoursePerformance] {
	return cache.ResolveAs(a.Cache, ctx, cache.Key(resPerfCourses, nil), func(ctx context.Context) ([]models.CoursePerformance, error) {
		return a.API.Performance.AllCourses(ctx)
	})
}

// Solve submits a solve action, then drops every cached assignments-list
// variant so the next resolve re-fetches the affected course.
func (a *App) Solve(ctx context.Context, hash, courseHash string, req models.SolveRequest) (*models.SolveResult, error) {
	result, err := a.API.Assignments.Solve(ctx, hash, courseHash, req)
	if err != nil {
		return nil, err
	}
	a.Cache.InvalidateResource(resAssignments)
	a.Cache.InvalidateResource(resAssignment)
	return result, nil
}
