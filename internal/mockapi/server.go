// Package mockapi is a local stand-in for the remote academic-services API.
// It serves a canned fixture dataset behind the same REST surface, so the
// dashboard can be developed and tested without credentials to the real
// service. It is a development fixture, not the product's auth system.
package mockapi

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	mu       sync.Mutex
	fixtures *Fixtures
	auth     *sessionAuth
}

func NewServer(secret string, fixtures *Fixtures) *Server {
	if fixtures == nil {
		fixtures = DefaultFixtures()
	}
	return &Server{
		fixtures: fixtures,
		auth:     newSessionAuth(secret),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Auth Routes ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(newThrottle(20).middleware)
			r.Post("/login", s.handleLogin)
			r.Get("/status", s.handleAuthStatus)

			r.Group(func(r chi.Router) {
				r.Use(s.auth.middleware)
				r.Post("/logout", s.handleLogout)
				r.Get("/user/me", s.handleCurrentUser)
			})
		})

		// ──── Protected Resources ────
		r.Group(func(r chi.Router) {
			r.Use(s.auth.middleware)

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/", s.handleListAssignments)
				r.Get("/{hash}", s.handleAssignmentDetail)
				r.Post("/{hash}/solve", s.handleSolveAssignment)
				r.Get("/{hash}/status", s.handleAssignmentStatus)
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/today", s.handleScheduleToday)
				r.Get("/week", s.handleScheduleWeek)
				r.Post("/join-class", s.handleJoinClass)
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/overview", s.handlePerformanceOverview)
				r.Get("/courses", s.handleAllCoursePerformance)
				r.Get("/course/{hash}", s.handleCoursePerformance)
			})

			r.Route("/solve", func(r chi.Router) {
				r.Post("/mcq", s.handleSolveMCQ)
				r.Post("/coding", s.handleSolveCoding)
				r.Post("/frontend", s.handleSolveFrontend)
			})
		})
	})

	return r
}
