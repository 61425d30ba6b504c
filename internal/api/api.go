// Package api contains the typed request builders for each resource family
// of the academic-services API. Gateways are pure mappings from call
// parameters to transport requests: no caching, no retries, and errors are
// whatever the transport client reports.
package api

import "studydeck/internal/transport"

type API struct {
	Auth        *AuthAPI
	Assignments *AssignmentsAPI
	Schedule    *ScheduleAPI
	Performance *PerformanceAPI
	Solver      *SolverAPI
}

func New(client *transport.Client) *API {
	return &API{
		Auth:        &AuthAPI{client: client},
		Assignments: &AssignmentsAPI{client: client},
		Schedule:    &ScheduleAPI{client: client},
		Performance: &PerformanceAPI{client: client},
		Solver:      &SolverAPI{client: client},
	}
}
