package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"studydeck/internal/models"
	"studydeck/internal/transport"
)

type AssignmentsAPI struct {
	client *transport.Client
}

// ListParams narrows an assignments listing. Zero values mean "no
// constraint", matching the remote API's optional query parameters.
type ListParams struct {
	CourseHash string
	Status     string // "pending" | "completed"
	Difficulty string // "easy" | "medium" | "hard"
	Limit      int
}

// Values encodes the parameters in their query form. The coordinator also
// uses this encoding to derive the cache key, so it must be deterministic
// (url.Values.Encode sorts by key).
func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.CourseHash != "" {
		v.Set("course_hash", p.CourseHash)
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.Difficulty != "" {
		v.Set("difficulty", p.Difficulty)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

func (a *AssignmentsAPI) List(ctx context.Context, params ListParams) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := a.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/assignments",
		Query:  params.Values(),
	}, &assignments)
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (a *AssignmentsAPI) Get(ctx context.Context, hash, courseHash string) (*models.AssignmentDetail, error) {
	var detail models.AssignmentDetail
	err := a.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/assignments/" + hash,
		Query:  url.Values{"course_hash": {courseHash}},
	}, &detail)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (a *AssignmentsAPI) Solve(ctx context.Context, hash, courseHash string, req models.SolveRequest) (*models.SolveResult, error) {
	var result models.SolveResult
	err := a.client.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/assignments/" + hash + "/solve",
		Query:  url.Values{"course_hash": {courseHash}},
		Body:   req,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *AssignmentsAPI) Status(ctx context.Context, hash, courseHash string) (*models.AssignmentStatus, error) {
	var status models.AssignmentStatus
	err := a.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/assignments/" + hash + "/status",
		Query:  url.Values{"course_hash": {courseHash}},
	}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
