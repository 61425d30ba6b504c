package api

import (
	"context"
	"net/http"

	"studydeck/internal/models"
	"studydeck/internal/transport"
)

// SolverAPI forwards solve requests to the remote AI solver. The solving
// itself is an opaque remote operation.
type SolverAPI struct {
	client *transport.Client
}

func (s *SolverAPI) MCQ(ctx context.Context, req models.MCQSolveRequest) (*models.MCQSolveResponse, error) {
	var resp models.MCQSolveResponse
	err := s.client.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/solve/mcq",
		Body:   req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *SolverAPI) Coding(ctx context.Context, req models.CodingSolveRequest) (*models.CodingSolveResponse, error) {
	var resp models.CodingSolveResponse
	err := s.client.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/solve/coding",
		Body:   req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *SolverAPI) Frontend(ctx context.Context, req models.FrontendSolveRequest) (*models.FrontendSolveResponse, error) {
	var resp models.FrontendSolveResponse
	err := s.client.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/solve/frontend",
		Body:   req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
