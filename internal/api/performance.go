package api

import (
	"context"
	"net/http"

	"studydeck/internal/models"
	"studydeck/internal/transport"
)

type PerformanceAPI struct {
	client *transport.Client
}

func (p *PerformanceAPI) Overview(ctx context.Context) (*models.PerformanceOverview, error) {
	var overview models.PerformanceOverview
	err := p.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/performance/overview",
	}, &overview)
	if err != nil {
		return nil, err
	}
	return &overview, nil
}

func (p *PerformanceAPI) Course(ctx context.Context, courseHash string) (*models.CoursePerformance, error) {
	var perf models.CoursePerformance
	err := p.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/performance/course/" + courseHash,
	}, &perf)
	if err != nil {
		return nil, err
	}
	return &perf, nil
}

func (p *PerformanceAPI) AllCourses(ctx context.Context) ([]models.CoursePerformance, error) {
	var perfs []models.CoursePerformance
	err := p.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/performance/courses",
	}, &perfs)
	if err != nil {
		return nil, err
	}
	return perfs, nil
}
