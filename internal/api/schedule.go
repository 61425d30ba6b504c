package api

import (
	"context"
	"net/http"
	"net/url"

	"studydeck/internal/models"
	"studydeck/internal/transport"
)

type ScheduleAPI struct {
	client *transport.Client
}

func (s *ScheduleAPI) Today(ctx context.Context) ([]models.ScheduledClass, error) {
	var classes []models.ScheduledClass
	err := s.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/schedule/today",
	}, &classes)
	if err != nil {
		return nil, err
	}
	return classes, nil
}

// Week fetches the week starting at startDate (ISO date, empty for the
// current week).
func (s *ScheduleAPI) Week(ctx context.Context, startDate string) ([]models.ScheduledClass, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}

	var classes []models.ScheduledClass
	err := s.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/schedule/week",
		Query:  query,
	}, &classes)
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *ScheduleAPI) JoinClass(ctx context.Context, lectureSlotHash string) (*models.JoinClassResult, error) {
	var result models.JoinClassResult
	err := s.client.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/schedule/join-class",
		Body:   models.JoinClassRequest{LectureSlotHash: lectureSlotHash},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
