package models

// ScheduledClass timestamps are unix seconds, as returned by the remote API.
type ScheduledClass struct {
	Hash           string  `json:"hash"`
	Time           string  `json:"time"` // "HH:MM" display form of the start time
	Subject        string  `json:"subject"`
	Room           *string `json:"room"`
	JoinURL        *string `json:"join_url"`
	Instructor     *string `json:"instructor"`
	StartTimestamp int64   `json:"start_timestamp"`
	EndTimestamp   int64   `json:"end_timestamp"`
}

type JoinClassRequest struct {
	LectureSlotHash string `json:"lecture_slot_hash"`
}

type JoinClassResult struct {
	JoinURL string `json:"join_url"`
	Status  string `json:"status"`
}
