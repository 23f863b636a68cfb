package services

import (
	"encoding/json"
	"fmt"
	"time"

	"frotalog/internal/domain"
	"frotalog/internal/repositories"
	"frotalog/internal/socket"
	"frotalog/internal/utils"

	"github.com/google/uuid"
)

// IncomingPoint is the companion-app payload for one GPS sample.
type IncomingPoint struct {
	DriverID   string  `json:"driverId"`
	TripID     string  `json:"tripId"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	SpeedKmh   float64 `json:"speedKmh"`
	RecordedAt string  `json:"recordedAt"`
}

// TrackingService persists GPS points and pushes them to live dashboards.
type TrackingService struct {
	TrackingRepo repositories.TrackingRepository
	Hub          *socket.Hub

	RequestID string
	Now       func() time.Time
}

func (s TrackingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s TrackingService) RecordPositions(userID string, incoming []IncomingPoint) ([]domain.TrackingPoint, error) {
	if len(incoming) == 0 {
		return []domain.TrackingPoint{}, nil
	}

	points := make([]domain.TrackingPoint, 0, len(incoming))
	for _, in := range incoming {
		if in.DriverID == "" {
			return nil, domain.ValidationError{Field: "driverId", Msg: "obrigatório"}
		}
		recordedAt := in.RecordedAt
		if recordedAt == "" {
			recordedAt = s.now().UTC().Format("2006-01-02 15:04:05")
		}
		points = append(points, domain.TrackingPoint{
			ID:         uuid.NewString(),
			UserID:     userID,
			DriverID:   in.DriverID,
			TripID:     in.TripID,
			Latitude:   in.Latitude,
			Longitude:  in.Longitude,
			SpeedKmh:   in.SpeedKmh,
			RecordedAt: recordedAt,
		})
	}

	if err := s.TrackingRepo.InsertPoints(points); err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "tracking", "record_positions", fmt.Sprintf("user=%s points=%d", userID, len(points)))

	if s.Hub != nil {
		if msg, err := json.Marshal(points); err == nil {
			s.Hub.Broadcast(userID, msg)
		}
	}
	return points, nil
}

func (s TrackingService) Latest(userID string) ([]domain.TrackingPoint, error) {
	return s.TrackingRepo.LatestByDriver(userID)
}
