package services

import (
	"time"

	"frotalog/internal/analytics"
	"frotalog/internal/insights"
)

// InsightsService runs the advisory rule set over the dashboard snapshot.
type InsightsService struct {
	Dashboard DashboardService

	Now func() time.Time
}

func (s InsightsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s InsightsService) Evaluate(userID string) ([]insights.Insight, error) {
	snap, err := s.Dashboard.BuildSnapshot(userID)
	if err != nil {
		return nil, err
	}
	sum := analytics.Aggregate(snap)
	return insights.Evaluate(snap, sum, s.now()), nil
}

func (s InsightsService) Tips(userID string) ([]insights.Insight, error) {
	snap, err := s.Dashboard.BuildSnapshot(userID)
	if err != nil {
		return nil, err
	}
	sum := analytics.Aggregate(snap)
	return insights.GoldenTips(snap, sum, s.now()), nil
}
