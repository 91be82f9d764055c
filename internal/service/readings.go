package service

import (
	"context"
	"sort"
	"time"

	"github.com/dkuleshov/emgtrack/internal/ident"
	"github.com/dkuleshov/emgtrack/internal/models"
)

// DefaultLatestLimit bounds LatestReadings when the caller passes no limit.
const DefaultLatestLimit = 10

// AddReading appends one reading for userID and returns the stored record.
// The userID is not checked for existence; an empty muscleGroup defaults to
// models.DefaultMuscleGroup.
func (s *Service) AddReading(ctx context.Context, userID string, values []float64, muscleGroup string) (*models.Reading, error) {
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}
	readings, err := s.store.ReadReadings(ctx)
	if err != nil {
		return nil, err
	}

	if muscleGroup == "" {
		muscleGroup = models.DefaultMuscleGroup
	}
	if values == nil {
		values = []float64{}
	}

	reading := models.Reading{
		ID:          ident.NewID(),
		UserID:      userID,
		Values:      values,
		MuscleGroup: muscleGroup,
		Timestamp:   s.timestamp(),
	}
	readings = append(readings, reading)

	if err := s.store.WriteReadings(ctx, readings); err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "reading saved", "reading_id", reading.ID, "user_id", userID, "samples", len(values))
	return &reading, nil
}

// UserReadings returns all readings for userID in persisted insertion order.
func (s *Service) UserReadings(ctx context.Context, userID string) ([]models.Reading, error) {
	readings, err := s.store.ReadReadings(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.Reading
	for _, r := range readings {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

// LatestReadings returns up to limit readings for userID, most recent first.
// The sort is stable, so readings with equal timestamps keep insertion order.
// A non-positive limit falls back to DefaultLatestLimit.
func (s *Service) LatestReadings(ctx context.Context, userID string, limit int) ([]models.Reading, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	result, err := s.UserReadings(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Time().After(result[j].Time())
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// WeeklyStats summarizes the user's readings recorded during the trailing
// seven days: session count, mean sample value and peak sample value.
func (s *Service) WeeklyStats(ctx context.Context, userID string) (*models.WeeklyStats, error) {
	readings, err := s.UserReadings(ctx, userID)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-7 * 24 * time.Hour)
	stats := &models.WeeklyStats{}
	var sum float64
	var samples int

	for _, r := range readings {
		if r.Time().Before(cutoff) {
			continue
		}
		stats.Sessions++
		for _, v := range r.Values {
			sum += v
			samples++
			if v > stats.Peak {
				stats.Peak = v
			}
		}
	}
	if samples > 0 {
		stats.AvgActivation = sum / float64(samples)
	}
	return stats, nil
}
