package service

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/internal/models"
)

// SubjectAverage is the unweighted mean of a student's grades in one
// subject, rounded to one decimal for display.
type SubjectAverage struct {
	Subject models.Subject `json:"subject"`
	Average float64        `json:"average"`
	Count   int            `json:"count"`
}

// TrendPoint is one grade on the chronological performance chart. Subject
// keys the series the point belongs to, so several subject lines can be
// drawn from a single sequence.
type TrendPoint struct {
	Index    int             `json:"index"`
	Date     time.Time       `json:"date"`
	Subject  models.Subject  `json:"subject"`
	ExamType models.ExamType `json:"exam_type"`
	Score    float64         `json:"score"`
}

// AggregateService computes read-side views over grade lists. Every method
// is a pure function of its inputs; the roster is never touched.
type AggregateService struct {
	logger *zap.Logger
}

// NewAggregateService constructs an AggregateService.
func NewAggregateService(logger *zap.Logger) *AggregateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AggregateService{logger: logger}
}

// FilterBySemester keeps the grades whose calendar month falls inside the
// selected term. ALL keeps everything.
func (s *AggregateService) FilterBySemester(grades []models.Grade, sem models.Semester) []models.Grade {
	if sem == models.SemesterAll {
		return append([]models.Grade(nil), grades...)
	}
	out := make([]models.Grade, 0, len(grades))
	for _, g := range grades {
		if sem.Includes(g.Date.Month()) {
			out = append(out, g)
		}
	}
	return out
}

// WeightedAverage returns sum(score * coefficient) / sum(coefficient), or 0
// for an empty list. The result is invariant under reordering and is not
// rounded; callers round at the display boundary.
func (s *AggregateService) WeightedAverage(grades []models.Grade) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum, weights float64
	for _, g := range grades {
		sum += g.Score * float64(g.Coefficient)
		weights += float64(g.Coefficient)
	}
	if weights == 0 {
		return 0
	}
	return sum / weights
}

// SubjectBreakdown returns the simple per-subject means. Algebra and
// Geometry are always reported; General only when such grades exist.
func (s *AggregateService) SubjectBreakdown(grades []models.Grade) []SubjectAverage {
	out := []SubjectAverage{
		s.subjectAverage(grades, models.SubjectAlgebra),
		s.subjectAverage(grades, models.SubjectGeometry),
	}
	general := s.subjectAverage(grades, models.SubjectGeneral)
	if general.Count > 0 {
		out = append(out, general)
	}
	return out
}

// TrendSeries returns the grades sorted chronologically, shaped for the
// performance-over-time chart.
func (s *AggregateService) TrendSeries(grades []models.Grade) []TrendPoint {
	sorted := append([]models.Grade(nil), grades...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	points := make([]TrendPoint, len(sorted))
	for i, g := range sorted {
		points[i] = TrendPoint{
			Index:    i + 1,
			Date:     g.Date,
			Subject:  g.Subject,
			ExamType: g.ExamType,
			Score:    g.Score,
		}
	}
	return points
}

func (s *AggregateService) subjectAverage(grades []models.Grade, subject models.Subject) SubjectAverage {
	var sum float64
	count := 0
	for _, g := range grades {
		if g.Subject == subject {
			sum += g.Score
			count++
		}
	}
	avg := 0.0
	if count > 0 {
		avg = round1(sum / float64(count))
	}
	return SubjectAverage{Subject: subject, Average: avg, Count: count}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
