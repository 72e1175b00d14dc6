package services

import (
	"fmt"
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/models"
	"github.com/FranciscoACLima/nutricao-web-app/observability"
	"github.com/FranciscoACLima/nutricao-web-app/utils"
)

// MeasurementStore is the storage collaborator for body measurements.
type MeasurementStore interface {
	Insert(m *models.BodyMeasurement) error
	// AllByDate returns measurements ascending by date, insertion order
	// for equal dates.
	AllByDate() ([]models.BodyMeasurement, error)
}

// ProgressDelta is the change between the first and last measurement of an
// ordered series.
type ProgressDelta struct {
	WeightDelta  float64 `json:"weight_delta"`
	BodyFatDelta float64 `json:"body_fat_delta"`
}

// SeriesPoint is one (date, value) pair of a rendered time series.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// MeasurementSeries carries the per-metric series consumed by the renderer.
type MeasurementSeries struct {
	Weight  []SeriesPoint `json:"weight_kg"`
	BodyFat []SeriesPoint `json:"body_fat_percent"`
	Waist   []SeriesPoint `json:"waist_cm"`
	Hip     []SeriesPoint `json:"hip_cm"`
}

type MeasurementService struct {
	store MeasurementStore
}

func NewMeasurementService(store MeasurementStore) *MeasurementService {
	return &MeasurementService{store: store}
}

// Record validates the raw inputs, computes BMI and persists the
// measurement. Weight and height must be positive; waist and hip must not
// be negative; body fat must lie in [0,100].
func (s *MeasurementService) Record(date time.Time, weightKg, heightCm, waistCm, hipCm, bodyFatPercent float64) (*models.BodyMeasurement, error) {
	bmi, err := utils.CalculateBMI(heightCm, weightKg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMeasurement, err)
	}
	if waistCm < 0 || hipCm < 0 {
		return nil, fmt.Errorf("%w: waist and hip must not be negative", ErrInvalidMeasurement)
	}
	if bodyFatPercent < 0 || bodyFatPercent > 100 {
		return nil, fmt.Errorf("%w: body fat must be between 0 and 100", ErrInvalidMeasurement)
	}

	m := &models.BodyMeasurement{
		Date:           dayStart(date),
		WeightKg:       weightKg,
		HeightCm:       heightCm,
		BodyMassIndex:  bmi,
		WaistCm:        waistCm,
		HipCm:          hipCm,
		BodyFatPercent: bodyFatPercent,
	}
	if err := s.store.Insert(m); err != nil {
		return nil, err
	}
	observability.MeasurementRecorded()
	return m, nil
}

// List returns all measurements ascending by date.
func (s *MeasurementService) List() ([]models.BodyMeasurement, error) {
	return s.store.AllByDate()
}

// Progress computes the delta between the oldest and newest measurements.
func (s *MeasurementService) Progress() (ProgressDelta, error) {
	series, err := s.store.AllByDate()
	if err != nil {
		return ProgressDelta{}, err
	}
	return ComputeProgress(series)
}

// ComputeProgress returns last minus first for weight and body fat over a
// date-ordered series. Fewer than two measurements cannot produce a delta.
func ComputeProgress(series []models.BodyMeasurement) (ProgressDelta, error) {
	if len(series) < 2 {
		return ProgressDelta{}, ErrInsufficientData
	}
	first, last := series[0], series[len(series)-1]
	return ProgressDelta{
		WeightDelta:  last.WeightKg - first.WeightKg,
		BodyFatDelta: last.BodyFatPercent - first.BodyFatPercent,
	}, nil
}

// BuildMeasurementSeries splits a date-ordered series into the per-metric
// (date, value) sequences the renderer overlays goal lines on.
func BuildMeasurementSeries(series []models.BodyMeasurement) MeasurementSeries {
	out := MeasurementSeries{
		Weight:  make([]SeriesPoint, 0, len(series)),
		BodyFat: make([]SeriesPoint, 0, len(series)),
		Waist:   make([]SeriesPoint, 0, len(series)),
		Hip:     make([]SeriesPoint, 0, len(series)),
	}
	for _, m := range series {
		key := m.Date.Format("2006-01-02")
		out.Weight = append(out.Weight, SeriesPoint{Date: key, Value: m.WeightKg})
		out.BodyFat = append(out.BodyFat, SeriesPoint{Date: key, Value: m.BodyFatPercent})
		out.Waist = append(out.Waist, SeriesPoint{Date: key, Value: m.WaistCm})
		out.Hip = append(out.Hip, SeriesPoint{Date: key, Value: m.HipCm})
	}
	return out
}
