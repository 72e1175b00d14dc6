package storage

import (
	"github.com/FranciscoACLima/nutricao-web-app/models"

	"gorm.io/gorm"
)

type MeasurementStore struct {
	db *gorm.DB
}

func NewMeasurementStore(db *gorm.DB) *MeasurementStore { return &MeasurementStore{db: db} }

func (s *MeasurementStore) Insert(m *models.BodyMeasurement) error {
	return s.db.Create(m).Error
}

// AllByDate orders by date ascending; id breaks ties in insertion order.
func (s *MeasurementStore) AllByDate() ([]models.BodyMeasurement, error) {
	var series []models.BodyMeasurement
	err := s.db.Order("date ASC, id ASC").Find(&series).Error
	return series, err
}
