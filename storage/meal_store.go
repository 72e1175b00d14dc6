// Package storage provides the gorm-backed implementations of the store
// interfaces declared by the services package.
package storage

import (
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/models"

	"gorm.io/gorm"
)

type MealStore struct {
	db *gorm.DB
}

func NewMealStore(db *gorm.DB) *MealStore { return &MealStore{db: db} }

func (s *MealStore) Insert(entry *models.MealEntry) error {
	return s.db.Create(entry).Error
}

func (s *MealStore) ByDate(date time.Time) ([]models.MealEntry, error) {
	var meals []models.MealEntry
	err := s.db.
		Where("date = ?", date).
		Order("id ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealStore) FromDate(start time.Time) ([]models.MealEntry, error) {
	var meals []models.MealEntry
	err := s.db.
		Where("date >= ?", start).
		Order("date ASC, id ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealStore) CountForDate(date time.Time) (int64, error) {
	var n int64
	err := s.db.
		Model(&models.MealEntry{}).
		Where("date = ?", date).
		Count(&n).Error
	return n, err
}

func (s *MealStore) All() ([]models.MealEntry, error) {
	var meals []models.MealEntry
	err := s.db.Order("date ASC, id ASC").Find(&meals).Error
	return meals, err
}
