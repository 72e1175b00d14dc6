package storage

import (
	"errors"

	"github.com/FranciscoACLima/nutricao-web-app/models"

	"gorm.io/gorm"
)

type FoodStore struct {
	db *gorm.DB
}

func NewFoodStore(db *gorm.DB) *FoodStore { return &FoodStore{db: db} }

func (s *FoodStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.FoodReference{}).Count(&n).Error
	return n, err
}

func (s *FoodStore) BulkInsert(entries []models.FoodReference) error {
	if len(entries) == 0 {
		return nil
	}
	return s.db.CreateInBatches(entries, 200).Error
}

func (s *FoodStore) SearchByName(query string) ([]models.FoodReference, error) {
	var matches []models.FoodReference
	err := s.db.
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Find(&matches).Error
	return matches, err
}

func (s *FoodStore) FindExact(name string) (*models.FoodReference, error) {
	var entry models.FoodReference
	err := s.db.Where("name = ?", name).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
