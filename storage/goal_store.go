package storage

import (
	"errors"

	"github.com/FranciscoACLima/nutricao-web-app/models"

	"gorm.io/gorm"
)

type GoalStore struct {
	db *gorm.DB
}

func NewGoalStore(db *gorm.DB) *GoalStore { return &GoalStore{db: db} }

// Singleton reads the one goal row; an absent row is (nil, nil), not an
// error, so the resolver can apply its defaults.
func (s *GoalStore) Singleton() (*models.GoalProfile, error) {
	var profile models.GoalProfile
	err := s.db.Where("id = ?", 1).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *GoalStore) Upsert(profile *models.GoalProfile) error {
	profile.ID = 1
	return s.db.Save(profile).Error
}
