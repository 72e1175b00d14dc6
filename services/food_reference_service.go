package services

import (
	"context"

	"github.com/FranciscoACLima/nutricao-web-app/logger"
	"github.com/FranciscoACLima/nutricao-web-app/models"
	"github.com/FranciscoACLima/nutricao-web-app/observability"

	"go.uber.org/zap"
)

// FoodStore is the storage collaborator for the reference table.
type FoodStore interface {
	Count() (int64, error)
	BulkInsert(entries []models.FoodReference) error
	// SearchByName matches a case-insensitive substring, ordered by name.
	SearchByName(query string) ([]models.FoodReference, error)
	// FindExact returns the entry with exactly this name, or nil.
	FindExact(name string) (*models.FoodReference, error)
}

// ReferenceSource produces the reference dataset, typically by downloading
// the published TACO table.
type ReferenceSource interface {
	Fetch(ctx context.Context) ([]models.FoodReference, error)
}

type FoodReferenceService struct {
	store FoodStore
}

func NewFoodReferenceService(store FoodStore) *FoodReferenceService {
	return &FoodReferenceService{store: store}
}

// BulkLoad fills the reference table from the source when the table is
// empty, and returns the number of rows inserted. A second call against a
// populated table is a no-op returning 0. Source failures are recovered by
// loading the fixed seed set; the only error path is storage itself.
func (s *FoodReferenceService) BulkLoad(ctx context.Context, src ReferenceSource) (int, error) {
	count, err := s.store.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		observability.SetReferenceRows(count)
		return 0, nil
	}

	entries, err := src.Fetch(ctx)
	if err != nil {
		logger.Warn("reference dataset fetch failed, using seed set", zap.Error(err))
		entries = SeedFoodReference()
	}
	if len(entries) == 0 {
		entries = SeedFoodReference()
	}

	if err := s.store.BulkInsert(entries); err != nil {
		return 0, err
	}
	observability.SetReferenceRows(int64(len(entries)))
	logger.Info("reference table loaded", zap.Int("rows", len(entries)))
	return len(entries), nil
}

// Search answers a partial-name query. No match yields an empty slice,
// never an error.
func (s *FoodReferenceService) Search(query string) ([]models.FoodReference, error) {
	observability.ReferenceLookup()
	matches, err := s.store.SearchByName(query)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []models.FoodReference{}
	}
	return matches, nil
}

// FindExact looks up one entry by its full name, for nutrient autofill.
func (s *FoodReferenceService) FindExact(name string) (*models.FoodReference, error) {
	observability.ReferenceLookup()
	return s.store.FindExact(name)
}

// SeedFoodReference is the deterministic fallback dataset used when the
// published table cannot be fetched. Values are per 100 g.
func SeedFoodReference() []models.FoodReference {
	return []models.FoodReference{
		{Name: "Arroz, tipo 1, cozido", CaloriesKcal: 128, ProteinGrams: 2.5, FatGrams: 0.2, CarbGrams: 28.1, FiberGrams: 1.6, CalciumMg: 4, IronMg: 0.1},
		{Name: "Feijão, carioca, cozido", CaloriesKcal: 76, ProteinGrams: 4.8, FatGrams: 0.5, CarbGrams: 13.6, FiberGrams: 8.5, CalciumMg: 27, IronMg: 1.3},
		{Name: "Frango, peito, sem pele, cozido", CaloriesKcal: 159, ProteinGrams: 32, FatGrams: 3.2, CarbGrams: 0, FiberGrams: 0, CalciumMg: 7, IronMg: 0.4},
		{Name: "Pão, francês", CaloriesKcal: 300, ProteinGrams: 8, FatGrams: 3.1, CarbGrams: 58.6, FiberGrams: 2.3, CalciumMg: 16, IronMg: 1.0},
		{Name: "Maçã, com casca", CaloriesKcal: 56, ProteinGrams: 0.3, FatGrams: 0.2, CarbGrams: 15, FiberGrams: 2.4, CalciumMg: 4, IronMg: 0.1},
		{Name: "Banana prata", CaloriesKcal: 98, ProteinGrams: 1.3, FatGrams: 0.1, CarbGrams: 26, FiberGrams: 2.0, CalciumMg: 8, IronMg: 0.3},
		{Name: "Leite, integral", CaloriesKcal: 62, ProteinGrams: 3.2, FatGrams: 3.4, CarbGrams: 4.7, FiberGrams: 0, CalciumMg: 123, IronMg: 0.1},
		{Name: "Ovo, galinha, inteiro, cozido", CaloriesKcal: 146, ProteinGrams: 13.3, FatGrams: 9.5, CarbGrams: 0.6, FiberGrams: 0, CalciumMg: 42, IronMg: 1.5},
		{Name: "Alface, lisa, crua", CaloriesKcal: 14, ProteinGrams: 1.7, FatGrams: 0.2, CarbGrams: 2.4, FiberGrams: 1.8, CalciumMg: 38, IronMg: 0.4},
		{Name: "Cenoura, crua", CaloriesKcal: 34, ProteinGrams: 1.3, FatGrams: 0.2, CarbGrams: 7.7, FiberGrams: 3.2, CalciumMg: 23, IronMg: 0.1},
		{Name: "Batata, inglesa, cozida", CaloriesKcal: 52, ProteinGrams: 1.2, FatGrams: 0, CarbGrams: 11.9, FiberGrams: 1.3, CalciumMg: 4, IronMg: 0.2},
		{Name: "Carne, bovina, patinho, sem gordura, cozido", CaloriesKcal: 219, ProteinGrams: 35.9, FatGrams: 8.5, CarbGrams: 0, FiberGrams: 0, CalciumMg: 4, IronMg: 3.4},
		{Name: "Azeite, de oliva", CaloriesKcal: 884, ProteinGrams: 0, FatGrams: 100, CarbGrams: 0, FiberGrams: 0, CalciumMg: 0, IronMg: 0.4},
		{Name: "Manteiga, com sal", CaloriesKcal: 726, ProteinGrams: 0.9, FatGrams: 82.4, CarbGrams: 0.1, FiberGrams: 0, CalciumMg: 15, IronMg: 0},
		{Name: "Aveia, flocos", CaloriesKcal: 394, ProteinGrams: 13.9, FatGrams: 8.5, CarbGrams: 67.0, FiberGrams: 9.0, CalciumMg: 52, IronMg: 4.4},
	}
}
