package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/FranciscoACLima/nutricao-web-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFoodStore struct {
	entries []models.FoodReference
	inserts int
}

func (s *mockFoodStore) Count() (int64, error) { return int64(len(s.entries)), nil }

func (s *mockFoodStore) BulkInsert(entries []models.FoodReference) error {
	s.entries = append(s.entries, entries...)
	s.inserts++
	return nil
}

func (s *mockFoodStore) SearchByName(query string) ([]models.FoodReference, error) {
	q := strings.ToLower(query)
	var out []models.FoodReference
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *mockFoodStore) FindExact(name string) (*models.FoodReference, error) {
	for _, e := range s.entries {
		if e.Name == name {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

type staticSource struct {
	entries []models.FoodReference
	err     error
}

func (s staticSource) Fetch(context.Context) ([]models.FoodReference, error) {
	return s.entries, s.err
}

func TestBulkLoadFallsBackToSeedOnFetchFailure(t *testing.T) {
	store := &mockFoodStore{}
	svc := NewFoodReferenceService(store)

	n, err := svc.BulkLoad(context.Background(), staticSource{err: errors.New("connection refused")})
	require.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Len(t, store.entries, 15)
}

func TestBulkLoadIdempotent(t *testing.T) {
	store := &mockFoodStore{}
	svc := NewFoodReferenceService(store)

	src := staticSource{entries: SeedFoodReference()}
	n, err := svc.BulkLoad(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	// second call: table is non-empty, nothing happens
	n, err = svc.BulkLoad(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, store.inserts)
	assert.Len(t, store.entries, 15)
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	store := &mockFoodStore{entries: SeedFoodReference()}
	svc := NewFoodReferenceService(store)

	matches, err := svc.Search("arroz")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Arroz, tipo 1, cozido", matches[0].Name)

	matches, err = svc.Search("xyz123")
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestSearchOrderedByName(t *testing.T) {
	store := &mockFoodStore{entries: SeedFoodReference()}
	svc := NewFoodReferenceService(store)

	matches, err := svc.Search("c")
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].Name, matches[i].Name)
	}
}

func TestFindExact(t *testing.T) {
	store := &mockFoodStore{entries: SeedFoodReference()}
	svc := NewFoodReferenceService(store)

	entry, err := svc.FindExact("Azeite, de oliva")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 884.0, entry.CaloriesKcal)
	assert.Equal(t, 100.0, entry.FatGrams)

	entry, err = svc.FindExact("Azeite")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestSeedFoodReferenceShape(t *testing.T) {
	seed := SeedFoodReference()
	require.Len(t, seed, 15)
	for _, e := range seed {
		assert.NotEmpty(t, e.Name)
		assert.GreaterOrEqual(t, e.CaloriesKcal, 0.0)
	}
}
