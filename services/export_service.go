package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/FranciscoACLima/nutricao-web-app/models"
)

// Flat CSV dumps of the raw entries, consumed by the download affordance.
// Each format round-trips: parsing an exported dump yields the original
// records field for field, id included.

var mealCSVHeader = []string{
	"id", "date", "meal_slot", "food_name", "quantity_grams",
	"calories", "protein_grams", "carb_grams", "fat_grams",
}

var measurementCSVHeader = []string{
	"id", "date", "weight_kg", "height_cm", "body_mass_index",
	"waist_cm", "hip_cm", "body_fat_percent",
}

func MealsCSV(meals []models.MealEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(mealCSVHeader); err != nil {
		return nil, err
	}
	for _, m := range meals {
		row := []string{
			strconv.FormatUint(uint64(m.ID), 10),
			m.Date.Format("2006-01-02"),
			m.MealSlot,
			m.FoodName,
			ftoa(m.QuantityGrams),
			ftoa(m.Calories),
			ftoa(m.ProteinGrams),
			ftoa(m.CarbGrams),
			ftoa(m.FatGrams),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func ParseMealsCSV(r io.Reader) ([]models.MealEntry, error) {
	rows, err := readCSV(r, len(mealCSVHeader))
	if err != nil {
		return nil, err
	}
	out := make([]models.MealEntry, 0, len(rows))
	for _, row := range rows {
		id, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad id %q: %w", row[0], err)
		}
		date, err := time.Parse("2006-01-02", row[1])
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", row[1], err)
		}
		vals, err := atofAll(row[4:9])
		if err != nil {
			return nil, err
		}
		out = append(out, models.MealEntry{
			ID:            uint(id),
			Date:          date,
			MealSlot:      row[2],
			FoodName:      row[3],
			QuantityGrams: vals[0],
			Calories:      vals[1],
			ProteinGrams:  vals[2],
			CarbGrams:     vals[3],
			FatGrams:      vals[4],
		})
	}
	return out, nil
}

func MeasurementsCSV(series []models.BodyMeasurement) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(measurementCSVHeader); err != nil {
		return nil, err
	}
	for _, m := range series {
		row := []string{
			strconv.FormatUint(uint64(m.ID), 10),
			m.Date.Format("2006-01-02"),
			ftoa(m.WeightKg),
			ftoa(m.HeightCm),
			ftoa(m.BodyMassIndex),
			ftoa(m.WaistCm),
			ftoa(m.HipCm),
			ftoa(m.BodyFatPercent),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func ParseMeasurementsCSV(r io.Reader) ([]models.BodyMeasurement, error) {
	rows, err := readCSV(r, len(measurementCSVHeader))
	if err != nil {
		return nil, err
	}
	out := make([]models.BodyMeasurement, 0, len(rows))
	for _, row := range rows {
		id, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad id %q: %w", row[0], err)
		}
		date, err := time.Parse("2006-01-02", row[1])
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", row[1], err)
		}
		vals, err := atofAll(row[2:8])
		if err != nil {
			return nil, err
		}
		out = append(out, models.BodyMeasurement{
			ID:             uint(id),
			Date:           date,
			WeightKg:       vals[0],
			HeightCm:       vals[1],
			BodyMassIndex:  vals[2],
			WaistCm:        vals[3],
			HipCm:          vals[4],
			BodyFatPercent: vals[5],
		})
	}
	return out, nil
}

func readCSV(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	return rows[1:], nil
}

func atofAll(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

// ftoa keeps the shortest representation that survives a round trip.
func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
