package services

import "errors"

var (
	// ErrInvalidMeasurement rejects non-positive weight or height before
	// the BMI division, and out-of-range waist/hip/body-fat values.
	ErrInvalidMeasurement = errors.New("invalid measurement")

	// ErrInsufficientData is returned when a progress delta is requested
	// over fewer than two measurements.
	ErrInsufficientData = errors.New("at least two measurements are required")

	// ErrInvalidMeal rejects an unknown meal slot or negative quantities.
	ErrInvalidMeal = errors.New("invalid meal entry")

	// ErrReferenceLoad marks a failed fetch of the external reference
	// dataset. It never escapes the loader: the fixed seed set is used
	// instead.
	ErrReferenceLoad = errors.New("reference dataset unavailable")
)
