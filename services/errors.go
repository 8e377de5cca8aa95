package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrForbidden   = errors.New("not authorized for this record")
	ErrInvalidDate = errors.New("invalid date")
)

// ValidationError reports missing or malformed fields on a write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ImageHostError wraps a failed upload to the image host. The partial
// request is abandoned; no record is created once this is returned.
type ImageHostError struct {
	Err error
}

func (e *ImageHostError) Error() string {
	return fmt.Sprintf("image host upload failed: %v", e.Err)
}

func (e *ImageHostError) Unwrap() error { return e.Err }

// RecognitionError wraps a failed call to the food-recognition API.
// StatusCode holds the upstream HTTP status when one was received, else 0.
type RecognitionError struct {
	StatusCode int
	Err        error
}

func (e *RecognitionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("recognition API error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("recognition API error: %v", e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }

// UnrecognizedFoodError means the recognition response could not be turned
// into a food name plus calories. MissingEssentials is true when a known
// response shape matched but the name or calorie value was absent, as
// opposed to no shape matching at all.
type UnrecognizedFoodError struct {
	MissingEssentials bool
}

func (e *UnrecognizedFoodError) Error() string {
	if e.MissingEssentials {
		return "recognition response missing food name or calories"
	}
	return "recognition response format not recognized"
}
