package services

import (
	"context"
	"errors"
	"log"
	"os"

	"backend/models"

	"gorm.io/gorm"
)

// ImageHost produces a durable public URL for an uploaded image.
type ImageHost interface {
	Upload(ctx context.Context, path string) (string, error)
}

// FoodRecognizer returns the raw recognition response for an image on disk.
type FoodRecognizer interface {
	Analyze(ctx context.Context, path string) ([]byte, error)
}

// DetectionService turns one uploaded food image into one persisted FoodLog:
// host upload, recognition call, response decode, save. Each external call
// is attempted once per request, in order, with no retries.
type DetectionService struct {
	db   *gorm.DB
	host ImageHost
	rec  FoodRecognizer
}

func NewDetectionService(db *gorm.DB, host ImageHost, rec FoodRecognizer) *DetectionService {
	return &DetectionService{db: db, host: host, rec: rec}
}

// DetectAndLog runs the pipeline for the image at imagePath on behalf of
// userID. The temp file is removed exactly once, on every exit path; a
// removal failure is logged and never surfaced or allowed to override the
// result. On any error no FoodLog is created.
func (s *DetectionService) DetectAndLog(ctx context.Context, userID uint, imagePath string) (*models.FoodLog, error) {
	defer func() {
		if _, err := os.Stat(imagePath); err == nil {
			if err := os.Remove(imagePath); err != nil {
				log.Printf("failed to delete temp image %s: %v", imagePath, err)
			}
		}
	}()

	imageURL, err := s.host.Upload(ctx, imagePath)
	if err != nil {
		return nil, &ImageHostError{Err: err}
	}

	raw, err := s.rec.Analyze(ctx, imagePath)
	if err != nil {
		var recErr *RecognitionError
		if errors.As(err, &recErr) {
			return nil, err
		}
		return nil, &RecognitionError{Err: err}
	}

	food, err := ExtractDetectedFood(raw)
	if err != nil {
		return nil, err
	}

	entry := &models.FoodLog{
		UserID:   userID,
		FoodName: food.FoodName,
		Calories: food.Calories,
		Protein:  food.Protein,
		Carbs:    food.Carbs,
		Fats:     food.Fats,
		ImageURL: imageURL,
	}
	// Store failures are infrastructure errors, not client input problems;
	// they surface unwrapped so the handler's generic branch takes them.
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
