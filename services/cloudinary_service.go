package services

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService stores food images and hands back a durable public URL.
type CloudinaryService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryService() (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init failed: %w", err)
	}
	return &CloudinaryService{cld: cld, folder: "food_logs"}, nil
}

// Upload sends the file at path to Cloudinary and returns the secure URL.
func (s *CloudinaryService) Upload(ctx context.Context, path string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, path, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return "", err
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no URL for %s", path)
	}
	return resp.SecureURL, nil
}
