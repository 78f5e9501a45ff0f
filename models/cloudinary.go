package models

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService uploads product photos so the admin pages can reference a
// hosted URL instead of a local file.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService() (*CloudinaryService, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials not configured")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryService{cld: cld}, nil
}

func (s *CloudinaryService) ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > 10*1024*1024 {
		return errors.New("file too large (max 10MB)")
	}

	allowedExts := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExts[ext] {
		return errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
	}

	return nil
}

func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, filename string) (string, string, error) {
	timestamp := time.Now().Unix()
	publicID := fmt.Sprintf("products/%d_%s", timestamp, strings.ReplaceAll(filename, " ", "_"))
	publicID = strings.TrimSuffix(publicID, filepath.Ext(publicID))

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         "products",
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})

	if err != nil {
		return "", "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}

	return uploadResult.SecureURL, uploadResult.PublicID, nil
}
