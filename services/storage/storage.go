package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const profileFolder = "qserve/profiles"

// StorageService handles media uploads for user profiles.
type StorageService interface {
	// UploadProfileImage uploads the image stream and returns its public URL.
	// The file is keyed by user so re-uploads replace the previous image.
	UploadProfileImage(ctx context.Context, file io.Reader, userID string) (string, error)
	// DeleteFile removes an uploaded asset by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}

// CloudinaryStorage is the Cloudinary-backed implementation.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates a storage service from Cloudinary credentials.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("storage: cloudinary credentials not configured")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) UploadProfileImage(ctx context.Context, file io.Reader, userID string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:    profileFolder,
		PublicID:  userID,
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload profile image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no URL returned for upload")
	}
	return result.SecureURL, nil
}

func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}
