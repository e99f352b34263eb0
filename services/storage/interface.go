package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Folders used for salon media uploads.
const (
	FolderGallery = "salons/gallery"
	FolderLogos   = "salons/logos"
	FolderAvatars = "users/avatars"
)

// StorageService manages salon gallery and profile media.
type StorageService interface {
	UploadImage(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
	GetImageURL(publicID string) (string, error)
	GetSecureImageURL(publicID string, expires time.Duration) (string, error)
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// NewStorageService creates a Cloudinary-backed storage service.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName, apiSecret string) StorageService {
	return &CloudinaryStorageService{
		cld:       cld,
		cloudName: cloudName,
		apiSecret: apiSecret,
	}
}
