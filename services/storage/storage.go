// File: services/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"io"

	"nafis/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// attachmentFolder is the Cloudinary folder holding booking attachments.
const attachmentFolder = "nafis/attachments"

// StorageService defines the interface for attachment storage operations.
type StorageService interface {
	UploadAttachment(ctx context.Context, file io.Reader, filename string, size int64) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, publicID string) error
}

// StorageServiceImpl implements StorageService using Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadAttachment uploads a client file to the attachment folder and returns
// the stored reference kept on the booking draft.
func (s *StorageServiceImpl) UploadAttachment(ctx context.Context, file io.Reader, filename string, size int64) (*models.Attachment, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: attachmentFolder,
	})
	if err != nil {
		return nil, fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return &models.Attachment{
		PublicID: result.PublicID,
		URL:      result.SecureURL,
		Name:     filename,
		Size:     size,
	}, nil
}

// DeleteAttachment deletes an uploaded file given its public ID.
func (s *StorageServiceImpl) DeleteAttachment(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}
