package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/delipedidos/api/internal/config"
	"github.com/delipedidos/api/internal/storage"
)

var allowedUploadEntities = map[string]struct{}{
	"product": {},
	"promo":   {},
	"branch":  {},
	"site":    {},
}

var extensionByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadService validates image uploads and signs storage URLs. File bytes go
// from the admin's browser straight to storage; the API only signs.
type UploadService struct {
	cfg     *config.Config
	storage *storage.Client
}

// NewUploadService creates the upload service.
func NewUploadService(cfg *config.Config, storageClient *storage.Client) *UploadService {
	return &UploadService{cfg: cfg, storage: storageClient}
}

// SignUploadInput describes the file the back-office wants to upload.
type SignUploadInput struct {
	Entity      string
	EntityID    uint
	ContentType string
	Size        int64
}

// SignUpload validates the declared file and returns a one-time upload grant
// plus the storage path the client must use.
func (s *UploadService) SignUpload(ctx context.Context, input SignUploadInput) (*storage.SignedUpload, error) {
	entity := strings.ToLower(strings.TrimSpace(input.Entity))
	if _, ok := allowedUploadEntities[entity]; !ok {
		return nil, NewValidationError("entity")
	}
	if input.EntityID == 0 {
		return nil, NewValidationError("entity_id")
	}
	if input.Size <= 0 || (s.cfg.Upload.MaxSize > 0 && input.Size > s.cfg.Upload.MaxSize) {
		return nil, ErrFileTooLarge
	}

	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	ext, err := s.resolveExtension(contentType)
	if err != nil {
		return nil, err
	}

	objectPath := fmt.Sprintf("delicatessen/%s/%d/%d%s", entity, input.EntityID, time.Now().UnixMilli(), ext)
	return s.storage.CreateSignedUploadURL(ctx, objectPath)
}

// SignRead returns a time-limited download URL for a stored object.
func (s *UploadService) SignRead(ctx context.Context, objectPath string) (string, error) {
	objectPath = strings.TrimSpace(objectPath)
	if objectPath == "" || strings.Contains(objectPath, "..") {
		return "", NewValidationError("path")
	}
	ttl := time.Hour
	if s.cfg.Upload.ReadTTLSecs > 0 {
		ttl = time.Duration(s.cfg.Upload.ReadTTLSecs) * time.Second
	}
	return s.storage.CreateSignedReadURL(ctx, objectPath, ttl)
}

func (s *UploadService) resolveExtension(contentType string) (string, error) {
	allowed := false
	for _, t := range s.cfg.Upload.AllowedTypes {
		if strings.EqualFold(contentType, t) {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", ErrFileTypeNotAllowed
	}
	if ext, ok := extensionByContentType[contentType]; ok {
		return ext, nil
	}
	// Allowed by config but not in the table: derive from the subtype.
	if i := strings.IndexByte(contentType, '/'); i >= 0 && i+1 < len(contentType) {
		return "." + path.Base(contentType[i+1:]), nil
	}
	return "", ErrFileTypeNotAllowed
}
