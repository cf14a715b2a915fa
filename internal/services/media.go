package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/Ashupap/ShorelineVision-sub000/internal/logger"
	"github.com/Ashupap/ShorelineVision-sub000/internal/storage"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/gabriel-vasile/mimetype"
)

// MaxUploadSize is the largest accepted media file.
const MaxUploadSize = 10 << 20

// MediaRepository defines persistence operations for media metadata.
type MediaRepository interface {
	Get(ctx context.Context, id int) (types.MediaFile, error)
	List(ctx context.Context, category string) ([]types.MediaFile, error)
	Create(ctx context.Context, media types.MediaFile, finalize func(types.MediaFile) error) (types.MediaFile, error)
	Update(ctx context.Context, id int, alt *string, category string) (types.MediaFile, error)
	Delete(ctx context.Context, id int) error
}

// ObjectUploader stores uploaded bytes in object storage.
type ObjectUploader interface {
	UploadBuffer(ctx context.Context, data []byte, originalName, mimeType string) (string, error)
	DeleteURL(ctx context.Context, url string) error
}

// LocalMediaStore is the local-disk fallback used when object storage is
// unavailable.
type LocalMediaStore interface {
	Stage(data []byte, originalName string) (storage.StagedFile, error)
	Promote(staged storage.StagedFile) error
	Discard(staged storage.StagedFile) error
}

// UploadRequest is a single validated-on-entry file upload.
type UploadRequest struct {
	OriginalName string
	MimeType     string
	Data         []byte
	Alt          *string
	Category     string
	UploadedBy   string
}

// MediaService implements the media upload flow and media management.
type MediaService struct {
	repo    MediaRepository
	objects ObjectUploader
	local   LocalMediaStore
}

func NewMediaService(repo MediaRepository, objects ObjectUploader, local LocalMediaStore) *MediaService {
	return &MediaService{repo: repo, objects: objects, local: local}
}

// ValidateUpload checks the size, declared type and sniffed content of an
// upload. It never touches storage.
func ValidateUpload(req UploadRequest) error {
	if len(req.Data) == 0 {
		return &UploadError{Reason: "file is empty"}
	}
	if len(req.Data) > MaxUploadSize {
		return &UploadError{Reason: "file exceeds the 10 MiB limit"}
	}
	if !strings.HasPrefix(strings.ToLower(req.MimeType), "image/") {
		return &UploadError{Reason: "only image files are allowed"}
	}
	detected := mimetype.Detect(req.Data)
	if !isImage(detected) {
		return &UploadError{Reason: "file content is not an image"}
	}
	// SVG can carry script and is served from the site's own origin.
	if strings.HasPrefix(strings.ToLower(req.MimeType), "image/svg") || detected.Is("image/svg+xml") {
		return &UploadError{Reason: "SVG images are not allowed"}
	}
	return nil
}

func isImage(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}
	return false
}

// Upload validates the file, stores its bytes and records the metadata.
// Object storage is tried first; when it is unavailable the bytes go to
// local disk instead. Either way the record only becomes visible once the
// bytes are in place.
func (s *MediaService) Upload(ctx context.Context, req UploadRequest) (types.MediaFile, error) {
	if err := ValidateUpload(req); err != nil {
		return types.MediaFile{}, err
	}

	media := types.MediaFile{
		OriginalName: path.Base(strings.ReplaceAll(req.OriginalName, `\`, "/")),
		MimeType:     req.MimeType,
		Size:         int64(len(req.Data)),
		Alt:          trimmedOrNil(req.Alt),
		Category:     strings.TrimSpace(req.Category),
		UploadedBy:   req.UploadedBy,
	}
	if media.Category == "" {
		media.Category = types.DefaultMediaCategory
	}
	if media.UploadedBy == "" {
		media.UploadedBy = types.SystemUserID
	}

	url, err := s.uploadObject(ctx, req)
	switch {
	case err == nil:
		media.URL = url
		media.Filename = path.Base(url)
		created, err := s.repo.Create(ctx, media, nil)
		if err != nil {
			if delErr := s.objects.DeleteURL(ctx, url); delErr != nil {
				logger.Log.Warnw("failed to remove orphaned object", "url", url, "error", delErr)
			}
			return types.MediaFile{}, fmt.Errorf("save media metadata: %w", err)
		}
		return created, nil
	case errors.Is(err, storage.ErrStorageUnavailable):
		logger.Log.Infow("object storage unavailable, storing upload on local disk", "error", err)
		return s.uploadLocal(ctx, media, req.Data)
	default:
		return types.MediaFile{}, err
	}
}

func (s *MediaService) uploadObject(ctx context.Context, req UploadRequest) (string, error) {
	if s.objects == nil {
		return "", storage.ErrStorageUnavailable
	}
	return s.objects.UploadBuffer(ctx, req.Data, req.OriginalName, req.MimeType)
}

func (s *MediaService) uploadLocal(ctx context.Context, media types.MediaFile, data []byte) (types.MediaFile, error) {
	staged, err := s.local.Stage(data, media.OriginalName)
	if err != nil {
		return types.MediaFile{}, fmt.Errorf("write local media: %w", err)
	}
	media.URL = staged.URL
	media.Filename = staged.Name

	created, err := s.repo.Create(ctx, media, func(types.MediaFile) error {
		return s.local.Promote(staged)
	})
	if err != nil {
		if discardErr := s.local.Discard(staged); discardErr != nil {
			logger.Log.Warnw("failed to discard staged media", "file", staged.Name, "error", discardErr)
		}
		return types.MediaFile{}, fmt.Errorf("save media metadata: %w", err)
	}
	return created, nil
}

func (s *MediaService) List(ctx context.Context, category string) ([]types.MediaFile, error) {
	return s.repo.List(ctx, strings.TrimSpace(category))
}

func (s *MediaService) Get(ctx context.Context, id int) (types.MediaFile, error) {
	return s.repo.Get(ctx, id)
}

// Update changes alt text and category. An empty category keeps the
// current one.
func (s *MediaService) Update(ctx context.Context, id int, alt *string, category string) (types.MediaFile, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return types.MediaFile{}, err
		}
		category = current.Category
	}
	return s.repo.Update(ctx, id, trimmedOrNil(alt), category)
}

// Delete removes the metadata record. Stored bytes are left in place.
func (s *MediaService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
