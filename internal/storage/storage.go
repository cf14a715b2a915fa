package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/Ashupap/ShorelineVision-sub000/config"
	"github.com/google/uuid"
)

var (
	// ErrStorageUnavailable means the object storage backend is disabled,
	// misconfigured or unreachable.
	ErrStorageUnavailable = errors.New("object storage unavailable")
	// ErrObjectNotFound means the requested object does not exist.
	ErrObjectNotFound = errors.New("object not found")
)

const (
	// URLPrefix is the public route objects are served under.
	URLPrefix    = "/objects/"
	uploadPrefix = "uploads/"
	// Upload keys are never reused, so stored media can be cached forever.
	uploadCacheControl = "public, max-age=31536000, immutable"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	ContentType string
	Size        int64
}

// ObjectStorage defines common object operations across backends.
// Implementations report a missing object as ErrObjectNotFound.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	Bucket() string
}

// Storage wraps an ObjectStorage backend with the upload and retrieval
// operations used by the media flow. A Storage without a backend is valid
// and reports ErrStorageUnavailable for every call.
type Storage struct {
	backend     ObjectStorage
	publicPaths []string
}

// NewStorage constructs a Storage wrapper for the provided backend.
func NewStorage(backend ObjectStorage, publicPaths []string) *Storage {
	cleaned := make([]string, 0, len(publicPaths))
	for _, p := range publicPaths {
		if p = strings.Trim(p, "/ "); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return &Storage{backend: backend, publicPaths: cleaned}
}

// NewFromConfig builds the backend named by cfg.Backend and makes sure its
// bucket exists. An empty backend name returns a disabled Storage.
func NewFromConfig(ctx context.Context, cfg config.StorageConfig) (*Storage, error) {
	var (
		backend ObjectStorage
		err     error
	)
	switch cfg.Backend {
	case "":
		return NewStorage(nil, cfg.PublicPaths), nil
	case "minio":
		backend, err = NewMinioClient(cfg.Minio)
	case "gcs":
		backend, err = NewGCSClient(ctx, cfg.GCS)
	case "s3":
		backend, err = NewS3Client(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	if err := backend.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket %s: %w", backend.Bucket(), err)
	}
	return NewStorage(backend, cfg.PublicPaths), nil
}

// Available reports whether a backend is configured.
func (s *Storage) Available() bool {
	return s != nil && s.backend != nil
}

// Bucket returns the configured bucket name.
func (s *Storage) Bucket() string {
	if !s.Available() {
		return ""
	}
	return s.backend.Bucket()
}

// UploadBuffer stores data under a fresh uploads/ key and returns the URL
// it is served from.
func (s *Storage) UploadBuffer(ctx context.Context, data []byte, originalName, mimeType string) (string, error) {
	if !s.Available() {
		return "", ErrStorageUnavailable
	}
	key := uploadPrefix + uuid.NewString() + SafeExt(originalName)
	if err := s.backend.Put(ctx, key, bytes.NewReader(data), int64(len(data)), mimeType); err != nil {
		return "", unavailable(err)
	}
	return URLPrefix + key, nil
}

// DownloadObject streams the object stored under key into w.
func (s *Storage) DownloadObject(ctx context.Context, key string, w io.Writer) error {
	if !s.Available() {
		return ErrStorageUnavailable
	}
	reader, err := s.backend.Get(ctx, key)
	if err != nil {
		return unavailable(err)
	}
	defer reader.Close()

	if _, err := io.Copy(w, reader); err != nil {
		return fmt.Errorf("stream object %s: %w", key, err)
	}
	return nil
}

// SearchPublicObject resolves a request path to a stored object. Uploaded
// keys are matched directly; anything else is looked up under each public
// prefix in order.
func (s *Storage) SearchPublicObject(ctx context.Context, objectPath string) (ObjectInfo, error) {
	if !s.Available() {
		return ObjectInfo{}, ErrStorageUnavailable
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+objectPath), "/")
	if cleaned == "" {
		return ObjectInfo{}, ErrObjectNotFound
	}

	var candidates []string
	if strings.HasPrefix(cleaned, uploadPrefix) {
		candidates = append(candidates, cleaned)
	}
	for _, prefix := range s.publicPaths {
		candidates = append(candidates, prefix+"/"+cleaned)
	}

	for _, key := range candidates {
		info, err := s.backend.Stat(ctx, key)
		if err == nil {
			return info, nil
		}
		if !errors.Is(err, ErrObjectNotFound) {
			return ObjectInfo{}, unavailable(err)
		}
	}
	return ObjectInfo{}, ErrObjectNotFound
}

// DeleteURL removes the object a previous UploadBuffer call returned the
// URL for. URLs that do not point into object storage are ignored.
func (s *Storage) DeleteURL(ctx context.Context, url string) error {
	if !s.Available() || !strings.HasPrefix(url, URLPrefix) {
		return nil
	}
	if err := s.backend.Delete(ctx, strings.TrimPrefix(url, URLPrefix)); err != nil {
		return unavailable(err)
	}
	return nil
}

// SafeExt returns the lowercased extension of name when it is short and
// purely alphanumeric, and "" otherwise.
func SafeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// unavailable wraps backend failures so callers can tell a missing object
// from a broken backend.
func unavailable(err error) error {
	if errors.Is(err, ErrObjectNotFound) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
