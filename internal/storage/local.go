package storage

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// LocalURLPrefix is the public route locally stored media is served under.
	LocalURLPrefix = "/uploads/media/"
	stagingSuffix  = ".staging"
)

// LocalStore writes uploads to <uploadDir>/media when object storage is
// unavailable. Bytes land under a hidden staging name first and only get
// their public name once Promote is called.
type LocalStore struct {
	dir string
	now func() time.Time
}

// StagedFile is a file written to the staging area but not yet published.
type StagedFile struct {
	Name        string
	URL         string
	stagingPath string
	finalPath   string
}

// NewLocalStore creates the media directory under uploadDir if needed.
func NewLocalStore(uploadDir string) (*LocalStore, error) {
	dir := filepath.Join(uploadDir, "media")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalStore{dir: dir, now: time.Now}, nil
}

// Dir returns the directory files are published into.
func (l *LocalStore) Dir() string {
	return l.dir
}

// Stage writes data under a generated name of the form
// <unixMillis>-<9 random digits><ext>.
func (l *LocalStore) Stage(data []byte, originalName string) (StagedFile, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	if err != nil {
		return StagedFile{}, err
	}
	name := fmt.Sprintf("%d-%09d%s", l.now().UnixMilli(), suffix.Int64(), SafeExt(originalName))

	staged := StagedFile{
		Name:        name,
		URL:         LocalURLPrefix + name,
		stagingPath: filepath.Join(l.dir, "."+name+stagingSuffix),
		finalPath:   filepath.Join(l.dir, name),
	}

	f, err := os.OpenFile(staged.stagingPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return StagedFile{}, fmt.Errorf("create staging file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(staged.stagingPath)
		return StagedFile{}, fmt.Errorf("write staging file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(staged.stagingPath)
		return StagedFile{}, fmt.Errorf("sync staging file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(staged.stagingPath)
		return StagedFile{}, err
	}
	return staged, nil
}

// Promote publishes a staged file under its final name.
func (l *LocalStore) Promote(staged StagedFile) error {
	if _, err := os.Stat(staged.finalPath); err == nil {
		return fmt.Errorf("media file %s already exists", staged.Name)
	}
	return os.Rename(staged.stagingPath, staged.finalPath)
}

// Discard removes a file whose record was never committed, whether or not
// it was already promoted. Promote never overwrites, so the final path can
// only belong to this upload.
func (l *LocalStore) Discard(staged StagedFile) error {
	for _, p := range []string{staged.stagingPath, staged.finalPath} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// SweepStaging removes staging files older than maxAge, left behind by a
// crash between Stage and Promote.
func (l *LocalStore) SweepStaging(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return 0, err
	}
	cutoff := l.now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, ".") || !strings.HasSuffix(name, stagingSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(l.dir, name)); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
