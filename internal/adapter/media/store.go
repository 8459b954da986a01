// Package media stores screenshot and crop images on the local filesystem.
// Files are addressed by paths relative to the store root; the relative
// path is what gets persisted alongside an occurrence.
package media

import (
	"fmt"
	"image"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	screenshotsDir = "screenshots"
	cropsDir       = "crops"

	jpegQuality = 80
)

// Store persists capture media under a root directory.
type Store struct {
	root string
}

// NewStore creates the store and its subdirectories.
func NewStore(root string) (*Store, error) {
	for _, dir := range []string{screenshotsDir, cropsDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create media dir %s: %w", dir, err)
		}
	}
	return &Store{root: root}, nil
}

// SaveScreenshot writes a full screenshot as JPEG and returns its relative path.
func (s *Store) SaveScreenshot(img image.Image) (string, error) {
	return s.save(screenshotsDir, img)
}

// SaveCrop writes a cropped region as JPEG and returns its relative path.
func (s *Store) SaveCrop(img image.Image) (string, error) {
	return s.save(cropsDir, img)
}

func (s *Store) save(dir string, img image.Image) (string, error) {
	rel := filepath.Join(dir, uuid.New().String()+".jpg")

	f, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close media file: %w", err)
	}

	return rel, nil
}

// Open returns the file for a stored relative path. The caller closes it.
func (s *Store) Open(rel string) (*os.File, error) {
	f, err := os.Open(filepath.Join(s.root, rel))
	if err != nil {
		return nil, fmt.Errorf("open media file %s: %w", rel, err)
	}
	return f, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *Store) Remove(rel string) error {
	err := os.Remove(filepath.Join(s.root, rel))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove media file %s: %w", rel, err)
	}
	return nil
}

// List returns the relative paths of every stored file.
func (s *Store) List() ([]string, error) {
	var paths []string
	for _, dir := range []string{screenshotsDir, cropsDir} {
		err := filepath.WalkDir(filepath.Join(s.root, dir), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(s.root, path)
			if err != nil {
				return err
			}
			paths = append(paths, rel)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk media dir %s: %w", dir, err)
		}
	}
	return paths, nil
}

// RemoveOrphans deletes stored files whose relative paths are not in
// referenced. Returns how many files were removed.
func (s *Store) RemoveOrphans(referenced map[string]struct{}) (int, error) {
	paths, err := s.List()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, rel := range paths {
		if _, ok := referenced[rel]; ok {
			continue
		}
		if err := s.Remove(rel); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
