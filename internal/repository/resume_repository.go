package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrResumeNotFound signals that no resume is stored under the requested
// file_id. Callers use it to prompt a re-upload instead of failing generically.
var ErrResumeNotFound = errors.New("resume data not found")

// ResumeRepository persists one JSON file per file_id. Concurrent writers
// under the same identifier are not serialized: last write wins, and no
// ordering guarantee is provided.
type ResumeRepository struct {
	dir string
}

func NewResumeRepository(dir string) (*ResumeRepository, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create resume storage directory: %w", err)
	}
	return &ResumeRepository{dir: dir}, nil
}

func (r *ResumeRepository) path(fileID string) (string, error) {
	if fileID == "" || fileID != filepath.Base(fileID) || strings.Contains(fileID, "..") {
		return "", fmt.Errorf("invalid file_id %q", fileID)
	}
	return filepath.Join(r.dir, fileID+".json"), nil
}

func (r *ResumeRepository) Put(fileID string, resume map[string]any) error {
	path, err := r.path(fileID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize resume for file_id %s: %w", fileID, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save resume for file_id %s: %w", fileID, err)
	}
	return nil
}

func (r *ResumeRepository) Get(fileID string) (map[string]any, error) {
	path, err := r.path(fileID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to load resume for file_id %s: %w", fileID, err)
	}
	var resume map[string]any
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("stored resume for file_id %s is corrupt: %w", fileID, err)
	}
	return resume, nil
}

// Sweep removes stored resumes whose last modification is older than maxAge.
// It is advisory housekeeping; callers schedule it, the store does not.
func (r *ResumeRepository) Sweep(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list resume storage: %w", err)
	}

	removed := 0
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(r.dir, entry.Name())
			if err := os.Remove(path); err != nil {
				log.Printf("Failed to remove stale resume %s: %v", path, err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}
