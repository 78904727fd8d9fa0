package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type StorageConfig struct {
	ResumeDir string
	Retention time.Duration
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		dir := os.Getenv("RESUME_STORAGE_DIR")
		if dir == "" {
			dir = "./resume_storage"
		}
		retention := 24 * time.Hour
		if raw := os.Getenv("RESUME_RETENTION_HOURS"); raw != "" {
			if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
				retention = time.Duration(hours) * time.Hour
			}
		}
		storageConfig = &StorageConfig{
			ResumeDir: dir,
			Retention: retention,
		}
	})
	return storageConfig
}
