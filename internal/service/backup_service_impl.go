package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/evanmort/slate/internal/domain"
	"github.com/evanmort/slate/internal/storage"
)

// backupFilePattern names exported files after the export date.
const backupFilePattern = "academic_tracker_backup_%s.json"

type backupService struct {
	store Storage
}

func NewBackupService(store Storage) BackupService {
	return &backupService{store: store}
}

// Export writes the whole store as pretty-printed JSON into dir and returns
// the file path.
func (s *backupService) Export(dir string) (string, error) {
	data, err := storage.Encode(s.store.Load(), true)
	if err != nil {
		return "", fmt.Errorf("encoding backup: %w", err)
	}
	name := fmt.Sprintf(backupFilePattern, time.Now().Format(domain.DateFormat))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return path, nil
}

// Import merges a backup document into the current store. Imported profiles
// overwrite same-named existing ones, other existing profiles are kept, and
// the imported active profile wins when it exists in the merged set. A
// malformed document aborts before anything is touched.
func (s *backupService) Import(r io.Reader) (ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading backup file: %w", err)
	}
	imported, err := storage.Decode(data)
	if err != nil {
		return ImportResult{}, fmt.Errorf("import aborted: %w", err)
	}

	store := s.store.Load()
	for name, p := range imported.Profiles {
		store.Profiles[name] = p
	}
	if _, ok := store.Profiles[imported.ActiveProfile]; ok {
		store.ActiveProfile = imported.ActiveProfile
	}
	store.Repair()

	if err := s.store.Save(store); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Active: store.ActiveProfile, Profiles: len(store.Profiles)}
	for _, p := range store.Profiles {
		result.Tasks += len(p.Tasks)
	}
	return result, nil
}
