package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// BackupPath returns the rotating backup location for a data file.
// The backup lives next to the primary with identical schema.
func BackupPath(path string) string {
	return path + ".bak"
}

// load reads the snapshot from the primary file, falling back to the backup
// when the primary is missing or corrupt. A false return means both
// attempts failed and the caller should start empty.
func load(path string) (Snapshot, bool) {
	data, err := readSnapshot(path)
	if err == nil {
		return data, true
	}
	if os.IsNotExist(err) {
		log.Info().Str("file", path).Msg("no existing data file, starting fresh")
		return nil, false
	}
	log.Warn().Err(err).Str("file", path).Msg("data file unreadable, trying backup")

	data, berr := readSnapshot(BackupPath(path))
	if berr == nil {
		log.Warn().Str("backup", BackupPath(path)).Msg("restored mercy data from backup")
		return data, true
	}
	log.Warn().Err(berr).Msg("backup unreadable, starting with empty data")
	return nil, false
}

func readSnapshot(path string) (Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data Snapshot
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if data == nil {
		data = Snapshot{}
	}
	return data, nil
}

// save serializes the whole snapshot to the primary file. The previous
// primary is copied to the backup path first; a backup failure is logged
// and does not block the write. Caller holds s.mu.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if prev, err := os.ReadFile(s.path); err == nil {
		if err := os.WriteFile(BackupPath(s.path), prev, 0o644); err != nil {
			log.Warn().Err(err).Msg("backup write failed")
		}
	} else if !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read previous data file for backup")
	}

	b, err := json.MarshalIndent(s.data, "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
