// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-chat-cli/internal/logger"
	"github.com/MKhiriev/go-chat-cli/models"
)

const (
	credentialsFileMode = 0o600
	credentialsDirMode  = 0o700
)

type fileCredentialStore struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileCredentialStore returns a [CredentialStore] backed by a pretty-printed
// JSON file at path. The file is not touched until Load or Save is called.
func NewFileCredentialStore(path string, logger *logger.Logger) (CredentialStore, error) {
	if path == "" {
		return nil, errors.New("empty credentials path")
	}

	return &fileCredentialStore{path: path, logger: logger}, nil
}

func (s *fileCredentialStore) Path() string {
	return s.path
}

func (s *fileCredentialStore) Load(ctx context.Context) (models.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Str("path", s.path).Msg("no saved credentials")
			return models.State{}, nil
		}
		return models.State{}, fmt.Errorf("%w: read %s: %w", ErrLoadFailed, s.path, err)
	}

	var record models.Record
	if err = json.Unmarshal(data, &record); err != nil {
		return models.State{}, fmt.Errorf("%w: decode %s: %w", ErrLoadFailed, s.path, err)
	}

	s.logger.Debug().Str("path", s.path).Msg("credentials loaded")
	return record.State(), nil
}

// Save writes the record to a temporary file in the same directory, syncs it
// and renames it over the previous record.
func (s *fileCredentialStore) Save(ctx context.Context, state models.State) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.MarshalIndent(models.NewRecord(state), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrSaveFailed, err)
	}

	if err = writeFileAtomic(s.path, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	s.logger.Debug().Str("path", s.path).Msg("credentials saved")
	return nil
}

func writeFileAtomic(path string, payload []byte) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, credentialsDirMode); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = tmp.Chmod(credentialsFileMode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err = tmp.Write(payload); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}
