// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-chat-cli/internal/config"
	"github.com/MKhiriev/go-chat-cli/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed to the application layer.
type ClientStorages struct {
	// Credentials is the JSON record holding tokens and the account email.
	Credentials CredentialStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. Nothing is read from disk here; the record is
// loaded lazily by the caller via [CredentialStore.Load].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("path", cfg.CredentialsPath).Msg("creating new storages...")

	credentials, err := NewFileCredentialStore(cfg.CredentialsPath, logger)
	if err != nil {
		return nil, fmt.Errorf("credential store: %w", err)
	}

	return &ClientStorages{
		Credentials: credentials,
	}, nil
}
