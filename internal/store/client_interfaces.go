// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-chat-cli/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialStore persists the client state (user token, email, session
// token and session id) between runs.
type CredentialStore interface {
	// Load reads the saved state. A missing record yields an empty state and
	// no error. Any other failure yields an empty state and an error wrapping
	// [ErrLoadFailed].
	Load(ctx context.Context) (models.State, error)

	// Save replaces the saved record with state. The previous record is left
	// intact if the write fails. Errors wrap [ErrSaveFailed].
	Save(ctx context.Context, state models.State) error

	// Path returns the location of the record.
	Path() string
}
