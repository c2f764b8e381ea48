// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [CredentialStore] implementations. Both are
// non-fatal: callers warn and continue with the in-memory state.
var (
	// ErrLoadFailed is returned when an existing credential record cannot be
	// read or decoded.
	ErrLoadFailed = errors.New("could not load credentials")

	// ErrSaveFailed is returned when the credential record cannot be written.
	ErrSaveFailed = errors.New("could not save credentials")
)
