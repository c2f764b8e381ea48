// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Authentication errors.
var (
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrLoginFailed        = errors.New("login failed")
)

// Session errors.
var (
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrSessionCreationFailed = errors.New("failed to create session")
)

// Conversation errors.
var (
	// ErrNoSession is recoverable: the caller creates a session and retries.
	ErrNoSession   = errors.New("no active session")
	ErrRelayFailed = errors.New("chat request failed")
	ErrClearFailed = errors.New("failed to clear history")
)
