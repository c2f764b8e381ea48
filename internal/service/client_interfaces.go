// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-chat-cli/models"
)

// ClientAuthService defines the client-side contract for account registration
// and login. On success the user token and email are written into the given
// state; persisting it is up to the caller.
type ClientAuthService interface {
	// Register creates a new account on the server.
	// Returns ErrAlreadyRegistered when the server rejects the email with 400,
	// ErrRegistrationFailed for any other failure.
	Register(ctx context.Context, state *models.State, creds models.LoginCredentials) error

	// Login performs the password grant.
	// Returns ErrInvalidCredentials on 401, ErrLoginFailed for any other
	// failure.
	Login(ctx context.Context, state *models.State, creds models.LoginCredentials) error
}

// ClientSessionService defines the client-side contract for chat sessions.
type ClientSessionService interface {
	// CreateSession opens a new chat session with the state's user token and
	// stores the session token and id in state.
	// Returns ErrNotAuthenticated without any request when no user token is
	// held, ErrSessionCreationFailed for any server or transport failure.
	CreateSession(ctx context.Context, state *models.State) error

	// EnsureSession creates a session only when state holds none. created
	// reports whether a new session was made (and so must be persisted).
	EnsureSession(ctx context.Context, state *models.State) (created bool, err error)
}

// ClientChatService defines the client-side contract for conversation turns.
type ClientChatService interface {
	// SendTurn fetches the server-side history, appends text as a user
	// message, posts the whole conversation and returns the last assistant
	// reply. ok is false when the response holds no assistant message.
	// Returns ErrNoSession without any request when no session token is held,
	// ErrRelayFailed for server or transport failures.
	SendTurn(ctx context.Context, state *models.State, text string) (reply string, ok bool, err error)

	// ClearHistory deletes the session's conversation on the server.
	// Returns ErrNoSession without any request when no session token is held,
	// ErrClearFailed for server or transport failures.
	ClearHistory(ctx context.Context, state *models.State) error
}
