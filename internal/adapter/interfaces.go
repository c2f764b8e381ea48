// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// chat API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPServerAdapter]).
//
// Every failure is returned as a [*RequestError] that keeps the distinction
// between timeouts, connection failures, undecodable bodies and non-2xx
// responses. Status failures additionally wrap the sentinel values defined in
// errors.go so callers can use [errors.Is] (e.g. [ErrBadRequest] for 400,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the chat API. Implementations are
// stateless with respect to credentials: every authenticated call receives
// the bearer token it must present.
type ServerAdapter interface {
	// Register creates an account. POST /api/v1/auth/register with a JSON
	// body. The response must carry token.access_token.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login performs an OAuth2 password grant. POST /api/v1/auth/login with a
	// form body (username, password, grant_type=password). The response must
	// carry access_token.
	Login(ctx context.Context, creds models.LoginCredentials) (models.LoginResponse, error)

	// CreateSession opens a chat session for the user identified by
	// userToken. POST /api/v1/auth/session without a body. The response must
	// carry token.access_token and session_id.
	CreateSession(ctx context.Context, userToken string) (models.SessionResponse, error)

	// GetMessages fetches the session's conversation history.
	// GET /api/v1/chatbot/messages. A 2xx body without a messages field
	// yields an empty conversation.
	GetMessages(ctx context.Context, sessionToken string) (models.Conversation, error)

	// Chat posts the full conversation and returns the conversation echoed
	// back by the server, including the generated reply.
	// POST /api/v1/chatbot/chat.
	Chat(ctx context.Context, sessionToken string, messages models.Conversation) (models.Conversation, error)

	// ClearMessages deletes the session's conversation history.
	// DELETE /api/v1/chatbot/messages.
	ClearMessages(ctx context.Context, sessionToken string) error
}
