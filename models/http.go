// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the JSON body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccessToken is the bearer token object nested in register and session
// responses.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// RegisterResponse is the body returned by a successful registration. Only
// Token.AccessToken is used by the client.
type RegisterResponse struct {
	ID    any         `json:"id,omitempty"`
	Email string      `json:"email,omitempty"`
	Token AccessToken `json:"token"`
}

// LoginResponse is the OAuth2 password-grant response of
// POST /api/v1/auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// SessionResponse is the body of POST /api/v1/auth/session.
type SessionResponse struct {
	SessionID string      `json:"session_id"`
	Name      string      `json:"name,omitempty"`
	Token     AccessToken `json:"token"`
}

// ChatRequest is the JSON body of POST /api/v1/chatbot/chat. It always
// carries the full conversation, never a delta.
type ChatRequest struct {
	Messages Conversation `json:"messages"`
}

// ChatResponse is the body of both POST /api/v1/chatbot/chat and
// GET /api/v1/chatbot/messages.
type ChatResponse struct {
	Messages Conversation `json:"messages"`
}
