// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the account part of the client state. UserToken is only
// ever used to create chat sessions.
type Credentials struct {
	UserToken string
	Email     string
}

// Session is the chat-session part of the client state. SessionToken
// authenticates every conversation request.
type Session struct {
	SessionToken string
	SessionID    string
}

// State is the explicit session context handed to every client operation.
// Empty strings mean "absent".
type State struct {
	Credentials
	Session
}

// IsAuthenticated reports whether a user token is held.
func (s *State) IsAuthenticated() bool {
	return s.UserToken != ""
}

// HasSession reports whether a session token is held.
func (s *State) HasSession() bool {
	return s.SessionToken != ""
}

// Merge copies every non-empty field of other into s. Fields that other does
// not carry are left as they are.
func (s *State) Merge(other State) {
	if other.UserToken != "" {
		s.UserToken = other.UserToken
	}
	if other.Email != "" {
		s.Email = other.Email
	}
	if other.SessionToken != "" {
		s.SessionToken = other.SessionToken
	}
	if other.SessionID != "" {
		s.SessionID = other.SessionID
	}
}

// ShortSessionID returns the first eight characters of the session id, the
// form shown to users.
func (s *State) ShortSessionID() string {
	if len(s.SessionID) <= 8 {
		return s.SessionID
	}
	return s.SessionID[:8]
}

// LoginCredentials is what the user types to register or log in.
type LoginCredentials struct {
	Email    string
	Password string
}
