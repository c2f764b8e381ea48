// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is the on-disk form of [State]. All four keys are always written;
// absent values are encoded as JSON null so files stay compatible with
// records written by earlier versions of the client.
type Record struct {
	UserToken    *string `json:"user_token"`
	SessionToken *string `json:"session_token"`
	SessionID    *string `json:"session_id"`
	Email        *string `json:"email"`
}

// NewRecord converts a state into its persisted form.
func NewRecord(s State) Record {
	return Record{
		UserToken:    nullable(s.UserToken),
		SessionToken: nullable(s.SessionToken),
		SessionID:    nullable(s.SessionID),
		Email:        nullable(s.Email),
	}
}

// State converts the record back into a client state. Null keys become
// absent fields.
func (r Record) State() State {
	return State{
		Credentials: Credentials{
			UserToken: deref(r.UserToken),
			Email:     deref(r.Email),
		},
		Session: Session{
			SessionToken: deref(r.SessionToken),
			SessionID:    deref(r.SessionID),
		},
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
