// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role identifies the author of a conversation message.
type Role string

const (
	// RoleUser marks messages typed by the person at the terminal.
	RoleUser Role = "user"
	// RoleAssistant marks messages produced by the chat backend.
	RoleAssistant Role = "assistant"
)

// Message is a single conversation entry. Messages are never mutated once
// appended to a conversation; roles other than user and assistant are passed
// through untouched when history is re-posted.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewUserMessage returns a user-authored message with the given content.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Conversation is an ordered list of messages as returned by the server.
// The server owns the canonical copy; the client only ever holds a snapshot.
type Conversation []Message

// LastAssistantReply returns the content of the last assistant message in the
// conversation. ok is false when the conversation has no assistant messages.
func (c Conversation) LastAssistantReply() (reply string, ok bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Role == RoleAssistant {
			return c[i].Content, true
		}
	}
	return "", false
}

// WithUserTurn returns a copy of the conversation with a new user message
// appended. The receiver is left unchanged.
func (c Conversation) WithUserTurn(content string) Conversation {
	out := make(Conversation, 0, len(c)+1)
	out = append(out, c...)
	return append(out, NewUserMessage(content))
}
