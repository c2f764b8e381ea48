// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// interactive client.
//
// All Msg* constants are the human-readable lines printed to the terminal.
// Constants with a %s verb are format strings. Keeping them in one place
// ensures consistent wording across the startup flow and the chat loop.
package app

// Titles and banners.
const (
	// MsgTitle is shown centred in the header banner.
	MsgTitle = "LangGraph Chat CLI"

	// MsgLoginRequired introduces the credential prompt.
	MsgLoginRequired = "Login Required"

	// MsgReady is printed once authentication and the session are in place.
	MsgReady = "Ready to chat! Type 'quit' or 'exit' to end, 'clear' to clear history"

	// MsgThinking is printed while a chat turn is in flight.
	MsgThinking = "Thinking..."

	// MsgGoodbye ends every interactive run, including interrupts.
	MsgGoodbye = "Goodbye!"
)

// Success and info lines.
const (
	MsgRegistered     = "Registered successfully as %s"
	MsgLoggedIn       = "Logged in successfully as %s"
	MsgSessionCreated = "Session created: %s..."
	MsgHistoryCleared = "Chat history cleared"
	MsgSavedLogin     = "Using saved credentials for %s"
)

// Error lines.
const (
	// MsgAlreadyRegistered is shown when the server rejects a registration
	// with 400.
	MsgAlreadyRegistered = "Email already registered. Try logging in instead."

	// MsgInvalidCredentials is shown when the server rejects a login with 401.
	MsgInvalidCredentials = "Invalid email or password"

	MsgRegistrationFailed = "Registration failed: %s"
	MsgLoginFailed        = "Login failed: %s"

	// MsgNotAuthenticated is shown when a session is requested without a
	// user token.
	MsgNotAuthenticated = "Not authenticated. Please login or register first."

	MsgSessionFailed = "Failed to create session: %s"
	MsgChatFailed    = "Chat request failed: %s"
	MsgClearFailed   = "Failed to clear history: %s"

	// MsgNoSession is shown before a session is created mid-conversation.
	MsgNoSession = "No active session. Creating one..."

	MsgNoResponse = "Failed to get response"

	// MsgInputError reports an input line that was dropped; the loop
	// keeps reading.
	MsgInputError = "Error: %s"

	MsgAuthFailedExit    = "Authentication failed. Exiting."
	MsgSessionFailedExit = "Failed to create session. Exiting."
)

// Warning lines for non-fatal local persistence failures.
const (
	MsgLoadWarning = "Warning: Could not load config: %s"
	MsgSaveWarning = "Warning: Could not save config: %s"
)
