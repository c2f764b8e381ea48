// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the client services and the credential store
// into a single process lifecycle: authenticate, make sure a chat session
// exists, then relay user input until quit, end of input or interrupt.
package client
