// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-chat-cli/internal/adapter"
)

// ErrUserQuit is returned when the user leaves the credential prompt.
var ErrUserQuit = errors.New("user quit")

// HumanizeError returns the part of err worth showing at the terminal: the
// server's detail for rejected requests, a short explanation for transport
// failures.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	var reqErr *adapter.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}

	switch reqErr.Kind {
	case adapter.KindTimeout:
		return "request timed out"
	case adapter.KindConnection:
		return "server unavailable: " + reqErr.Detail()
	default:
		return reqErr.Detail()
	}
}
