// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-cli/internal/adapter"
)

// mapRegisterError translates an adapter error from the register call into a
// service business error. The adapter error stays in the chain.
func mapRegisterError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return wrap(ErrAlreadyRegistered, err)
	default:
		return wrap(ErrRegistrationFailed, err)
	}
}

// mapLoginError translates an adapter error from the login call.
func mapLoginError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return wrap(ErrInvalidCredentials, err)
	default:
		return wrap(ErrLoginFailed, err)
	}
}

func wrap(sentinel, err error) error {
	if err == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
