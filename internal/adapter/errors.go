// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrMalformedResponse is wrapped when a 2xx body cannot be decoded or
	// lacks a required field.
	ErrMalformedResponse = errors.New("malformed response")
)

// ErrorKind classifies where a request failed.
type ErrorKind string

const (
	// KindTimeout means the per-request deadline expired.
	KindTimeout ErrorKind = "timeout"
	// KindCanceled means the caller's context was canceled (e.g. interrupt).
	KindCanceled ErrorKind = "canceled"
	// KindConnection covers every other transport failure (refused, DNS, reset).
	KindConnection ErrorKind = "connection"
	// KindStatus means the server answered with a non-2xx status.
	KindStatus ErrorKind = "status"
	// KindDecode means a 2xx body could not be used.
	KindDecode ErrorKind = "decode"
)

// RequestError describes a failed API call.
type RequestError struct {
	// Op is the logical operation, e.g. "login" or "chat".
	Op string
	// Kind classifies the failure.
	Kind ErrorKind
	// StatusCode is set for KindStatus.
	StatusCode int
	// Body is the trimmed response body for KindStatus.
	Body string
	// Err is the underlying cause: a status sentinel, ErrMalformedResponse or
	// the transport error.
	Err error
}

func (e *RequestError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s: http %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Detail returns the part of the error meant for users: the server's
// "detail" message (or raw body) for status errors, the cause otherwise.
func (e *RequestError) Detail() string {
	if e.Kind != KindStatus {
		if e.Err == nil {
			return string(e.Kind)
		}
		return e.Err.Error()
	}

	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal([]byte(e.Body), &body); err == nil {
		if s, ok := body.Detail.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	if e.Body == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}
	return e.Body
}

// IsStatus reports whether err is a [*RequestError] of kind [KindStatus].
func IsStatus(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Kind == KindStatus
}

// Detail returns the user-facing detail of err: [RequestError.Detail] when
// err wraps a request error, err.Error() otherwise.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Detail()
	}
	return err.Error()
}
