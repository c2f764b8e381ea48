// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError returns nil for 2xx responses and a [*RequestError] of kind
// [KindStatus] otherwise.
func mapHTTPError(op string, resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	sentinel, ok := statusSentinels[code]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}

	return &RequestError{
		Op:         op,
		Kind:       KindStatus,
		StatusCode: code,
		Body:       strings.TrimSpace(string(resp.Body())),
		Err:        sentinel,
	}
}

// mapTransportError wraps an error returned by resty before any response was
// received.
func mapTransportError(op string, err error) error {
	return &RequestError{Op: op, Kind: transportKind(err), Err: err}
}

func transportKind(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	return KindConnection
}

func decodeError(op string, err error) error {
	return &RequestError{Op: op, Kind: KindDecode, Err: fmt.Errorf("%w: %w", ErrMalformedResponse, err)}
}

func missingFieldError(op, field string) error {
	return &RequestError{Op: op, Kind: KindDecode, Err: fmt.Errorf("%w: missing %s", ErrMalformedResponse, field)}
}
