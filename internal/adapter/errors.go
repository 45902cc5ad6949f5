// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrGatewayTimeout      = errors.New("server timed out")

	// ErrRequestTimeout is returned when a request did not complete within
	// the configured timeout or the caller's deadline.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrServerUnavailable is returned when the server cannot be reached.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrSubscriptionClosed is returned by Subscription.Err when the server
	// ended the stream.
	ErrSubscriptionClosed = errors.New("subscription closed by server")

	// ErrMalformedSnapshot is returned by Subscription.Err when a frame could
	// not be parsed as a snapshot at all.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	ErrInvalidAddress = errors.New("invalid server address")
)
