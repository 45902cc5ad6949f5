// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The original error stays in the chain so its message reaches the UI.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrPayloadTooLarge):
		return fmt.Errorf("%w: %w", ErrNoteRejected, err)
	case errors.Is(err, adapter.ErrRequestTimeout),
		errors.Is(err, adapter.ErrGatewayTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrWriteTimedOut, err)
	case errors.Is(err, adapter.ErrServerUnavailable),
		errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	case errors.Is(err, adapter.ErrSubscriptionClosed),
		errors.Is(err, adapter.ErrMalformedSnapshot):
		return fmt.Errorf("%w: %w", ErrSubscriptionClosed, err)
	}

	return err
}
