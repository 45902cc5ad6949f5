// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type noteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

// NewNoteValidationService returns a wrapper that rejects malformed writes
// with [ErrInvalidDataProvided] before they reach the wrapped service.
func NewNoteValidationService() NoteServiceWrapper {
	return &noteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *noteValidationService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, req)
}

func (v *noteValidationService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return v.inner.ListNotes(ctx)
}

func (v *noteValidationService) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) error {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateNote(ctx, id, update)
}

func (v *noteValidationService) DeleteNote(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteNote(ctx, id)
}

func (v *noteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}
