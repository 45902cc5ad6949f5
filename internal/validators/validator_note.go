// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteValidator validates write requests against the notes collection.
//
// The empty-note rule (title or content must be non-blank) is deliberately
// absent: the collection accepts whatever a writer sends and the rule lives
// in the client edit session.
type NoteValidator struct{}

// NewNoteValidator returns a [Validator] for note requests.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate accepts models.CreateNoteRequest, models.NoteUpdate and a note id
// given as a string.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateNoteRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateNoteRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	case string:
		return v.validateID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateCreateRequest(_ context.Context, req models.CreateNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldColor, FieldCreatedAt}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = validateTitle(req.Title)
		case FieldContent:
			err = validateContent(req.Content)
		case FieldColor:
			err = validateColor(req.Color)
		case FieldCreatedAt:
			if req.CreatedAt <= 0 {
				err = ErrInvalidCreatedAt
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *NoteValidator) validateUpdate(_ context.Context, update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdateFields, FieldTitle, FieldContent, FieldColor}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUpdateFields:
			if update.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if update.Title != nil {
				err = validateTitle(*update.Title)
			}
		case FieldContent:
			if update.Content != nil {
				err = validateContent(*update.Content)
			}
		case FieldColor:
			if update.Color != nil {
				err = validateColor(*update.Color)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *NoteValidator) validateID(id string, fields ...string) error {
	for _, f := range fields {
		if f != FieldID {
			return ErrUnknownField
		}
	}

	if !utils.IsValidID(id) {
		return ErrInvalidNoteID
	}
	return nil
}

func validateTitle(title string) error {
	if !utf8.ValidString(title) {
		return ErrInvalidUTF8String
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateContent(content string) error {
	if !utf8.ValidString(content) {
		return ErrInvalidUTF8String
	}
	if len(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

func validateColor(c models.Color) error {
	if !c.IsValid() {
		return ErrInvalidColor
	}
	return nil
}
