// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID     = errors.New("invalid note id")
	ErrInvalidColor      = errors.New("color is not in the palette")
	ErrInvalidCreatedAt  = errors.New("createdAt must be a positive epoch milliseconds value")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrContentTooLong    = errors.New("content is too long")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrInvalidUTF8String = errors.New("text is not valid UTF-8")
)
