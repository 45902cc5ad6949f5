// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the store-assigned note identifier.
	FieldID = "id"

	// FieldTitle targets the note title (length and encoding).
	FieldTitle = "title"

	// FieldContent targets the HTML content (length and encoding).
	FieldContent = "content"

	// FieldColor targets the palette color.
	FieldColor = "color"

	// FieldCreatedAt targets the creation stamp of a create request.
	FieldCreatedAt = "created_at"

	// FieldUpdateFields requires a partial update to carry at least one field.
	FieldUpdateFields = "update_fields"
)

const (
	// MaxTitleLength is the longest accepted title, in runes.
	MaxTitleLength = 1000

	// MaxContentLength is the longest accepted content, in bytes.
	MaxContentLength = 256 << 10
)
