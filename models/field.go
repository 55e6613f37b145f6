// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldType is the semantic role of a Field on the invitation card.
// It decides where and how the field is rendered.
type FieldType string

const (
	// FieldTitle is the large heading at the top of the card.
	FieldTitle FieldType = "title"
	// FieldSubtitle is the smaller line directly below the title.
	FieldSubtitle FieldType = "subtitle"
	// FieldEvent is the highlighted event name.
	FieldEvent FieldType = "event"
	// FieldDetail is one labelled line of the details list (date, location, ...).
	FieldDetail FieldType = "detail"
	// FieldFooter is the free-form text at the bottom of the card.
	FieldFooter FieldType = "footer"
)

// FieldTypes lists every FieldType accepted by the application.
var FieldTypes = []FieldType{FieldTitle, FieldSubtitle, FieldEvent, FieldDetail, FieldFooter}

// Well-known field identifiers used by the built-in template, validation
// rules and the social preview.
const (
	FieldIDTitle     = "title"
	FieldIDSubtitle  = "subtitle"
	FieldIDEvent     = "event"
	FieldIDFrom      = "from"
	FieldIDLocation  = "location"
	FieldIDDate      = "date"
	FieldIDTime      = "time"
	FieldIDDressCode = "dresscode"
	FieldIDRSVP      = "rsvp"
	FieldIDFooter    = "footer"
)

// Field is one labelled piece of invitation content.
//
// ID is unique within a record. Visible controls whether the field is shown
// on the card and in previews. Locked fields cannot be hidden by the author;
// the flag is advisory and only enforced by clients.
type Field struct {
	ID          string    `json:"id" yaml:"id" validate:"required,max=64"`
	Type        FieldType `json:"type" yaml:"type" validate:"required,oneof=title subtitle event detail footer"`
	Value       string    `json:"value" yaml:"value"`
	Label       string    `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Visible     bool      `json:"visible" yaml:"visible"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Locked      bool      `json:"locked,omitempty" yaml:"locked,omitempty"`
}

// FindField returns a pointer to the field with the given id, or nil.
// The pointer aliases the slice element.
func FindField(fields []Field, id string) *Field {
	for i := range fields {
		if fields[i].ID == id {
			return &fields[i]
		}
	}
	return nil
}

// VisibleValue returns the value of the field with the given id when that
// field exists and is visible, and an empty string otherwise.
func VisibleValue(fields []Field, id string) string {
	f := FindField(fields, id)
	if f == nil || !f.Visible {
		return ""
	}
	return f.Value
}

// CloneFields returns a copy of fields that shares no backing array with the
// input.
func CloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
