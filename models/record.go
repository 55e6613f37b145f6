// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedRecord is returned by DecodeRawRecord when a stored document is
// neither null nor a JSON object.
var ErrMalformedRecord = errors.New("malformed invitation record")

// InvitationRecord is the current persisted shape of an invitation.
type InvitationRecord struct {
	Fields    []Field   `json:"fields"`
	CreatedAt time.Time `json:"createdAt"`
}

// LegacyValue is one entry of a pre-migration record. Old documents stored
// either a bare string or an object with value/label/placeholder; nil
// pointers mark properties that were not present.
type LegacyValue struct {
	Value       *string `json:"value,omitempty"`
	Label       *string `json:"label,omitempty"`
	Placeholder *string `json:"placeholder,omitempty"`
}

// UnmarshalJSON accepts a JSON string (stored as Value) or an object.
// Any other JSON kind decodes to an empty LegacyValue.
func (v *LegacyValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v.Value = &s
		return nil
	case '{':
		var obj struct {
			Value       *string `json:"value"`
			Label       *string `json:"label"`
			Placeholder *string `json:"placeholder"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			// a property of the wrong type is not worth failing the whole record
			return nil
		}
		v.Value, v.Label, v.Placeholder = obj.Value, obj.Label, obj.Placeholder
		return nil
	default:
		return nil
	}
}

// LegacyRecord is a pre-migration record: fixed field names (event, location,
// date, ...) mapped directly to their content.
type LegacyRecord map[string]LegacyValue

// RecordKind tags which schema generation a RawRecord holds.
type RecordKind int

const (
	// RecordCurrent marks a record that already has a fields array.
	RecordCurrent RecordKind = iota + 1
	// RecordLegacy marks a record in the old key-per-field shape.
	RecordLegacy
)

// String implements fmt.Stringer.
func (k RecordKind) String() string {
	switch k {
	case RecordCurrent:
		return "current"
	case RecordLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// RawRecord is a stored invitation as read from the record store, before
// reconciliation. Exactly one of Current or Legacy is set, as told by Kind.
type RawRecord struct {
	Kind    RecordKind
	Current *InvitationRecord
	Legacy  LegacyRecord
}

// DecodeRawRecord classifies and decodes a stored invitation document.
//
// It returns (nil, nil) for an absent document (empty body or JSON null),
// a RecordCurrent record when a "fields" array is present, and a RecordLegacy
// record for any other JSON object. Anything else yields ErrMalformedRecord.
func DecodeRawRecord(body []byte) (*RawRecord, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}
	if body[0] != '{' {
		return nil, ErrMalformedRecord
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	if rawFields, ok := top["fields"]; ok && isJSONArray(rawFields) {
		var current struct {
			Fields    []Field `json:"fields"`
			CreatedAt string  `json:"createdAt"`
		}
		if err := json.Unmarshal(body, &current); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}

		record := &InvitationRecord{Fields: current.Fields}
		if t, err := time.Parse(time.RFC3339Nano, current.CreatedAt); err == nil {
			record.CreatedAt = t
		}

		return &RawRecord{Kind: RecordCurrent, Current: record}, nil
	}

	legacy := make(LegacyRecord, len(top))
	for key, raw := range top {
		var v LegacyValue
		if err := v.UnmarshalJSON(raw); err != nil {
			continue
		}
		legacy[key] = v
	}

	return &RawRecord{Kind: RecordLegacy, Legacy: legacy}, nil
}

// UpgradeLegacy migrates a legacy record onto the given default template.
//
// For every legacy key that matches a template field id, the present
// value/label/placeholder properties replace the template ones, empty
// strings included. Type, visibility, lock and required flags stay as the
// template defines them.
// Template fields without a legacy counterpart are returned unchanged.
// The template slice is not modified.
func UpgradeLegacy(template []Field, legacy LegacyRecord) []Field {
	fields := CloneFields(template)
	for key, entry := range legacy {
		field := FindField(fields, key)
		if field == nil {
			continue
		}
		if entry.Value != nil {
			field.Value = *entry.Value
		}
		if entry.Label != nil {
			field.Label = *entry.Label
		}
		if entry.Placeholder != nil {
			field.Placeholder = *entry.Placeholder
		}
	}
	return fields
}

func isJSONArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
