package utils

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/MKhiriev/invite-cards/models"
)

// maxContentHashLength caps the length of identifiers produced by ContentHash.
const maxContentHashLength = 9

// ContentHash computes a short, deterministic, lowercase base-36 identifier
// for the given string.
//
// The digest is the classic 32-bit rolling hash
//
//	h = int32(h*31 + c)
//
// iterated over the UTF-16 code units of s. The absolute value is rendered in
// base 36 and cut to at most 9 characters.
//
// ContentHash is not collision resistant: distinct inputs may share an
// identifier. It is used for content addressing, so equal input must always
// give equal output.
//
// Example usage:
//
//	id := utils.ContentHash("|Birthday Bash") // "k3ofol"
func ContentHash(s string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}

	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}

	id := strconv.FormatInt(abs, 36)
	if len(id) > maxContentHashLength {
		id = id[:maxContentHashLength]
	}

	return id
}

// FieldsDigest returns the canonical serialization of fields used for content
// addressing: "label|value" for every field in order, joined with "|".
//
// Only labels and values take part; ids, visibility and lock flags do not,
// so two field lists with the same (label, value) pairs in the same order
// produce the same digest.
func FieldsDigest(fields []models.Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Label+"|"+f.Value)
	}
	return strings.Join(parts, "|")
}

// InviteID returns the public identifier of an invitation with the given
// fields. It is ContentHash applied to FieldsDigest.
func InviteID(fields []models.Field) string {
	return ContentHash(FieldsDigest(fields))
}
