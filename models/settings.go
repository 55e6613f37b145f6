package models

import (
	"encoding/json"
	"slices"
	"time"
)

// SettingKind names one document of the settings store.
type SettingKind string

const (
	// SettingDefaultTemplate holds the field template for new invitations.
	SettingDefaultTemplate SettingKind = "defaultTemplate"
	// SettingProtectedFields holds the ids of fields an author cannot hide.
	SettingProtectedFields SettingKind = "protectedFields"
	// SettingFieldDefinitions holds free-form field metadata managed by admins.
	SettingFieldDefinitions SettingKind = "fieldDefinitions"
)

// SettingKinds lists every kind that may be written through the admin API.
var SettingKinds = []SettingKind{SettingDefaultTemplate, SettingProtectedFields, SettingFieldDefinitions}

// Valid reports whether k is a known setting kind.
func (k SettingKind) Valid() bool {
	return slices.Contains(SettingKinds, k)
}

// DefaultTemplate is the stored shape of the defaultTemplate setting.
type DefaultTemplate struct {
	Fields []Field `json:"fields" yaml:"fields"`

	LastUpdatedBy string    `json:"lastUpdatedBy,omitempty" yaml:"-"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt,omitzero" yaml:"-"`
}

// Defaults is the resolved schema used to create and reconcile invitations.
type Defaults struct {
	Fields          []Field  `json:"fields"`
	ProtectedFields []string `json:"protectedFields"`
	// Fallback is true when the built-in template was used because the
	// settings store could not be read.
	Fallback bool `json:"fallback"`
}

// Settings is the whole settings subtree, used when seeding a store.
type Settings struct {
	DefaultTemplate  DefaultTemplate `json:"defaultTemplate" yaml:"defaultTemplate"`
	ProtectedFields  []string        `json:"protectedFields" yaml:"protectedFields"`
	FieldDefinitions json.RawMessage `json:"fieldDefinitions,omitempty" yaml:"-"`
}

// SettingUpdate is an admin request to replace one settings document.
type SettingUpdate struct {
	UpdateType   SettingKind     `json:"updateType"`
	TemplateData json.RawMessage `json:"templateData"`
}

// SettingUpdateResult is returned after a settings document was written.
type SettingUpdateResult struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	UpdatedBy string          `json:"updatedBy"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// FallbackTemplate returns a fresh copy of the built-in field template used
// when the settings store is unavailable.
func FallbackTemplate() []Field {
	return []Field{
		{ID: FieldIDTitle, Type: FieldTitle, Value: "You are Cordially Invited", Visible: true, Locked: true},
		{ID: FieldIDSubtitle, Type: FieldSubtitle, Value: "To attend", Visible: true, Locked: true},
		{ID: FieldIDEvent, Type: FieldEvent, Placeholder: "[Event Name]", Visible: true, Required: true, Locked: true},
		{ID: FieldIDFrom, Type: FieldDetail, Label: "From:", Placeholder: "[Your Name/Organization]"},
		{ID: FieldIDLocation, Type: FieldDetail, Label: "Location:", Placeholder: "[Venue/Address]", Visible: true},
		{ID: FieldIDDate, Type: FieldDetail, Label: "Date:", Placeholder: "[Day, Month Date, Year]", Visible: true},
		{ID: FieldIDTime, Type: FieldDetail, Label: "Time:", Placeholder: "[Start Time - End Time]", Visible: true},
		{ID: FieldIDDressCode, Type: FieldDetail, Label: "Dress Code:", Placeholder: "[Formal/Casual/etc]"},
		{ID: FieldIDRSVP, Type: FieldDetail, Label: "RSVP:", Placeholder: "[Contact Information]"},
		{ID: FieldIDFooter, Type: FieldFooter, Placeholder: "[Additional Information]", Visible: true, Locked: true},
	}
}

// FallbackProtectedFields returns a fresh copy of the built-in protected ids.
func FallbackProtectedFields() []string {
	return []string{FieldIDTitle, FieldIDSubtitle, FieldIDEvent, FieldIDFooter}
}

// ApplyProtection returns a copy of fields where every field listed in
// protected is locked. Fields already locked stay locked.
func ApplyProtection(fields []Field, protected []string) []Field {
	out := CloneFields(fields)
	for i := range out {
		out[i].Locked = out[i].Locked || slices.Contains(protected, out[i].ID)
	}
	return out
}
