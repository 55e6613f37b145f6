// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	validatorengine "github.com/go-playground/validator/v10"

	"github.com/MKhiriev/invite-cards/models"
)

// Rule groups accepted by InvitationValidator.Validate.
const (
	// RulesStructure checks ids, types and id uniqueness.
	RulesStructure = "structure"
	// RulesContent checks value lengths and required values.
	RulesContent = "content"
)

const (
	fieldsKey           = "fields"
	defaultDetailMaxLen = 200
	shortTextMaxLen     = 100
	footerMaxLen        = 300
	locationMaxLen      = 200
	msgNoFields         = "At least one field is required"
	msgEventRequired    = "Event name is required and must be less than 100 characters"
	msgDuplicateID      = "Field id must be unique"
	msgTitleLength      = "Title must be between 1 and 100 characters"
	msgSubtitleLength   = "Subtitle must be between 1 and 100 characters"
	msgFromLength       = "From field must be less than 100 characters"
	msgLocationLength   = "Location must be less than 200 characters"
	msgDateLength       = "Date must be less than 100 characters"
	msgTimeLength       = "Time must be less than 100 characters"
	msgFooterLength     = "Footer must be less than 300 characters"
)

// contentRule limits the value of one well-known field id.
type contentRule struct {
	min     int
	max     int
	message string
	// onlyVisible skips the rule for hidden fields.
	onlyVisible bool
	trim        bool
}

var contentRules = map[string]contentRule{
	models.FieldIDTitle:    {min: 1, max: shortTextMaxLen, message: msgTitleLength, onlyVisible: true},
	models.FieldIDSubtitle: {min: 1, max: shortTextMaxLen, message: msgSubtitleLength, onlyVisible: true},
	models.FieldIDEvent:    {min: 1, max: shortTextMaxLen, message: msgEventRequired, trim: true},
	models.FieldIDFrom:     {max: shortTextMaxLen, message: msgFromLength},
	models.FieldIDLocation: {max: locationMaxLen, message: msgLocationLength},
	models.FieldIDDate:     {max: shortTextMaxLen, message: msgDateLength},
	models.FieldIDTime:     {max: shortTextMaxLen, message: msgTimeLength},
	models.FieldIDFooter:   {max: footerMaxLen, message: msgFooterLength},
}

// InvitationValidator validates the field list of an invitation.
type InvitationValidator struct {
	engine *validatorengine.Validate
}

// NewInvitationValidator constructs an InvitationValidator. Struct tags of
// models.Field are checked by go-playground/validator; error field names
// follow the json tags.
func NewInvitationValidator() Validator {
	engine := validatorengine.New()
	engine.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &InvitationValidator{engine: engine}
}

// Validate accepts []models.Field, models.ShareRequest and pointers to
// both. rules restricts validation to RulesStructure and/or RulesContent;
// both groups run when none is given.
func (v *InvitationValidator) Validate(ctx context.Context, obj any, rules ...string) error {
	switch value := obj.(type) {
	case []models.Field:
		return v.validateFields(ctx, value, rules...)
	case *[]models.Field:
		return v.validateFields(ctx, *value, rules...)
	case models.ShareRequest:
		return v.validateFields(ctx, value.Fields, rules...)
	case *models.ShareRequest:
		return v.validateFields(ctx, value.Fields, rules...)
	default:
		return ErrUnsupportedType
	}
}

func (v *InvitationValidator) validateFields(_ context.Context, fields []models.Field, rules ...string) error {
	if len(rules) == 0 {
		rules = []string{RulesStructure, RulesContent}
	}

	var structure, content bool
	for _, r := range rules {
		switch r {
		case RulesStructure:
			structure = true
		case RulesContent:
			content = true
		default:
			return fmt.Errorf("%w: %q", ErrUnknownRule, r)
		}
	}

	if len(fields) == 0 {
		return fieldError(fieldsKey, msgNoFields)
	}

	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if structure {
			if err := v.validateStructure(i, f); err != nil {
				return err
			}
			if _, dup := seen[f.ID]; dup {
				return fieldError(f.ID, msgDuplicateID)
			}
			seen[f.ID] = struct{}{}
		}
		if content {
			if err := validateContent(f); err != nil {
				return err
			}
		}
	}

	if content && models.FindField(fields, models.FieldIDEvent) == nil {
		return fieldError(models.FieldIDEvent, msgEventRequired)
	}

	return nil
}

func (v *InvitationValidator) validateStructure(index int, f models.Field) error {
	err := v.engine.Struct(f)
	if err == nil {
		return nil
	}

	name := f.ID
	if name == "" {
		name = fmt.Sprintf("%s[%d]", fieldsKey, index)
	}

	var verrs validatorengine.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fieldError(name, structureMessage(first))
	}

	return fieldError(name, err.Error())
}

func structureMessage(e validatorengine.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", e.Field())
	case "oneof":
		return fmt.Sprintf("Field %s must be one of: %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("Field %s must be at most %s characters", e.Field(), e.Param())
	default:
		return fmt.Sprintf("Field %s is invalid (%s)", e.Field(), e.Tag())
	}
}

func validateContent(f models.Field) error {
	value := f.Value

	rule, known := contentRules[f.ID]
	if !known {
		rule = contentRule{max: defaultDetailMaxLen, message: detailMessage(f)}
	}

	if rule.onlyVisible && !f.Visible {
		return requiredCheck(f, value)
	}
	if rule.trim {
		value = strings.TrimSpace(value)
	}

	n := utf8.RuneCountInString(value)
	if n < rule.min || n > rule.max {
		return fieldError(f.ID, rule.message)
	}

	return requiredCheck(f, value)
}

func requiredCheck(f models.Field, value string) error {
	if f.Required && strings.TrimSpace(value) == "" {
		return fieldError(f.ID, fmt.Sprintf("%s is required", displayName(f)))
	}
	return nil
}

func detailMessage(f models.Field) string {
	return fmt.Sprintf("%s must be less than %d characters", displayName(f), defaultDetailMaxLen)
}

// displayName prefers the field label without its trailing colon.
func displayName(f models.Field) string {
	if label := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(f.Label), ":")); label != "" {
		return label
	}
	return f.ID
}
