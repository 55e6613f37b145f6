package render

import (
	"strings"

	"github.com/MKhiriev/invite-cards/models"
)

// Card is the display layout of an invitation.
type Card struct {
	Title    string
	Subtitle string
	Event    string
	Details  []Detail
	Footer   string
}

// Detail is one line of the card's details list.
type Detail struct {
	ID    string
	Label string
	Value string
}

// BuildCard lays out the visible fields of an invitation. Title, subtitle,
// event and footer take the first visible field of their type; details keep
// field order and skip empty values. Labels lose their trailing colon.
func BuildCard(fields []models.Field) Card {
	var card Card
	for _, f := range fields {
		if !f.Visible {
			continue
		}

		switch f.Type {
		case models.FieldTitle:
			setOnce(&card.Title, f.Value)
		case models.FieldSubtitle:
			setOnce(&card.Subtitle, f.Value)
		case models.FieldEvent:
			setOnce(&card.Event, f.Value)
		case models.FieldFooter:
			setOnce(&card.Footer, f.Value)
		case models.FieldDetail:
			if strings.TrimSpace(f.Value) == "" {
				continue
			}
			card.Details = append(card.Details, Detail{
				ID:    f.ID,
				Label: strings.TrimSuffix(strings.TrimSpace(f.Label), ":"),
				Value: f.Value,
			})
		}
	}
	return card
}

func setOnce(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
