package tui

import (
	"github.com/MKhiriev/invite-cards/internal/render"
	"github.com/MKhiriev/invite-cards/models"
	"github.com/charmbracelet/lipgloss"
)

const cardWidth = 52

// RenderCard draws the visible fields of an invitation as a bordered card.
func RenderCard(fields []models.Field) string {
	return renderCard(render.BuildCard(fields))
}

// RenderNotFound draws the card shown for an unknown invitation id.
func RenderNotFound(id string) string {
	return cardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Invitation Not Found"),
		"",
		footerStyle.Render("No invitation with id "+id+" exists."),
	))
}

func renderCard(card render.Card) string {
	var lines []string
	if card.Title != "" {
		lines = append(lines, titleStyle.Render(card.Title))
	}
	if card.Subtitle != "" {
		lines = append(lines, subtitleStyle.Render(card.Subtitle))
	}
	if card.Event != "" {
		lines = append(lines, "", eventStyle.Render(card.Event))
	}

	if len(card.Details) > 0 {
		lines = append(lines, "")
		for _, d := range card.Details {
			if d.Label == "" {
				lines = append(lines, d.Value)
				continue
			}
			lines = append(lines, labelStyle.Render(d.Label+":")+" "+d.Value)
		}
	}

	if card.Footer != "" {
		lines = append(lines, "", footerStyle.Render(card.Footer))
	}

	if len(lines) == 0 {
		lines = append(lines, helpStyle.Render("(empty invitation)"))
	}

	return cardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
