package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/MKhiriev/invite-cards/models"
)

const (
	PreviewTitle         = "You've got mail"
	PreviewNotFoundTitle = "Invitation Not Found"

	previewNotFoundDescription = "This invitation doesn't exist or may have been removed."
	previewGenericDescription  = "You received an invitation. Click to view details."
	previewDefaultEvent        = "an event"
	previewImagePath           = "/api/og-image"

	maxDescriptionLength = 160
)

type previewService struct {
	invitations InvitationService

	logger *logger.Logger
}

func NewPreviewService(invitations InvitationService, logger *logger.Logger) PreviewService {
	return &previewService{
		invitations: invitations,
		logger:      logger,
	}
}

func (p *previewService) Preview(ctx context.Context, id, origin string) (models.Preview, error) {
	record, err := p.invitations.Get(ctx, id)
	switch {
	case errors.Is(err, store.ErrStoreUnavailable):
		logger.FromContext(ctx).Err(err).Str("func", "previewService.Preview").Str("id", id).Msg("falling back to generic preview")
		return GenericPreview(id, origin), err
	case err != nil:
		return NotFoundPreview(id, origin), nil
	}

	return BuildPreview(id, origin, record), nil
}

// BuildPreview returns the preview of a found invitation.
func BuildPreview(id, origin string, record models.InvitationRecord) models.Preview {
	preview := basePreview(id, origin)

	fields := record.Fields
	event := models.VisibleValue(fields, models.FieldIDEvent)

	preview.Found = true
	preview.Title = PreviewTitle
	preview.Event = event
	preview.From = models.VisibleValue(fields, models.FieldIDFrom)
	preview.Description = Describe(fields)
	preview.UpdatedAt = record.CreatedAt
	preview.ImageURL = OGImageURL(origin, models.OGImageParams{
		Event:    event,
		Date:     models.VisibleValue(fields, models.FieldIDDate),
		Location: models.VisibleValue(fields, models.FieldIDLocation),
	})

	return preview
}

// NotFoundPreview returns the preview of an invitation that does not exist.
func NotFoundPreview(id, origin string) models.Preview {
	preview := basePreview(id, origin)
	preview.Title = PreviewNotFoundTitle
	preview.Description = previewNotFoundDescription
	return preview
}

// GenericPreview is served when the invitation could not be read at all.
// It links to the site root rather than the invitation.
func GenericPreview(id, origin string) models.Preview {
	preview := basePreview(id, origin)
	preview.Title = PreviewTitle
	preview.Description = previewGenericDescription
	preview.PageURL = strings.TrimRight(origin, "/") + "/"
	return preview
}

func basePreview(id, origin string) models.Preview {
	origin = strings.TrimRight(origin, "/")
	return models.Preview{
		ID:       id,
		PageURL:  origin + invitePathPrefix + id,
		ImageURL: origin + previewImagePath,
	}
}

// Describe builds the social-preview description of an invitation from its
// visible event, from, date, time and location fields. The result is cut to
// 160 characters.
func Describe(fields []models.Field) string {
	event := models.VisibleValue(fields, models.FieldIDEvent)
	if event == "" {
		event = previewDefaultEvent
	}

	var b strings.Builder
	b.WriteString("You received an invitation to ")
	b.WriteString(event)

	if from := models.VisibleValue(fields, models.FieldIDFrom); from != "" {
		b.WriteString(" from ")
		b.WriteString(from)
	}

	date := models.VisibleValue(fields, models.FieldIDDate)
	at := models.VisibleValue(fields, models.FieldIDTime)
	if date != "" || at != "" {
		when := make([]string, 0, 2)
		if date != "" {
			when = append(when, date)
		}
		if at != "" {
			when = append(when, "at "+at)
		}
		b.WriteString(" • ")
		b.WriteString(strings.Join(when, " "))
	}

	if location := models.VisibleValue(fields, models.FieldIDLocation); location != "" {
		b.WriteString(" • ")
		b.WriteString(location)
	}

	return truncate(b.String(), maxDescriptionLength)
}

// OGImageURL returns the preview image link for the given card values.
// Empty values are left out of the query.
func OGImageURL(origin string, params models.OGImageParams) string {
	q := url.Values{}
	if params.Event != "" {
		q.Set("event", params.Event)
	}
	if params.Date != "" {
		q.Set("date", params.Date)
	}
	if params.Location != "" {
		q.Set("location", params.Location)
	}

	u := strings.TrimRight(origin, "/") + previewImagePath
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
