// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render produces the HTML and SVG documents served to browsers and
// link-preview crawlers: the invitation card page, the Open Graph preview
// page and the preview image.
package render

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/MKhiriev/invite-cards/models"
)

const (
	defaultImageEvent = "You're Invited!"
	defaultCardTitle  = "Invitation"
	siteName          = "Invites"
	imageWidth        = 1200
	imageHeight       = 630
)

//go:embed templates/*
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*"))

type previewView struct {
	models.Preview
	SiteName    string
	ImageWidth  int
	ImageHeight int
	UpdatedTime string
}

type cardView struct {
	Card      Card
	Found     bool
	PageTitle string
	Preview   previewView
}

type imageView struct {
	Width    int
	Height   int
	Event    string
	Date     string
	Location string
}

// Preview writes the crawler page for p. A found preview carries the full
// Open Graph and Twitter tag set; other previews get the short form.
func Preview(w io.Writer, p models.Preview) error {
	return templates.ExecuteTemplate(w, "preview.html", newPreviewView(p))
}

// CardPage writes the recipient page of an invitation. fields are the
// reconciled fields; only visible ones are shown. When p.Found is false the
// page says the invitation does not exist.
func CardPage(w io.Writer, fields []models.Field, p models.Preview) error {
	view := cardView{
		Card:      BuildCard(fields),
		Found:     p.Found,
		PageTitle: defaultCardTitle,
		Preview:   newPreviewView(p),
	}
	if view.Card.Event != "" {
		view.PageTitle = "Invitation: " + view.Card.Event
	}

	return templates.ExecuteTemplate(w, "card.html", view)
}

// OGImage writes the 1200x630 SVG preview image.
func OGImage(w io.Writer, params models.OGImageParams) error {
	view := imageView{
		Width:    imageWidth,
		Height:   imageHeight,
		Event:    params.Event,
		Date:     params.Date,
		Location: params.Location,
	}
	if view.Event == "" {
		view.Event = defaultImageEvent
	}

	return templates.ExecuteTemplate(w, "og_image.svg", view)
}

func newPreviewView(p models.Preview) previewView {
	view := previewView{
		Preview:     p,
		SiteName:    siteName,
		ImageWidth:  imageWidth,
		ImageHeight: imageHeight,
	}
	if !p.UpdatedAt.IsZero() {
		view.UpdatedTime = p.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return view
}
