package http

import (
	"bytes"
	"errors"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/render"
	"github.com/MKhiriev/invite-cards/internal/service"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/MKhiriev/invite-cards/internal/utils"
	"github.com/MKhiriev/invite-cards/models"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeSVG  = "image/svg+xml"

	previewCacheControl = "s-maxage=3600, stale-while-revalidate"
	imageCacheControl   = "public, max-age=31536000, immutable"
)

var crawlerUserAgent = regexp.MustCompile(`(?i)facebookexternalhit|Twitterbot|LinkedInBot|WhatsApp|Slackbot|Discordbot|TelegramBot`)

func isCrawler(r *http.Request) bool {
	return crawlerUserAgent.MatchString(r.UserAgent())
}

// requestOrigin rebuilds the public origin the client used.
func requestOrigin(r *http.Request) string {
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}
	return scheme + "://" + r.Host
}

// ogPreview serves Open Graph markup to link-preview crawlers only; other
// clients get a plain 404 so the request falls through to the app.
func (h *Handler) ogPreview(w http.ResponseWriter, r *http.Request) {
	if !isCrawler(r) {
		http.NotFound(w, r)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		logger.FromRequest(r).Warn().Err(ErrMissingInvitationID).Str("func", "*Handler.ogPreview").Send()
		http.Error(w, "Invalid invitation URL", http.StatusBadRequest)
		return
	}

	h.writePreview(w, r, id)
}

func (h *Handler) writePreview(w http.ResponseWriter, r *http.Request, id string) {
	var preview models.Preview
	var err error
	if store.ValidRecordID(id) {
		preview, err = h.services.PreviewService.Preview(r.Context(), id, requestOrigin(r))
	} else {
		preview = service.NotFoundPreview(id, requestOrigin(r))
	}

	var buf bytes.Buffer
	if rerr := render.Preview(&buf, preview); rerr != nil {
		logger.FromRequest(r).Err(rerr).Str("func", "*Handler.writePreview").Msg("error rendering preview")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status, cacheControl := http.StatusNotFound, ""
	switch {
	case err != nil:
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writePreview").Str("id", id).Msg("serving generic preview")
	case preview.Found:
		status, cacheControl = http.StatusOK, previewCacheControl
	}

	utils.WriteBody(w, buf.Bytes(), contentTypeHTML, cacheControl, status)
}

func (h *Handler) ogImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := models.OGImageParams{
		Event:    q.Get("event"),
		Date:     q.Get("date"),
		Location: q.Get("location"),
	}

	var buf bytes.Buffer
	if err := render.OGImage(&buf, params); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.ogImage").Msg("error rendering image")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteBody(w, buf.Bytes(), contentTypeSVG, imageCacheControl, http.StatusOK)
}

// invitePage serves the preview markup to crawlers and the rendered card to
// everyone else.
func (h *Handler) invitePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if isCrawler(r) {
		h.writePreview(w, r, id)
		return
	}

	log := logger.FromRequest(r)
	origin := requestOrigin(r)

	var record models.InvitationRecord
	err := service.ErrInvitationNotFound
	if store.ValidRecordID(id) {
		record, err = h.services.InvitationService.Get(r.Context(), id)
	}

	preview := service.BuildPreview(id, origin, record)
	status := http.StatusOK
	if err != nil {
		preview = service.NotFoundPreview(id, origin)
		status = http.StatusNotFound
		if errors.Is(err, store.ErrStoreUnavailable) {
			status = http.StatusBadGateway
		}
		log.Warn().Err(err).Str("func", "*Handler.invitePage").Str("id", id).Int("status", status).Send()
	}

	var buf bytes.Buffer
	if rerr := render.CardPage(&buf, record.Fields, preview); rerr != nil {
		log.Err(rerr).Str("func", "*Handler.invitePage").Msg("error rendering card")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteBody(w, buf.Bytes(), contentTypeHTML, "", status)
}
