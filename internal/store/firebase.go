// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/utils"
	"github.com/go-resty/resty/v2"
)

var nullDocument = []byte("null")

// firebaseDocumentStore talks to a realtime JSON database over its REST
// dialect: GET and PUT on "/{path}.json", with a literal null for absent keys.
type firebaseDocumentStore struct {
	client    *utils.HTTPClient
	authToken string
	logger    *logger.Logger
}

// NewFirebaseDocumentStore constructs a [DocumentStore] for the database
// rooted at cfg.URL. cfg.AuthToken, when set, is sent as the "auth" query
// parameter on every call.
func NewFirebaseDocumentStore(cfg config.Firebase, log *logger.Logger) (DocumentStore, error) {
	client, err := utils.NewHTTPClient(cfg.URL, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid firebase url: %w", err)
	}
	client.SetHeader("Accept", "application/json")

	return &firebaseDocumentStore{
		client:    client,
		authToken: cfg.AuthToken,
		logger:    log,
	}, nil
}

func (f *firebaseDocumentStore) Get(ctx context.Context, path string) ([]byte, error) {
	log := logger.FromContext(ctx)

	resp, err := f.request(ctx).Get(documentURL(path))
	if err != nil {
		log.Err(err).Str("func", "firebaseDocumentStore.Get").Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%w: get %s: %w", ErrStoreUnavailable, path, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "firebaseDocumentStore.Get").Str("path", path).
			Int("status", resp.StatusCode()).Msg("unexpected status")
		return nil, fmt.Errorf("%w: get %s: http %d", ErrStoreUnavailable, path, resp.StatusCode())
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, nullDocument) {
		return nil, nil
	}

	return body, nil
}

func (f *firebaseDocumentStore) Put(ctx context.Context, path string, body []byte) ([]byte, error) {
	log := logger.FromContext(ctx)

	resp, err := f.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(documentURL(path))
	if err != nil {
		log.Err(err).Str("func", "firebaseDocumentStore.Put").Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%w: put %s: %w", ErrStoreUnavailable, path, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "firebaseDocumentStore.Put").Str("path", path).
			Int("status", resp.StatusCode()).Msg("unexpected status")
		return nil, fmt.Errorf("%w: put %s: http %d", ErrStoreUnavailable, path, resp.StatusCode())
	}

	return bytes.TrimSpace(resp.Body()), nil
}

func (f *firebaseDocumentStore) Close() error {
	f.client.GetClient().CloseIdleConnections()
	return nil
}

func (f *firebaseDocumentStore) request(ctx context.Context) *resty.Request {
	req := f.client.R().SetContext(ctx)
	if f.authToken != "" {
		req.SetQueryParam("auth", f.authToken)
	}
	return req
}

func documentURL(path string) string {
	return "/" + strings.Trim(path, "/") + ".json"
}
