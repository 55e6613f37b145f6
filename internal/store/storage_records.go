// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/models"
)

type recordStorage struct {
	docs   DocumentStore
	logger *logger.Logger
}

// NewRecordStorage returns a [RecordStorage] keeping records under
// "invites/{id}" of docs.
func NewRecordStorage(docs DocumentStore, log *logger.Logger) RecordStorage {
	return &recordStorage{docs: docs, logger: log}
}

func (r *recordStorage) GetRecord(ctx context.Context, id string) (*models.RawRecord, error) {
	if !ValidRecordID(id) {
		return nil, fmt.Errorf("%w: invalid id %q", ErrRecordNotFound, id)
	}

	body, err := r.docs.Get(ctx, recordPath(id))
	if err != nil {
		return nil, err
	}

	raw, err := models.DecodeRawRecord(body)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordStorage.GetRecord").
			Str("id", id).
			Msg("stored record cannot be decoded")
		return nil, fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	}
	if raw == nil {
		return nil, ErrRecordNotFound
	}

	return raw, nil
}

func (r *recordStorage) Exists(ctx context.Context, id string) (bool, error) {
	if !ValidRecordID(id) {
		return false, nil
	}

	body, err := r.docs.Get(ctx, recordPath(id))
	if err != nil {
		return false, err
	}

	// an undecodable document is reported as absent so a share replaces it
	raw, err := models.DecodeRawRecord(body)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "recordStorage.Exists").
			Str("id", id).
			Msg("stored record cannot be decoded, treating as absent")
		return false, nil
	}

	return raw != nil, nil
}

func (r *recordStorage) PutRecord(ctx context.Context, id string, record models.InvitationRecord) error {
	if !ValidRecordID(id) {
		return fmt.Errorf("invalid record id %q", id)
	}

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error encoding record: %w", err)
	}

	if _, err = r.docs.Put(ctx, recordPath(id), body); err != nil {
		return err
	}

	return nil
}
