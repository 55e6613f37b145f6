package tui

import "github.com/MKhiriev/invite-cards/models"

type sharedMsg struct {
	result models.ShareResult
	err    error
}

type copiedMsg struct {
	err error
}
