package store

import (
	"regexp"

	"github.com/MKhiriev/invite-cards/models"
)

const (
	invitesRoot  = "invites"
	settingsRoot = "settings"
)

// recordIDPattern accepts content hashes as well as the push-style keys of
// records written before content addressing.
var recordIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidRecordID reports whether id can address an invitation record.
func ValidRecordID(id string) bool {
	return recordIDPattern.MatchString(id)
}

func recordPath(id string) string {
	return invitesRoot + "/" + id
}

func settingPath(kind models.SettingKind) string {
	return settingsRoot + "/" + string(kind)
}
