package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/invite-cards/models"
	"gopkg.in/yaml.v3"
)

func isJSONFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// decodeFile reads path as JSON when it has a .json extension and as YAML
// otherwise.
func decodeFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if isJSONFile(path) {
		err = json.Unmarshal(data, dst)
	} else {
		err = yaml.Unmarshal(data, dst)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func readSettingsFile(path string) (models.Settings, error) {
	var settings models.Settings
	if err := decodeFile(path, &settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// readInviteFile accepts either a share request ({fields, origin}) or a bare
// list of fields.
func readInviteFile(path string) (models.ShareRequest, error) {
	var req models.ShareRequest
	if err := decodeFile(path, &req); err == nil && len(req.Fields) > 0 {
		return req, nil
	}

	var fields []models.Field
	if err := decodeFile(path, &fields); err != nil {
		return models.ShareRequest{}, err
	}
	return models.ShareRequest{Fields: fields}, nil
}

// readSettingData loads the payload of an admin update as JSON. YAML input
// is converted.
func readSettingData(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if isJSONFile(path) {
		if !json.Valid(data) {
			return nil, fmt.Errorf("decode %s: invalid JSON", path)
		}
		return data, nil
	}

	var v any
	if err = yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert %s to JSON: %w", path, err)
	}
	return out, nil
}
