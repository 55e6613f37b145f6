package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/invite-cards/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusTooManyRequests:
		if retry := resp.Header().Get("Retry-After"); retry != "" {
			msg += " (retry after " + retry + "s)"
		}
		return fmt.Errorf("%w: %s", ErrRateLimited, msg)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	default:
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// errorMessage extracts a readable message from a JSON error body, falling
// back to the raw body text.
func errorMessage(body []byte) string {
	var validation models.ValidationErrorResponse
	if err := json.Unmarshal(body, &validation); err == nil && validation.Field != "" {
		return fmt.Sprintf("%s: %s: %s", validation.Error, validation.Field, validation.Message)
	}

	var generic models.ErrorResponse
	if err := json.Unmarshal(body, &generic); err == nil && generic.Error != "" {
		if generic.Details != "" {
			return generic.Error + ": " + generic.Details
		}
		return generic.Error
	}

	return strings.TrimSpace(string(body))
}
