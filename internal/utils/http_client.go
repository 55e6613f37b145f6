package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own connection pool.
//
// baseURL is normalized with NormalizeBaseURL; an empty baseURL leaves the
// client without a base URL. A non-positive timeout leaves the resty default
// (no timeout) in place.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient("https://my-db.firebaseio.com", 10*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/invites/abc.json")
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	client := resty.New()

	if baseURL != "" {
		normalized, err := NormalizeBaseURL(baseURL)
		if err != nil {
			return nil, err
		}
		client.SetBaseURL(normalized)
	}

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}, nil
}

// NormalizeBaseURL trims whitespace and trailing slashes and adds an
// "http://" scheme when none is given. It fails when no host is present.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid address %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
