package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ThomasBonnelye/invader-comparator/core/utils"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Gallery is one player's collection as reported by the remote API.
type Gallery struct {
	UID      string   `json:"uid"`
	Name     string   `json:"name"`
	Points   int      `json:"points"`
	Invaders []string `json:"invaders"`
}

// Source provides player galleries keyed by an opaque UID.
type Source interface {
	FetchGallery(ctx context.Context, uid string) (*Gallery, error)
}

// Client fetches galleries over HTTP with retries.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
}

// NewClient creates a gallery API client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = cleanhttp.DefaultPooledClient()
	rc.HTTPClient.Timeout = time.Duration(timeout) * time.Second
	rc.RetryMax = cfg.RetryMax
	rc.Logger = nil

	return &Client{
		http:    rc,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// galleryPayload mirrors the wire format. The API is loosely typed: points may
// be a number or a string, and invaders may be a list of entries or an object
// keyed by invader name.
type galleryPayload struct {
	Player struct {
		Name   string `json:"name"`
		Points any    `json:"points"`
	} `json:"player"`
	Invaders json.RawMessage `json:"invaders"`
}

// FetchGallery retrieves the gallery for a single player UID.
func (c *Client) FetchGallery(ctx context.Context, uid string) (*Gallery, error) {
	endpoint := fmt.Sprintf("%s/api/gallery?uid=%s", c.baseURL, url.QueryEscape(uid))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build gallery request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gallery request failed for uid %s: %w", uid, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gallery request for uid %s returned status %d", uid, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery response: %w", err)
	}

	var payload galleryPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode gallery response for uid %s: %w", uid, err)
	}

	return &Gallery{
		UID:      uid,
		Name:     payload.Player.Name,
		Points:   utils.ToInt(payload.Player.Points),
		Invaders: decodeInvaders(payload.Invaders),
	}, nil
}

// decodeInvaders accepts both observed shapes of the invaders field:
// an array of names (or objects with a "name" field), or an object whose
// keys are the names.
func decodeInvaders(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var asList []any
	if err := json.Unmarshal(raw, &asList); err == nil {
		names := make([]string, 0, len(asList))
		for _, entry := range asList {
			switch v := entry.(type) {
			case string:
				names = append(names, v)
			case map[string]any:
				names = append(names, utils.ToString(v["name"]))
			}
		}
		return names
	}

	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err == nil {
		names := make([]string, 0, len(asMap))
		for name := range asMap {
			names = append(names, name)
		}
		return names
	}

	return []string{}
}
