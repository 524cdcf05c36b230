// File: internal/services/bible/client.go
package bible

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Verse is a single verse within a looked-up passage.
type Verse struct {
	BookName string `json:"book_name"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
}

// Passage is the API shape of a scripture lookup.
type Passage struct {
	Reference   string  `json:"reference"`
	Verses      []Verse `json:"verses"`
	Text        string  `json:"text"`
	Translation string  `json:"translation_name"`
}

// Client looks up scripture passages against a bible-api.com style
// endpoint. The base URL is injectable so tests can point it at a
// local server.
type Client struct {
	config *Config
	client *http.Client
}

func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}, nil
}

// Lookup fetches a passage by human-readable reference ("John 3:16",
// "Psalm 23"). Transient upstream failures are retried; a missing
// passage is not.
func (c *Client) Lookup(ctx context.Context, reference string) (*Passage, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, &BibleError{Type: ErrTypeValidation, Message: "a passage reference is required"}
	}

	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.config.BaseURL, "/"), url.PathEscape(reference))

	var lastErr error
	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &BibleError{Type: ErrTypeNetwork, Message: "lookup cancelled", Cause: ctx.Err()}
			case <-time.After(c.config.RetryDelay):
			}
		}

		passage, err := c.fetch(ctx, endpoint)
		if err == nil {
			return passage, nil
		}
		if be, ok := err.(*BibleError); ok && (be.Type == ErrTypeNotFound || be.Type == ErrTypeValidation) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*Passage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &BibleError{Type: ErrTypeNetwork, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &BibleError{Type: ErrTypeNetwork, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &BibleError{Type: ErrTypeNotFound, Code: resp.StatusCode, Message: "passage not found"}
	case resp.StatusCode >= 400:
		return nil, &BibleError{Type: ErrTypeProvider, Code: resp.StatusCode, Message: "upstream error"}
	}

	var passage Passage
	if err := json.NewDecoder(resp.Body).Decode(&passage); err != nil {
		return nil, &BibleError{Type: ErrTypeProvider, Message: "invalid upstream response", Cause: err}
	}
	if passage.Reference == "" && len(passage.Verses) == 0 {
		return nil, &BibleError{Type: ErrTypeNotFound, Message: "passage not found"}
	}
	return &passage, nil
}
