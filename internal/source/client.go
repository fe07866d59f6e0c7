package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/gate-register/internal/domain"
)

// entriesPath is the upstream endpoint listing every gate entry.
const entriesPath = "/api/gate-register"

// maxResponseBytes bounds how much of an upstream response is read.
const maxResponseBytes = 32 << 20

// Client reads gate entries from the upstream REST API.
// It does not retry; callers decide whether a failure is worth another try.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// NewClient constructs a Client for the API rooted at baseURL.
// A nil httpClient gets a default client with a 15 second timeout.
func NewClient(baseURL string, httpClient *http.Client, session *Session) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if session == nil {
		session = NewSession("")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		session: session,
	}
}

// List fetches every gate entry.
//
// A 401 clears the session and returns domain.ErrUnauthorized. Transport
// failures, other non-2xx statuses and undecodable bodies return
// domain.ErrSourceUnavailable. Context cancellation is returned as is.
func (c *Client) List(ctx context.Context) ([]domain.GateEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+entriesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("source.Client.List: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("source.Client.List: %w", ctxErr)
		}
		return nil, fmt.Errorf("source.Client.List: %w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.session.Clear()
		return nil, fmt.Errorf("source.Client.List: %w", domain.ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("source.Client.List: %w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("source.Client.List: %w: read body: %v", domain.ErrSourceUnavailable, err)
	}

	entries, err := DecodeEntries(body)
	if err != nil {
		return nil, fmt.Errorf("source.Client.List: %w: decode: %v", domain.ErrSourceUnavailable, err)
	}
	return entries, nil
}

// ListByErf returns the entries on one ERF. The upstream API has no ERF
// query, so this filters a full List.
func (c *Client) ListByErf(ctx context.Context, erf string) ([]domain.GateEntry, error) {
	entries, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.GateEntry{}
	for _, e := range entries {
		if strings.TrimSpace(e.ErfNumber) == erf {
			out = append(out, e)
		}
	}
	return out, nil
}

// GetByID returns the entry with the given ID, or domain.ErrNotFound.
// Entries the upstream sent without an ID can never be found this way.
func (c *Client) GetByID(ctx context.Context, id uuid.UUID) (domain.GateEntry, error) {
	if id == uuid.Nil {
		return domain.GateEntry{}, fmt.Errorf("source.Client.GetByID: %w", domain.ErrNotFound)
	}
	entries, err := c.List(ctx)
	if err != nil {
		return domain.GateEntry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.GateEntry{}, fmt.Errorf("source.Client.GetByID: %w", domain.ErrNotFound)
}
