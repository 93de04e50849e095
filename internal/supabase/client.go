// Package supabase implements the backing store contract against a hosted
// Supabase project via its PostgREST API. Each operation is a single
// request/response round trip: no retries, no streaming, no cancellation
// beyond what the caller's context provides.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/common"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

// DefaultTable is the collection name used when none is configured.
const DefaultTable = "registrations"

// Config holds the connection settings for a Supabase project.
type Config struct {
	URL   string // project base URL, e.g. https://xyzcompany.supabase.co
	Key   string // anon or service role API key
	Table string // collection name, DefaultTable when empty
}

// Client is a service.Store backed by Supabase's PostgREST endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
	table      string
}

// New creates a Supabase client from the given configuration.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("%w: supabase.url", common.ErrMissingConfig)
	}
	if strings.TrimSpace(cfg.Key) == "" {
		return nil, fmt.Errorf("%w: supabase.key", common.ErrMissingConfig)
	}

	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		key:        cfg.Key,
		table:      table,
	}, nil
}

// wireRegistration is the PostgREST JSON shape of one record.
type wireRegistration struct {
	ID        int64   `json:"id,omitempty"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Category  string  `json:"registration_type"`
	Company   *string `json:"company,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// ListRegistrations fetches the full collection ordered by created_at
// descending.
func (c *Client) ListRegistrations(ctx context.Context) ([]model.Registration, error) {
	endpoint := fmt.Sprintf("%s?select=%s&order=%s",
		c.tableURL(),
		url.QueryEscape("*"),
		url.QueryEscape("created_at.desc"),
	)

	body, err := c.do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}

	var wire []wireRegistration
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode registrations: %w", err)
	}

	registrations := make([]model.Registration, 0, len(wire))
	for _, w := range wire {
		reg, err := w.toModel()
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}

	slog.Debug("fetched registrations", "count", len(registrations), "table", c.table)
	return registrations, nil
}

// CreateRegistration inserts one record and returns the stored copy with
// its server-assigned id and created_at.
func (c *Client) CreateRegistration(ctx context.Context, input model.RegistrationInput) (*model.Registration, error) {
	payload, err := json.Marshal(wireRegistration{
		Name:     input.Name,
		Email:    input.Email,
		Category: input.Category,
		Company:  optional(input.Company),
		Phone:    optional(input.Phone),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode registration: %w", err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Prefer":       "return=representation",
	}

	body, err := c.do(ctx, http.MethodPost, c.tableURL(), bytes.NewReader(payload), headers)
	if err != nil {
		return nil, err
	}

	// PostgREST returns the inserted rows as an array.
	var wire []wireRegistration
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode created registration: %w", err)
	}
	if len(wire) == 0 {
		return nil, fmt.Errorf("%w: store returned no record", common.ErrMutationFailed)
	}

	reg, err := wire[0].toModel()
	if err != nil {
		return nil, err
	}

	slog.Info("created registration", "id", reg.ID, "table", c.table)
	return &reg, nil
}

// DeleteRegistration removes the record with the given id. Deleting an id
// that no longer exists succeeds silently, matching PostgREST semantics.
func (c *Client) DeleteRegistration(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("%s?id=%s", c.tableURL(), url.QueryEscape(fmt.Sprintf("eq.%d", id)))

	if _, err := c.do(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return err
	}

	slog.Info("deleted registration", "id", id, "table", c.table)
	return nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) tableURL() string {
	return fmt.Sprintf("%s/rest/v1/%s", c.baseURL, c.table)
}

// do performs one round trip and returns the response body, turning any
// non-2xx status into a human-readable error with the PostgREST message.
func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("X-Request-Id", uuid.NewString())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to supabase failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("supabase responded %d: %s", resp.StatusCode, errorMessage(data))
	}

	return data, nil
}

// errorMessage extracts the PostgREST error message from a failure body,
// falling back to the raw body text.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}

func (w wireRegistration) toModel() (model.Registration, error) {
	created, err := parseTimestamp(w.CreatedAt)
	if err != nil {
		return model.Registration{}, fmt.Errorf("failed to parse created_at %q: %w", w.CreatedAt, err)
	}

	return model.Registration{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Category:  w.Category,
		Company:   deref(w.Company),
		Phone:     deref(w.Phone),
		CreatedAt: created,
	}, nil
}

// parseTimestamp accepts both timestamptz (RFC 3339) and the offset-less
// timestamp format PostgREST emits for plain timestamp columns.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05.999999", s)
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
