package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/common"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{URL: srv.URL, Key: "test-key"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNew(t *testing.T) {
	t.Run("requires url and key", func(t *testing.T) {
		_, err := New(Config{Key: "k"})
		assert.ErrorIs(t, err, common.ErrMissingConfig)

		_, err = New(Config{URL: "https://example.supabase.co"})
		assert.ErrorIs(t, err, common.ErrMissingConfig)
	})

	t.Run("defaults the table name", func(t *testing.T) {
		client, err := New(Config{URL: "https://example.supabase.co", Key: "k"})
		require.NoError(t, err)
		assert.Equal(t, DefaultTable, client.table)
	})
}

func TestListRegistrations(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes the collection", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/rest/v1/registrations", r.URL.Path)
			assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
			assert.Equal(t, "test-key", r.Header.Get("apikey"))
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

			_, _ = w.Write([]byte(`[
				{"id":2,"name":"Ben","email":"ben@example.com","registration_type":"pro","company":"Initech","phone":null,"created_at":"2025-03-15T14:30:00+00:00"},
				{"id":1,"name":"Amy","email":"amy@example.com","registration_type":"student","company":null,"phone":"555-0100","created_at":"2025-03-14T09:00:00+00:00"}
			]`))
		})

		regs, err := client.ListRegistrations(ctx)
		require.NoError(t, err)
		require.Len(t, regs, 2)
		assert.Equal(t, int64(2), regs[0].ID)
		assert.Equal(t, "Initech", regs[0].Company)
		assert.Empty(t, regs[0].Phone)
		assert.Equal(t, "555-0100", regs[1].Phone)
		assert.Equal(t, 2025, regs[0].CreatedAt.Year())
	})

	t.Run("surfaces the error message verbatim", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"JWT expired"}`))
		})

		_, err := client.ListRegistrations(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT expired")
	})
}

func TestCreateRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored record", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Amy", payload["name"])
			assert.Equal(t, "student", payload["registration_type"])
			_, hasCompany := payload["company"]
			assert.False(t, hasCompany, "empty optional fields are omitted")

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`[{"id":7,"name":"Amy","email":"amy@example.com","registration_type":"student","company":null,"phone":null,"created_at":"2025-03-15T14:30:00.123456+00:00"}]`))
		})

		reg, err := client.CreateRegistration(ctx, model.RegistrationInput{
			Name:     "Amy",
			Email:    "amy@example.com",
			Category: "student",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), reg.ID)
		assert.False(t, reg.CreatedAt.IsZero())
	})

	t.Run("surfaces a rejected insert", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"new row violates row-level security policy"}`))
		})

		_, err := client.CreateRegistration(ctx, model.RegistrationInput{
			Name:     "Amy",
			Email:    "amy@example.com",
			Category: "student",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row-level security")
	})
}

func TestDeleteRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "eq.42", r.URL.Query().Get("id"))
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, client.DeleteRegistration(ctx, 42))
	})

	t.Run("surfaces transport-level failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"message":"upstream timeout"}`))
		})

		err := client.DeleteRegistration(ctx, 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream timeout")
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Run("timestamptz", func(t *testing.T) {
		ts, err := parseTimestamp("2025-03-15T14:30:00.123456+00:00")
		require.NoError(t, err)
		assert.Equal(t, 2025, ts.Year())
	})

	t.Run("offset-less timestamp", func(t *testing.T) {
		ts, err := parseTimestamp("2025-03-15T14:30:00")
		require.NoError(t, err)
		assert.Equal(t, 14, ts.Hour())
	})

	t.Run("garbage is an error", func(t *testing.T) {
		_, err := parseTimestamp("yesterday")
		assert.Error(t, err)
	})
}
