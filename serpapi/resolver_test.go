package serpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/execscout"
	"github.com/fwojciec/execscout/serpapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_ResolveProfile(t *testing.T) {
	t.Parallel()

	t.Run("sends one-result query for company and person", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search.json", r.URL.Path)
			assert.Equal(t, "google", r.URL.Query().Get("engine"))
			assert.Equal(t, "Acme Jane Doe LinkedIn", r.URL.Query().Get("q"))
			assert.Equal(t, "1", r.URL.Query().Get("num"))
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"organic_results":[{"link":"https://www.linkedin.com/in/janedoe"}]}`))
		}))
		defer server.Close()

		r := serpapi.NewResolver("test-key", serpapi.WithBaseURL(server.URL))

		link, err := r.ResolveProfile(context.Background(), "Acme", "Jane Doe")

		require.NoError(t, err)
		assert.Equal(t, "https://www.linkedin.com/in/janedoe", link)
	})

	t.Run("accepts pub profiles", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"organic_results":[{"link":"https://linkedin.com/pub/jane-doe/1/2/3"}]}`))
		}))
		defer server.Close()

		r := serpapi.NewResolver("test-key", serpapi.WithBaseURL(server.URL))

		link, err := r.ResolveProfile(context.Background(), "Acme", "Jane Doe")

		require.NoError(t, err)
		assert.Equal(t, "https://linkedin.com/pub/jane-doe/1/2/3", link)
	})

	t.Run("rejects non-profile top result", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"organic_results":[{"link":"https://www.linkedin.com/company/acme"},{"link":"https://www.linkedin.com/in/janedoe"}]}`))
		}))
		defer server.Close()

		r := serpapi.NewResolver("test-key", serpapi.WithBaseURL(server.URL))

		link, err := r.ResolveProfile(context.Background(), "Acme", "Jane Doe")

		require.NoError(t, err)
		assert.Empty(t, link)
	})

	t.Run("returns empty when no results", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"organic_results":[]}`))
		}))
		defer server.Close()

		r := serpapi.NewResolver("test-key", serpapi.WithBaseURL(server.URL))

		link, err := r.ResolveProfile(context.Background(), "Acme", "Jane Doe")

		require.NoError(t, err)
		assert.Empty(t, link)
	})

	t.Run("returns error for API error payload", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"Invalid API key."}`))
		}))
		defer server.Close()

		r := serpapi.NewResolver("bad-key", serpapi.WithBaseURL(server.URL))

		_, err := r.ResolveProfile(context.Background(), "Acme", "Jane Doe")

		require.Error(t, err)
		assert.Equal(t, execscout.EUNAVAILABLE, execscout.ErrorCode(err))
		assert.Contains(t, execscout.ErrorMessage(err), "Invalid API key.")
	})

	t.Run("returns error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		r := serpapi.NewResolver("test-key", serpapi.WithBaseURL(server.URL))

		_, err := r.ResolveProfile(context.Background(), "Acme", "Jane Doe")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("returns error for malformed JSON", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		r := serpapi.NewResolver("test-key", serpapi.WithBaseURL(server.URL))

		_, err := r.ResolveProfile(context.Background(), "Acme", "Jane Doe")

		require.Error(t, err)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		r := serpapi.NewResolver("test-key", serpapi.WithBaseURL(server.URL), serpapi.WithTimeout(10*time.Millisecond))

		_, err := r.ResolveProfile(context.Background(), "Acme", "Jane Doe")

		require.Error(t, err)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		r := serpapi.NewResolver("")

		_, err := r.ResolveProfile(context.Background(), "Acme", "Jane Doe")

		require.Error(t, err)
		assert.Equal(t, execscout.EINVALID, execscout.ErrorCode(err))
	})
}
