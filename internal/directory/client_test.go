package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByIDRelaysBodyVerbatim(t *testing.T) {
	body := `{"id":"123","name":"Moon Brewing","city":"Santa Cruz"}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	raw, err := client.GetByID(context.Background(), "123")
	require.NoError(t, err)
	assert.JSONEq(t, body, string(raw))
}

func TestGetByIDUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no brewery", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.GetByID(context.Background(), "missing")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
}

func TestSearchByCityQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "portland", r.URL.Query().Get("by_city"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	raw, err := client.SearchByCity(context.Background(), "portland")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestGetName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"123","name":"Moon Brewing"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	name, err := client.GetName(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "Moon Brewing", name)
}

func TestGetNameUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.GetName(context.Background(), "123")
	assert.Error(t, err)
}

func TestUnreachableDirectory(t *testing.T) {
	// closed server: the request itself fails, no status to propagate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)

	_, err := client.GetByID(context.Background(), "123")
	require.Error(t, err)
	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream))
}
