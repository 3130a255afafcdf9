package feed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stemdex.dev/search/update/core"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClient_EmptyURL(t *testing.T) {
	c, err := NewClient("", time.Second, newTestLogger())
	require.Error(t, err)
	assert.Nil(t, c)
}

func TestClientGet_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/docs/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"url":"http://d/7","title":" Title ","text":"some text"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, time.Second, newTestLogger())
	require.NoError(t, err)

	doc, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, core.FeedDoc{
		ID:    7,
		URL:   "http://d/7",
		Title: "Title",
		Text:  "some text",
	}, doc)
}

func TestClientGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, time.Second, newTestLogger())
	require.NoError(t, err)

	_, err = c.Get(context.Background(), 2)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestClientGet_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, time.Second, newTestLogger())
	require.NoError(t, err)

	_, err = c.Get(context.Background(), 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrNotFound)
}

func TestClientLastID_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/docs/last", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":321}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, time.Second, newTestLogger())
	require.NoError(t, err)

	last, err := c.LastID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 321, last)
}

func TestClientLastID_BadID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":0}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, time.Second, newTestLogger())
	require.NoError(t, err)

	_, err = c.LastID(context.Background())
	require.Error(t, err)
}
