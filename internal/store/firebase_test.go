package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFirebase(t *testing.T, handler http.HandlerFunc, auth string) DocumentStore {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	docs, err := NewFirebaseDocumentStore(config.Firebase{
		URL:            srv.URL,
		AuthToken:      auth,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return docs
}

func TestFirebase_Get(t *testing.T) {
	docs := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/invites/k3ofol.json", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("auth"))
		_, _ = io.WriteString(w, ` {"fields":[]} `)
	}, "secret")

	body, err := docs.Get(context.Background(), "invites/k3ofol")

	require.NoError(t, err)
	assert.Equal(t, `{"fields":[]}`, string(body))
}

func TestFirebase_GetNull(t *testing.T) {
	docs := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("auth"))
		_, _ = io.WriteString(w, "null")
	}, "")

	body, err := docs.Get(context.Background(), "invites/missing")

	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestFirebase_GetErrorStatus(t *testing.T) {
	docs := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Permission denied"}`, http.StatusUnauthorized)
	}, "")

	_, err := docs.Get(context.Background(), "settings/defaultTemplate")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "http 401")
}

func TestFirebase_GetUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	docs, err := NewFirebaseDocumentStore(config.Firebase{URL: url, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = docs.Get(context.Background(), "invites/abc")

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestFirebase_Put(t *testing.T) {
	docs := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/settings/protectedFields.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `["title","event"]`, string(body))
		_, _ = w.Write(body)
	}, "")

	echo, err := docs.Put(context.Background(), "settings/protectedFields", []byte(`["title","event"]`))

	require.NoError(t, err)
	assert.JSONEq(t, `["title","event"]`, string(echo))
	assert.NoError(t, docs.Close())
}

func TestFirebase_PutErrorStatus(t *testing.T) {
	docs := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, "")

	_, err := docs.Put(context.Background(), "invites/abc", []byte(`{}`))

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestNewFirebaseDocumentStore_InvalidURL(t *testing.T) {
	_, err := NewFirebaseDocumentStore(config.Firebase{URL: "   "}, logger.Nop())

	assert.Error(t, err)
}

func TestDocumentURL(t *testing.T) {
	assert.Equal(t, "/invites/abc.json", documentURL("invites/abc"))
	assert.Equal(t, "/settings.json", documentURL("/settings/"))
}
