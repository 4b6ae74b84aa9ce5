package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/signup", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "pass123", body["password"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-abc"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.Signup(context.Background(), "alice@example.com", []byte("pass123")))
	assert.True(t, c.IsAuthenticated())
}

func TestSigninRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Signin(context.Background(), "alice@example.com", []byte("wrong"))
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
	assert.False(t, c.IsAuthenticated())
}

func TestBearerTokenIsSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]Bookmark{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.accessToken = "tok-abc"

	_, err := c.ListBookmarks(context.Background())
	require.NoError(t, err)
}

func TestUnauthorizedIsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestServerUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	_, err := c.ListBookmarks(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCreateAndDeleteBookmark(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/bookmarks/":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Bookmark{ID: "b1", Title: body["title"], Link: body["link"]})
		case r.Method == http.MethodDelete && r.URL.Path == "/bookmarks/b1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	bookmark, err := c.CreateBookmark(context.Background(), "Go", "https://go.dev", "")
	require.NoError(t, err)
	assert.Equal(t, "b1", bookmark.ID)

	require.NoError(t, c.DeleteBookmark(context.Background(), "b1"))
}

func TestLogoutDropsToken(t *testing.T) {
	c := NewClient("http://example.com")
	c.accessToken = "tok"
	c.Logout()
	assert.False(t, c.IsAuthenticated())
}
