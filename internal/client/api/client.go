// Package api is the HTTP client for the bookmarkd server. It owns the
// request and response shapes of the wire and keeps the access token for the
// session in memory.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type Bookmark struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description"`
}

type Client struct {
	baseURL     string
	http        *http.Client
	accessToken string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// IsAuthenticated reports whether a token was obtained this session.
func (c *Client) IsAuthenticated() bool {
	return c.accessToken != ""
}

// Logout drops the session token.
func (c *Client) Logout() {
	c.accessToken = ""
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Signup registers a new account and stores the returned token.
func (c *Client) Signup(ctx context.Context, email string, password []byte) error {
	return c.authenticate(ctx, "/auth/signup", email, password)
}

// Signin authenticates an existing account and stores the returned token.
func (c *Client) Signin(ctx context.Context, email string, password []byte) error {
	return c.authenticate(ctx, "/auth/signin", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email string, password []byte) error {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, path, credentials{Email: email, Password: string(password)}, &resp)
	if err != nil {
		return err
	}
	c.accessToken = resp.AccessToken
	return nil
}

// Me returns the account owning the session token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListBookmarks returns the caller's bookmarks.
func (c *Client) ListBookmarks(ctx context.Context) ([]Bookmark, error) {
	var list []Bookmark
	if err := c.do(ctx, http.MethodGet, "/bookmarks/", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateBookmark stores a new bookmark and returns it.
func (c *Client) CreateBookmark(ctx context.Context, title, link, description string) (*Bookmark, error) {
	req := map[string]string{"title": title, "link": link, "description": description}
	var bookmark Bookmark
	if err := c.do(ctx, http.MethodPost, "/bookmarks/", req, &bookmark); err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// DeleteBookmark removes a bookmark by id.
func (c *Client) DeleteBookmark(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bookmarks/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func errorFromResponse(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if body.Error == "" {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return fmt.Errorf("%s", body.Error)
}
