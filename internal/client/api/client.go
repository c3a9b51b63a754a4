// Package api is the HTTP client for the flashcards backend. Authentication
// state lives in the cookie jar, so a successful Login makes subsequent
// mutating calls pass the server's write gate without further bookkeeping.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/avolkovs/techcards/internal/client/models"
	"github.com/avolkovs/techcards/internal/common"
)

type Client struct {
	base *url.URL
	http *http.Client
}

// New builds a client for the API at endpoint (e.g. "http://localhost:3000").
func New(endpoint string) (*Client, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		base: base,
		http: &http.Client{Jar: jar, Timeout: 10 * time.Second},
	}, nil
}

type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func kindForStatus(status int) common.Kind {
	switch status {
	case http.StatusBadRequest:
		return common.KindValidation
	case http.StatusUnauthorized:
		return common.KindUnauthorized
	case http.StatusNotFound:
		return common.KindNotFound
	default:
		return common.KindInternal
	}
}

// do performs one JSON round trip. Non-2xx responses are decoded into a
// *common.Error carrying the server's message and code.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil || env.Error == "" {
			return &common.Error{Kind: kindForStatus(resp.StatusCode), Code: "SERVER_ERROR", Message: resp.Status}
		}
		return &common.Error{Kind: kindForStatus(resp.StatusCode), Code: env.Code, Message: env.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// wrapTransport keeps server-issued errors intact and converts everything
// else (dial failures, timeouts, bad payloads) into an internal error with
// the operation's code.
func wrapTransport(err error, code, msg string) error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("%w: %s", common.NewInternal(code, msg), err)
}

func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, nil); err != nil {
		return wrapTransport(err, "SERVER_ERROR", "Login failed")
	}
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		return wrapTransport(err, "SERVER_ERROR", "Logout failed")
	}
	return nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, wrapTransport(err, "FETCH_ERROR", "Failed to fetch profile")
	}
	return &out.User, nil
}

func (c *Client) List(ctx context.Context, filter models.Filter, page, limit int) (*models.Page, error) {
	var out models.Page
	if err := c.do(ctx, http.MethodGet, "/flashcards", filter.Query(page, limit), nil, &out); err != nil {
		return nil, wrapTransport(err, "FETCH_ERROR", "Failed to fetch flashcards")
	}
	return &out, nil
}

func (c *Client) Get(ctx context.Context, id string) (*models.Flashcard, error) {
	var out models.Flashcard
	if err := c.do(ctx, http.MethodGet, "/flashcards/"+id, nil, nil, &out); err != nil {
		return nil, wrapTransport(err, "FETCH_ERROR", "Failed to fetch flashcard")
	}
	return &out, nil
}

func (c *Client) Create(ctx context.Context, in models.CardInput) (*models.Flashcard, error) {
	var out models.Flashcard
	if err := c.do(ctx, http.MethodPost, "/flashcards", nil, in, &out); err != nil {
		return nil, wrapTransport(err, "CREATE_ERROR", "Failed to create flashcard")
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, id string, in models.CardInput) (*models.Flashcard, error) {
	var out models.Flashcard
	if err := c.do(ctx, http.MethodPut, "/flashcards/"+id, nil, in, &out); err != nil {
		return nil, wrapTransport(err, "UPDATE_ERROR", "Failed to update flashcard")
	}
	return &out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/flashcards/"+id, nil, nil, nil); err != nil {
		return wrapTransport(err, "DELETE_ERROR", "Failed to delete flashcard")
	}
	return nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, wrapTransport(err, "FETCH_ERROR", "Failed to fetch categories")
	}
	return out.Categories, nil
}

func (c *Client) Health(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, nil); err != nil {
		return wrapTransport(err, "FETCH_ERROR", "Server unavailable")
	}
	return nil
}
