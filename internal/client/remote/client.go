// Package remote is the HTTP client for the auth backend. It is the
// alternate variant of the login flow: instead of the local credential
// store, signup and login go over the wire, and the issued token and role
// are persisted locally.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/skillbridge/skillbridge/internal/client/storage"
	"github.com/skillbridge/skillbridge/internal/common"
)

// APIError carries the backend's "detail" message verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SignupResponse is the backend's 2xx signup body.
type SignupResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the backend's 2xx login body.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}

// Client talks to the auth backend. Every request runs under an explicit
// timeout; a hung backend surfaces as common.ErrRequestTimeout instead of
// hanging the caller forever.
type Client struct {
	baseURL string
	http    *http.Client
	store   storage.Store
	timeout time.Duration
}

func NewClient(baseURL string, store storage.Store, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		store:   store,
		timeout: timeout,
	}
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s", common.ErrRequestTimeout, path)
		}
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Detail string `json:"detail"`
		}
		detail := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Detail != "" {
			detail = envelope.Detail
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Signup registers an account on the backend.
func (c *Client) Signup(ctx context.Context, name, email, password, role string) (*SignupResponse, error) {
	var out SignupResponse
	err := c.post(ctx, "/auth/signup", signupRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates against the backend and persists the issued token and
// role to the local store.
func (c *Client) Login(ctx context.Context, role, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.post(ctx, "/auth/login", loginRequest{
		Email:    email,
		Password: password,
		Role:     role,
	}, &out)
	if err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, storage.KeyAccessToken, []byte(out.AccessToken)); err != nil {
		return nil, err
	}
	if err := c.store.Set(ctx, storage.KeyUserRole, []byte(out.Role)); err != nil {
		return nil, err
	}
	return &out, nil
}

// Token returns the persisted access token, or "" when not logged in.
func (c *Client) Token(ctx context.Context) (string, error) {
	raw, err := c.store.Get(ctx, storage.KeyAccessToken)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Logout discards the persisted token and role.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Delete(ctx, storage.KeyAccessToken); err != nil {
		return err
	}
	return c.store.Delete(ctx, storage.KeyUserRole)
}
