// Package apiclient is the typed client for the marketplace API, used by
// walletctl and the wallet-session manager.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/olopa-labs/olopa/internal/contracts"
	"github.com/olopa-labs/olopa/internal/user"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError carries the {error} body of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api returned %d", e.StatusCode)
}

type AuthResponse struct {
	Message string    `json:"message"`
	User    user.User `json:"user"`
	Token   string    `json:"token"`
}

func (c *Client) Register(ctx context.Context, name, email, password, role string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/users/register", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.Token = out.Token
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/users/login", map[string]any{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.Token = out.Token
	return &out, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	var out []user.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateContract(ctx context.Context, draft contracts.Contract) (contracts.Contract, error) {
	var out contracts.Contract
	if err := c.do(ctx, http.MethodPost, "/api/contracts", draft, &out); err != nil {
		return contracts.Contract{}, err
	}
	return out, nil
}

func (c *Client) ListContracts(ctx context.Context) ([]contracts.Contract, error) {
	var out []contracts.Contract
	if err := c.do(ctx, http.MethodGet, "/api/contracts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
