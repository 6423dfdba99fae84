// Package client is the state layer over the REST API: a thin HTTP
// client plus stores that cache entities and surface operation
// outcomes as notifications.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Envelope is the response envelope every API endpoint uses.
type Envelope[T any] struct {
	Data  T      `json:"data"`
	Meta  *Meta  `json:"meta,omitempty"`
	Links *Links `json:"links,omitempty"`
}

type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

type Links struct {
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// APIError is the error envelope of the API. Errors, when present,
// holds validation messages keyed by field name.
type APIError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Status  int                 `json:"status,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Client performs requests against the REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL, e.g.
// "https://ledger.example.com/api".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// do performs one request and decodes the data envelope into T.
//
// Non-2xx responses are returned as *APIError so that callers can get
// at the field-keyed validation errors.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var data T

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return data, err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return data, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiError := &APIError{}
		if err := json.NewDecoder(resp.Body).Decode(apiError); err != nil || apiError.Message == "" {
			apiError.Message = fmt.Sprintf("the server responded with status %d", resp.StatusCode)
		}
		apiError.Status = resp.StatusCode

		return data, apiError
	}

	if resp.StatusCode == http.StatusNoContent {
		return data, nil
	}

	var envelope Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return data, fmt.Errorf("could not parse the server response: %w", err)
	}

	return envelope.Data, nil
}

// Accounts lists all accounts.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	return do[[]Account](ctx, c, http.MethodGet, "/api/v1/accounts", nil, nil)
}

// Account fetches a single account.
func (c *Client) Account(ctx context.Context, id uint64) (Account, error) {
	return do[Account](ctx, c, http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d", id), nil, nil)
}

// CreateAccount creates an account.
func (c *Client) CreateAccount(ctx context.Context, editable AccountEditable) (Account, error) {
	return do[Account](ctx, c, http.MethodPost, "/api/v1/accounts", nil, editable)
}

// UpdateAccount applies a partial update to an account.
func (c *Client) UpdateAccount(ctx context.Context, id uint64, update AccountUpdate) (Account, error) {
	return do[Account](ctx, c, http.MethodPut, fmt.Sprintf("/api/v1/accounts/%d", id), nil, update)
}

// DeleteAccount deletes an account.
func (c *Client) DeleteAccount(ctx context.Context, id uint64) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, fmt.Sprintf("/api/v1/accounts/%d", id), nil, nil)
	return err
}

// AccountBalance fetches the current balance of an account.
func (c *Client) AccountBalance(ctx context.Context, id uint64) (AccountBalance, error) {
	return do[AccountBalance](ctx, c, http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d/balance", id), nil, nil)
}

// AccountTransactions fetches the most recent transactions of an
// account.
func (c *Client) AccountTransactions(ctx context.Context, id uint64, limit int) ([]Transaction, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	return do[[]Transaction](ctx, c, http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d/transactions", id), query, nil)
}
