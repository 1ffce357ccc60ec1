// Package supabase is a small PostgREST client for the Supabase REST API.
// It covers the table operations the marketplace store needs: filtered
// selects, inserts and conditional updates.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a Supabase REST API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

// New creates a new Supabase client.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("supabase: URL is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("supabase: APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// From starts a query builder for a table.
func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{
		client: c,
		table:  table,
	}
}

// QueryBuilder builds PostgREST queries.
type QueryBuilder struct {
	client  *Client
	table   string
	columns string
	filters url.Values
	orders  []string
	limit   int
}

// Select specifies columns to select.
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.columns = columns
	return q
}

// Eq adds an equality filter.
func (q *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	if q.filters == nil {
		q.filters = url.Values{}
	}
	q.filters.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

// Order adds an ORDER BY clause.
func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	q.orders = append(q.orders, column+"."+dir)
	return q
}

// Limit sets the LIMIT. Zero means no limit.
func (q *QueryBuilder) Limit(n int) *QueryBuilder {
	q.limit = n
	return q
}

func (q *QueryBuilder) url(withReadParams bool) string {
	params := url.Values{}
	for k, vs := range q.filters {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	if withReadParams {
		if q.columns != "" {
			params.Set("select", q.columns)
		}
		if len(q.orders) > 0 {
			params.Set("order", strings.Join(q.orders, ","))
		}
		if q.limit > 0 {
			params.Set("limit", strconv.Itoa(q.limit))
		}
	}

	reqURL := fmt.Sprintf("%s/rest/v1/%s", q.client.baseURL, q.table)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	return reqURL
}

// Execute executes a SELECT query.
func (q *QueryBuilder) Execute(ctx context.Context) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.url(true), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)
	return q.client.do(req)
}

// ExecuteInsert executes an INSERT and asks for the stored rows back.
func (q *QueryBuilder) ExecuteInsert(ctx context.Context, data any) (*Response, error) {
	return q.send(ctx, http.MethodPost, q.url(false), data)
}

// ExecuteUpdate executes an UPDATE restricted by the builder's filters.
// Rows that did not match come back as an empty JSON array.
func (q *QueryBuilder) ExecuteUpdate(ctx context.Context, data any) (*Response, error) {
	return q.send(ctx, http.MethodPatch, q.url(false), data)
}

func (q *QueryBuilder) send(ctx context.Context, method, reqURL string, data any) (*Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q.client.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	return q.client.do(req)
}

// Response is a generic API response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// APIError is a PostgREST error payload. Code carries the Postgres SQLSTATE when there is one.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("supabase error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase error: status %d", e.StatusCode)
}

// Err returns an *APIError if the response indicates failure.
func (r *Response) Err() error {
	if r.StatusCode < 400 {
		return nil
	}
	apiErr := &APIError{StatusCode: r.StatusCode}
	_ = json.Unmarshal(r.Body, apiErr)
	return apiErr
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}

func (c *Client) do(req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}, nil
}
