// Package gist HTTP-клиент для создания и удаления gist через GitHub API.
package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-molecula741/quist/internal/app/auth"
	"github.com/m-molecula741/quist/internal/app/config"
	"github.com/rs/zerolog"
)

const acceptHeader = "application/vnd.github.v3+json"

// NetworkError ошибка транспорта: соединение, таймаут, нечитаемый или
// нераспознанный ответ. Ошибки API сюда не относятся, см. Response.Err.
type NetworkError struct {
	Op     string
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s gist: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type Client struct {
	baseURL    string
	credential auth.Credential
	httpClient *http.Client
	userAgent  string
	log        zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient создает клиент с фиксированным базовым адресом и учетными данными.
func NewClient(baseURL string, credential auth.Credential, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		credential: credential,
		httpClient: http.DefaultClient,
		userAgent:  config.UserAgent(),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create создает gist и возвращает его идентификатор и URL.
func (c *Client) Create(ctx context.Context, g *Gist) (Response[Created], error) {
	body, err := json.Marshal(g)
	if err != nil {
		return Response[Created]{}, fmt.Errorf("encode gist: %w", err)
	}

	endpoint := c.baseURL + "/gists"
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Response[Created]{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return Response[Created]{}, &NetworkError{Op: "create", Method: req.Method, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response[Created]{}, &NetworkError{Op: "create", Method: req.Method, URL: endpoint, Err: err}
	}

	result, err := decode(raw, decodeCreated)
	if err != nil {
		c.log.Debug().Int("status", resp.StatusCode).Str("body", string(raw)).Msg("Unrecognized create response")
		return Response[Created]{}, &NetworkError{
			Op:     "create",
			Method: req.Method,
			URL:    endpoint,
			Err:    fmt.Errorf("status %d: %w", resp.StatusCode, err),
		}
	}

	return result, nil
}

// Delete удаляет gist. Ответы 204 и 304 считаются успехом без чтения тела.
func (c *Client) Delete(ctx context.Context, id string) (Response[Deleted], error) {
	endpoint := c.baseURL + "/gists/" + url.PathEscape(id)
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return Response[Deleted]{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return Response[Deleted]{}, &NetworkError{Op: "delete", Method: req.Method, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusNotModified:
		return ok(Deleted{}), nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response[Deleted]{}, &NetworkError{Op: "delete", Method: req.Method, URL: endpoint, Err: err}
	}

	result, err := decode(raw, decodeDeleted)
	if err != nil {
		c.log.Debug().Int("status", resp.StatusCode).Str("body", string(raw)).Msg("Unrecognized delete response")
		return Response[Deleted]{}, &NetworkError{
			Op:     "delete",
			Method: req.Method,
			URL:    endpoint,
			Err:    fmt.Errorf("status %d: %w", resp.StatusCode, err),
		}
	}

	return result, nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, endpoint, err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)
	c.credential.Apply(req)

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	c.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("user", c.credential.Username).
		Msg("Sending GitHub API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("url", req.URL.String()).Msg("GitHub API request failed")
		return nil, err
	}

	c.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("GitHub API response received")

	return resp, nil
}
