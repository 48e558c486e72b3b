// Package rest is the client's only road to the SeekhoBharat backend: a thin
// bearer-token HTTP wrapper decoding the API's response envelope once at the
// boundary. No retries, no caching; failures surface directly to the caller.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/seekhobharat/client/core"
)

type Client struct {
	base *url.URL
	http *http.Client
	log  core.Logger

	mu    sync.RWMutex
	token string
}

func NewClient(conf *core.Config, log core.Logger) (*Client, error) {
	if conf.APIBaseURL == "" {
		return nil, errors.New("API base URL is required")
	}
	base, err := url.Parse(conf.APIBaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing API base URL")
	}
	return &Client{
		base: base,
		http: &http.Client{},
		log:  log,
	}, nil
}

// SetToken configures the bearer token attached to subsequent requests.
// An empty token removes the Authorization header.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Do performs one request and decodes the response envelope. A reachable
// backend answering {success:false} or a non-2xx status yields an *APIError;
// transport failures are returned wrapped.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Envelope, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewReader(data)
	}

	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s %s response", method, path)
	}
	c.log.Debug("api call", map[string]interface{}{"method": method, "path": path, "status": resp.StatusCode})

	return decodeEnvelope(resp.StatusCode, data)
}

// Get performs a GET request, unmarshalling the envelope's data into out when
// out is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	env, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return env.DecodeData(out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	env, err := c.Do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return env.DecodeData(out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	env, err := c.Do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return env.DecodeData(out)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	env, err := c.Do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return env.DecodeData(out)
}
