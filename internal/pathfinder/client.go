package pathfinder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/spotify-tools/spotify-mcp/internal/config"
	"github.com/spotify-tools/spotify-mcp/internal/logging"
)

const defaultTimeout = 30 * time.Second

// HTTPDoer is the transport collaborator. *http.Client satisfies it; tests
// and callers with custom transports can substitute their own.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// HeaderProvider enriches an outgoing request with auth/session headers
// before it is sent. Enrichment failures abort the call before any network
// traffic.
type HeaderProvider interface {
	ApplyHeaders(*http.Request) error
}

// Client executes persisted-query operations against a pathfinder endpoint.
// It is immutable after construction and safe for concurrent use; it owns
// no shared state beyond the underlying HTTP client's connection pool.
type Client struct {
	doer     HTTPDoer
	endpoint string
	headers  HeaderProvider
	logger   logging.Logger
}

// NewClient constructs a Client from the provided SpotifyConfig and header
// enrichment collaborator. It returns an error if cfg.Endpoint is empty or
// headers is nil. When cfg.Timeout is zero or negative, a default timeout
// of 30 seconds is used. A nil logger disables request logging.
func NewClient(cfg config.SpotifyConfig, headers HeaderProvider, logger logging.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("pathfinder: endpoint is required")
	}
	if headers == nil {
		return nil, fmt.Errorf("pathfinder: header provider is required")
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		doer:     &http.Client{Timeout: timeout},
		endpoint: cfg.Endpoint,
		headers:  headers,
		logger:   logger,
	}, nil
}

// buildRequest constructs the persisted-query HTTP request for op: a POST
// to the endpoint with an empty body and operationName, variables and
// extensions encoded in the query string. All request data travels in the
// query string; the empty body is a protocol characteristic of the
// persisted-query convention.
func (c *Client) buildRequest(ctx context.Context, op Operation) (*http.Request, error) {
	variables, err := json.Marshal(op.Variables())
	if err != nil {
		return nil, wrapErr(ErrSerialize, op.OperationName()+" variables", err)
	}
	extensions, err := json.Marshal(op.Extensions())
	if err != nil {
		return nil, wrapErr(ErrSerialize, op.OperationName()+" extensions", err)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, wrapErr(ErrRequestBuild, "parse endpoint", err)
	}
	q := u.Query()
	q.Set("operationName", op.OperationName())
	q.Set("variables", string(variables))
	q.Set("extensions", string(extensions))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return nil, wrapErr(ErrRequestBuild, "create request", err)
	}

	if err := c.headers.ApplyHeaders(req); err != nil {
		return nil, wrapErr(ErrRequestBuild, "apply headers", err)
	}

	return req, nil
}

// send performs the request and returns the raw response bytes. A non-2xx
// status is a transport error; the body is drained either way so the
// connection can be reused.
func (c *Client) send(req *http.Request, operationName string) ([]byte, error) {
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, wrapErr(ErrTransport, operationName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapErr(ErrTransport, operationName+": read body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s: unexpected HTTP status %d", ErrTransport, operationName, resp.StatusCode)
	}

	return body, nil
}

// Execute runs op against the client's endpoint and returns the unwrapped
// "data" value of the response envelope, decoded as T. The envelope's own
// extensions field is parsed and discarded. T is chosen at the call site,
// so each operation pairs its descriptor with its response shape statically.
//
// Each call is a single request/response cycle: errors are terminal, no
// retry is attempted, and cancellation is whatever ctx provides, surfaced
// as a transport error.
func Execute[T any](ctx context.Context, c *Client, op Operation) (T, error) {
	var zero T

	req, err := c.buildRequest(ctx, op)
	if err != nil {
		return zero, err
	}

	if c.logger != nil {
		c.logger.WithField("operation", op.OperationName()).Debug("executing pathfinder operation")
	}

	body, err := c.send(req, op.OperationName())
	if err != nil {
		return zero, err
	}

	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, wrapErr(ErrDecode, op.OperationName(), err)
	}
	if env.Data == nil {
		return zero, fmt.Errorf("%w: %s: missing data field", ErrDecode, op.OperationName())
	}

	return *env.Data, nil
}
