// Package upkeep implements ports.Upstream for the UpKeep API v2.
package upkeep

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// TracerName is the instrumentation scope of the client spans.
	TracerName = "go.trai.ch/wodl/upkeep"

	// SpanFetch is the span opened around each entity lookup.
	SpanFetch = "upkeep.fetch"

	sessionHeader     = "Session-Token"
	httpClientTimeout = 2 * time.Minute
)

// Client talks to the UpKeep API.
type Client struct {
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTracer replaces the tracer obtained from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(cl *Client) {
		cl.tracer = t
	}
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: httpClientTimeout},
		tracer:     otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, baseURL string, creds domain.Credentials) (domain.Session, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	form := url.Values{"email": {creds.Email}, "password": {creds.Password}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/auth", strings.NewReader(form.Encode()))
	if err != nil {
		return domain.Session{}, zerr.Wrap(err, domain.ErrAuthFailed.Error())
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, env, err := c.do(req)
	if err != nil {
		return domain.Session{}, zerr.Wrap(err, domain.ErrAuthFailed.Error())
	}
	if status != http.StatusOK || !env.Success {
		return domain.Session{}, rejected(domain.ErrAuthFailed, status, env)
	}

	var result authResult
	if err := decode(env.Result, &result); err != nil {
		return domain.Session{}, zerr.Wrap(err, domain.ErrAuthFailed.Error())
	}
	if result.SessionToken == "" {
		return domain.Session{}, zerr.With(domain.ErrAuthFailed, "reason", "no session token in response")
	}

	return domain.Session{
		BaseURL:   baseURL,
		Token:     result.SessionToken,
		ExpiresAt: parseExpiry(result.ExpiresAt),
	}, nil
}

// Logout revokes the session token.
func (c *Client) Logout(ctx context.Context, session domain.Session) error {
	req, err := c.newRequest(ctx, http.MethodDelete, session, session.BaseURL+"/auth/")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLogoutFailed.Error())
	}

	status, env, err := c.do(req)
	if err != nil {
		return zerr.Wrap(err, domain.ErrLogoutFailed.Error())
	}
	if status != http.StatusOK || !env.Success {
		return rejected(domain.ErrLogoutFailed, status, env)
	}
	return nil
}

// ListWorkOrders fetches up to limit work orders in a single request.
func (c *Client) ListWorkOrders(ctx context.Context, session domain.Session, limit int) ([]domain.Record, error) {
	endpoint := session.BaseURL + "/work-orders?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()

	req, err := c.newRequest(ctx, http.MethodGet, session, endpoint)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkOrdersFailed.Error())
	}

	status, env, err := c.do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkOrdersFailed.Error())
	}
	if status != http.StatusOK || !env.Success {
		return nil, rejected(domain.ErrWorkOrdersFailed, status, env)
	}

	if env.Results == nil {
		return []domain.Record{}, nil
	}
	return env.Results, nil
}

// FetchEntity looks up a single asset, location or user.
func (c *Client) FetchEntity(
	ctx context.Context,
	session domain.Session,
	entityType domain.EntityType,
	id string,
) domain.FetchResult {
	ctx, span := c.tracer.Start(ctx, SpanFetch, trace.WithAttributes(
		attribute.String("entity.type", string(entityType)),
		attribute.String("entity.id", id),
	))
	defer span.End()

	res := c.fetchEntity(ctx, session, entityType, id)
	switch res.Status {
	case domain.FetchFound:
		span.SetStatus(codes.Ok, "")
	case domain.FetchNotFound:
		span.SetAttributes(attribute.Bool("entity.not_found", true))
	default:
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
	}
	return res
}

func (c *Client) fetchEntity(
	ctx context.Context,
	session domain.Session,
	entityType domain.EntityType,
	id string,
) domain.FetchResult {
	endpoint := string(entityType) + "/" + id

	req, err := c.newRequest(ctx, http.MethodGet, session, session.BaseURL+"/"+string(entityType)+"/"+url.PathEscape(id))
	if err != nil {
		return domain.Failed(zerr.With(zerr.Wrap(err, domain.ErrEntityFetchFailed.Error()), "endpoint", endpoint))
	}

	status, env, err := c.do(req)
	if status == http.StatusNotFound || (err == nil && !env.Success && isNotFound(env.Message)) {
		return domain.NotFound(zerr.With(domain.ErrEntityNotFound, "endpoint", endpoint))
	}
	if err != nil {
		return domain.Failed(zerr.With(zerr.Wrap(err, domain.ErrEntityFetchFailed.Error()), "endpoint", endpoint))
	}
	if status != http.StatusOK || !env.Success {
		return domain.Failed(zerr.With(rejected(domain.ErrEntityFetchFailed, status, env), "endpoint", endpoint))
	}

	var entity domain.Entity
	if err := decode(env.Result, &entity); err != nil || entity == nil {
		if err == nil {
			err = zerr.With(domain.ErrAPIParseFailed, "reason", "empty result")
		}
		return domain.Failed(zerr.With(zerr.Wrap(err, domain.ErrEntityFetchFailed.Error()), "endpoint", endpoint))
	}
	return domain.Found(entity)
}

func (c *Client) newRequest(ctx context.Context, method string, session domain.Session, target string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAPIRequestFailed.Error())
	}
	req.Header.Set(sessionHeader, session.Token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends req and decodes the envelope. The status code is returned even when the body
// cannot be decoded.
func (c *Client) do(req *http.Request) (int, *envelope, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, zerr.Wrap(err, domain.ErrAPIRequestFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, zerr.Wrap(err, domain.ErrAPIRequestFailed.Error())
	}

	var env envelope
	if err := decode(body, &env); err != nil {
		return resp.StatusCode, nil, zerr.With(err, "status_code", resp.StatusCode)
	}
	return resp.StatusCode, &env, nil
}

func isNotFound(message string) bool {
	return strings.Contains(strings.ToLower(message), "not found")
}

func rejected(sentinel error, status int, env *envelope) error {
	err := zerr.With(sentinel, "status_code", status)
	if env != nil && env.Message != "" {
		err = zerr.With(err, "message", env.Message)
	}
	return err
}
