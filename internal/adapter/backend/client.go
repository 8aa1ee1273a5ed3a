package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wallet-admin-console/config"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"

	"github.com/rs/zerolog"
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 << 10

var (
	_ ports.AuthBackend         = (*Client)(nil)
	_ ports.WalletBackend       = (*Client)(nil)
	_ ports.ExchangeRateBackend = (*Client)(nil)
	_ ports.SellerBackend       = (*Client)(nil)
	_ ports.PinBackend          = (*Client)(nil)
	_ ports.EntityBackend       = (*Client)(nil)
	_ ports.HealthChecker       = (*Client)(nil)
)

// Client is the upstream REST client. It implements every backend port.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a backend client rooted at cfg.BaseURL.
func NewClient(cfg config.BackendConfig, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing backend base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base url must be http or https, got %q", cfg.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// request describes a single upstream call.
type request struct {
	method    string
	path      string // relative to the base URL, no leading slash
	query     url.Values
	body      any
	entity    string // used for 404 messages
	anonymous bool   // no bearer token (sign-in, refresh)
}

// errorBody is the upstream error envelope.
type errorBody struct {
	Message string `json:"message"`
}

// send performs the call and decodes a 2xx body into out (if non-nil).
// Failures are mapped onto the console error taxonomy.
func (c *Client) send(ctx context.Context, req request, out any) error {
	target := c.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(req.path, "/")})
	if len(req.query) > 0 {
		target.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("encoding %s %s: %w", req.method, req.path, err))
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("building %s %s: %w", req.method, req.path, err))
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if !req.anonymous {
		token, ok := AccessToken(ctx)
		if !ok {
			return apperror.ErrSessionExpired()
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if isCanceled(err) {
			c.log.Debug().Str("method", req.method).Str("path", req.path).Msg("backend call canceled")
		} else {
			c.log.Warn().Err(err).Str("method", req.method).Str("path", req.path).Msg("backend call failed")
		}
		return apperror.ErrNetwork(err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.method).
		Str("path", req.path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		appErr := c.mapError(resp, req)
		c.log.Warn().
			Str("method", req.method).
			Str("path", req.path).
			Int("status", resp.StatusCode).
			Str("error_code", appErr.Code).
			Msg("backend rejected call")
		return appErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.ErrNetwork(fmt.Errorf("decoding %s %s: %w", req.method, req.path, err))
	}
	return nil
}

func (c *Client) mapError(resp *http.Response, req request) *apperror.AppError {
	var eb errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &eb)
	msg := strings.TrimSpace(eb.Message)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperror.ErrSessionExpired()
	case resp.StatusCode == http.StatusNotFound:
		if req.entity != "" {
			return apperror.ErrNotFound(req.entity)
		}
		if msg == "" {
			msg = "Resource not found"
		}
		return apperror.New("BE_002", msg, http.StatusNotFound)
	case msg != "":
		return apperror.Backend(resp.StatusCode, msg)
	default:
		return apperror.ErrNetwork(fmt.Errorf("backend %s %s: status %d", req.method, req.path, resp.StatusCode))
	}
}

// --- ports.HealthChecker ---

// Ping checks the backend answers HTTP at all. Any status counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Name returns the dependency name.
func (c *Client) Name() string {
	return "backend"
}

// isCanceled reports whether err stems from the caller giving up.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
