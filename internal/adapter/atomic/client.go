// Package atomic holds HTTP clients for the task, project, profile and
// recurrence services.
package atomic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
)

const (
	DefaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// errUpstreamNotFound marks a 404; each client maps it onto its own sentinel.
var errUpstreamNotFound = errors.New("upstream returned 404")

type client struct {
	service    string
	baseURL    string
	healthPath string
	httpClient *http.Client
	logger     *zap.Logger
}

func newClient(service, baseURL, healthPath string, httpClient *http.Client, logger *zap.Logger) client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return client{
		service:    service,
		baseURL:    strings.TrimRight(baseURL, "/"),
		healthPath: healthPath,
		httpClient: httpClient,
		logger:     logger.With(zap.String("service", service)),
	}
}

func (c *client) Name() string {
	return c.service
}

// Ping calls the service health endpoint.
func (c *client) Ping(ctx context.Context) error {
	return c.do(ctx, "health", http.MethodGet, c.healthPath, nil, nil)
}

// do sends body as JSON and decodes the response into out. An empty or null
// response body leaves out untouched.
func (c *client) do(ctx context.Context, operation, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", c.service, operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return c.unavailable(operation, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.unavailable(operation, 0, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("downstream call",
		zap.String("operation", operation),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return errUpstreamNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("downstream call failed",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", detail),
		)
		return c.unavailable(operation, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.unavailable(operation, 0, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("undecodable downstream response", zap.String("operation", operation), zap.Error(err))
		return c.malformed(operation)
	}
	return nil
}

func (c *client) unavailable(operation string, status int, err error) error {
	return &domain.DependencyError{
		Service:    c.service,
		Operation:  operation,
		StatusCode: status,
		Err:        err,
	}
}

func (c *client) malformed(operation string) error {
	return fmt.Errorf("%s %s: %w", c.service, operation, domain.ErrMalformedResponse)
}

// notFoundAs replaces a 404 with the caller's sentinel.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, errUpstreamNotFound) {
		return sentinel
	}
	return err
}

// routeMissing turns a 404 on a route that addresses no entity into a
// dependency failure.
func (c *client) routeMissing(operation string, err error) error {
	if isNotFound(err) {
		return c.unavailable(operation, http.StatusNotFound, err)
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, errUpstreamNotFound)
}
