package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cast"

	"meta-ads-mcp/internal/config/configs"
	"meta-ads-mcp/internal/core/domain"
)

// Timeout bounds every Graph API request, including reading the body.
const Timeout = 30 * time.Second

// maxBodySize caps the response body read from the platform.
const maxBodySize = 10 << 20

var errUnsupportedMethod = errors.New("unsupported HTTP method")

// Client implements port.GraphAPI over net/http. It holds no credential:
// callers put access_token into the query of each call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a client rooted at the versioned base URL of cfg.
func NewClient(cfg configs.Graph, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.VersionedURL(),
		httpClient: &http.Client{Timeout: Timeout},
		logger:     logger,
	}
}

// Call issues a GET or POST to path, relative to the versioned base URL.
// For POST the body is sent as JSON. Query values that are empty are not
// sent.
func (c *Client) Call(ctx context.Context, method, path string, query url.Values, body any) (domain.Object, error) {
	endpoint := c.endpoint(path, query)

	obj, err := c.do(ctx, method, endpoint, body)
	if err != nil {
		c.logger.Error("graph api call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("kind", domain.ErrorKind(err)),
			slog.Any("error", err),
		)
		return obj, err
	}
	c.logger.Debug("graph api call", slog.String("method", method), slog.String("path", path))
	return obj, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any) (domain.Object, error) {
	var reader io.Reader
	switch method {
	case http.MethodGet:
	case http.MethodPost:
		if body != nil {
			payload, err := json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("marshal request body: %w", err)
			}
			reader = bytes.NewReader(payload)
		}
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedMethod, method)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// The access token travels in the query string; it must not leak into
	// errors or logs.
	redacted := redact(req.URL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, &domain.TransportError{Method: method, URL: redacted, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &domain.TransportError{Method: method, URL: redacted, StatusCode: resp.StatusCode, Err: err}
	}

	obj, decodeErr := decode(raw)
	if platformErr := c.platformError(obj); platformErr != nil {
		platformErr.StatusCode = resp.StatusCode
		return obj, platformErr
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.TransportError{
			Method:     method,
			URL:        redacted,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}
	if decodeErr != nil {
		return nil, &domain.TransportError{Method: method, URL: redacted, StatusCode: resp.StatusCode, Err: decodeErr}
	}
	return obj, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	q := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			if v != "" {
				q.Add(k, v)
			}
		}
	}
	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(q) == 0 {
		return endpoint
	}
	return endpoint + "?" + q.Encode()
}

func decode(raw []byte) (domain.Object, error) {
	var obj domain.Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	if obj == nil {
		return nil, errors.New("decode response body: not a JSON object")
	}
	return obj, nil
}

// platformError extracts the "error" object of a response, if any. Fields
// are read one by one, so a malformed field leaves only itself empty.
func (c *Client) platformError(obj domain.Object) *domain.PlatformError {
	v, ok := obj["error"]
	if !ok || v == nil {
		return nil
	}
	pe := &domain.PlatformError{}
	switch e := v.(type) {
	case string:
		pe.Message = e
	case map[string]any:
		var errs []error
		str := func(key string) string {
			if e[key] == nil {
				return ""
			}
			s, err := cast.ToStringE(e[key])
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
			return s
		}
		num := func(key string) int {
			if e[key] == nil {
				return 0
			}
			n, err := cast.ToIntE(e[key])
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
			return n
		}
		pe.Message = str("message")
		pe.Type = str("type")
		pe.Code = num("code")
		pe.Subcode = num("error_subcode")
		pe.UserTitle = str("error_user_title")
		pe.UserMsg = str("error_user_msg")
		pe.FBTraceID = str("fbtrace_id")
		if len(errs) > 0 {
			c.logger.Warn("malformed platform error fields", slog.Any("error", errors.Join(errs...)))
		}
	default:
		c.logger.Warn("unexpected platform error shape", slog.String("type", fmt.Sprintf("%T", v)))
	}
	return pe
}

func redact(u *url.URL) string {
	clean := *u
	q := clean.Query()
	if q.Has("access_token") {
		q.Set("access_token", "REDACTED")
		clean.RawQuery = q.Encode()
	}
	return clean.String()
}
