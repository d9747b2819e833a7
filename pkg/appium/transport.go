package appium

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

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/devicelab-dev/appium-go/pkg/logger"
)

// DefaultRequestTimeout bounds a single HTTP round trip. Install and screenshot
// commands can be slow, so it is long.
const DefaultRequestTimeout = 5 * time.Minute

// Transport sends one request to the server and returns the "value" field of
// the reply. Errors are *WebDriverError for protocol error replies, or wrap
// ErrTransport, ErrInvalidResponse or ErrRouting.
type Transport interface {
	Do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error)
}

// HTTPTransport is a Transport talking JSON over HTTP to an Appium server.
// It is safe for concurrent use.
type HTTPTransport struct {
	base   *url.URL
	client *http.Client
	logger *zap.Logger
}

// NewHTTPTransport creates a transport for the server at serverURL,
// e.g. http://127.0.0.1:4723 or http://localhost:4723/wd/hub.
func NewHTTPTransport(serverURL string, client *http.Client, log *zap.Logger) (*HTTPTransport, error) {
	base, err := url.Parse(serverURL)
	if err != nil {
		return nil, ErrRouting.WithMessage("invalid server url").WithCause(err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, ErrRouting.WithMessage(fmt.Sprintf("invalid server url %q", serverURL))
	}
	// Relative paths resolve below the base only with a trailing slash.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultRequestTimeout}
	}
	if log == nil {
		log = logger.L()
	}
	return &HTTPTransport{base: base, client: client, logger: log}, nil
}

// BaseURL returns the server URL requests are resolved against.
func (t *HTTPTransport) BaseURL() string {
	return t.base.String()
}

// Resolve joins a relative command path onto the server URL.
func (t *HTTPTransport) Resolve(path string) (string, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", ErrRouting.WithMessage(fmt.Sprintf("invalid path %q", path)).WithCause(err)
	}
	if ref.IsAbs() || ref.Host != "" {
		return "", ErrRouting.WithMessage(fmt.Sprintf("path %q is not relative", path))
	}
	return t.base.ResolveReference(ref).String(), nil
}

// Do implements Transport.
func (t *HTTPTransport) Do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	start := time.Now()

	target, err := t.Resolve(path)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, ErrRouting.WithMessage("create request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		t.logger.Debug("request failed",
			zap.String("method", method), zap.String("path", path),
			zap.Duration("elapsed", elapsed), zap.Error(err))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, ErrTransport.WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrTransport.WithMessage("read response").WithCause(err)
	}

	t.logger.Debug("request",
		zap.String("method", method), zap.String("path", path),
		zap.Int("status", resp.StatusCode), zap.Duration("elapsed", elapsed),
		zap.String("body", truncate(body, 100)))

	return decodeReply(resp.StatusCode, respBody)
}

// Status reports whether the server is ready to create sessions.
func (t *HTTPTransport) Status(ctx context.Context) (bool, string, error) {
	value, err := t.Do(ctx, http.MethodGet, "status", nil)
	if err != nil {
		return false, "", err
	}
	res := gjson.ParseBytes(value)
	return res.Get("ready").Bool(), res.Get("message").String(), nil
}

// decodeReply turns a raw server reply into its value or an error.
func decodeReply(status int, body []byte) (json.RawMessage, error) {
	if !gjson.ValidBytes(body) {
		if status >= 400 {
			return nil, ErrTransport.WithMessage(fmt.Sprintf("server error %d", status)).
				WithDetails(map[string]interface{}{"body": truncate(body, 200)})
		}
		return nil, ErrInvalidResponse.WithMessage("response is not json").
			WithDetails(map[string]interface{}{"body": truncate(body, 200)})
	}

	reply := gjson.ParseBytes(body)
	if code := reply.Get("value.error"); code.Exists() && code.String() != "" {
		return nil, &WebDriverError{
			Status:     status,
			Code:       code.String(),
			Message:    reply.Get("value.message").String(),
			Stacktrace: reply.Get("value.stacktrace").String(),
		}
	}
	if status >= 400 {
		return nil, ErrTransport.WithMessage(fmt.Sprintf("server error %d", status)).
			WithDetails(map[string]interface{}{"body": truncate(body, 200)})
	}

	value := reply.Get("value")
	if !value.Exists() {
		// Legacy JSONWP replies without a value envelope carry no payload for us.
		return json.RawMessage("null"), nil
	}
	return json.RawMessage(value.Raw), nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
