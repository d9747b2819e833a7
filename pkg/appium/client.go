// Package appium is a typed client for the Appium server (W3C WebDriver protocol
// with Appium extensions).
//
// A Client is bound to one session. Elements are located with By locators,
// either once (Find, FindAll) or by polling until they appear (Wait):
//
//	client, err := appium.NewSession(ctx, "http://127.0.0.1:4723", caps)
//	if err != nil {
//		return err
//	}
//	defer client.Close(ctx)
//
//	button, err := client.Wait().AtMost(10*time.Second).ForElement(ctx, appium.ByAccessibilityID("Login"))
//	if err != nil {
//		return err
//	}
//	return button.Click(ctx)
package appium

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/devicelab-dev/appium-go/pkg/logger"
)

// Client issues commands against one Appium session. It is safe for
// concurrent use.
type Client struct {
	transport Transport
	sessionID string
	platform  string // ios, android (lower case, may be empty)
	logger    *zap.Logger
	closed    atomic.Bool
}

type options struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
	platform   string
}

// Option configures NewSession and NewClient.
type Option func(*options)

// WithHTTPClient sets the HTTP client used by NewSession.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTimeout sets the per-request timeout used by NewSession.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the logger. Defaults to logger.L().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPlatform records the session platform for NewClient.
func WithPlatform(platform string) Option {
	return func(o *options) { o.platform = strings.ToLower(platform) }
}

func buildOptions(opts []Option) options {
	o := options{timeout: DefaultRequestTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.L()
	}
	return o
}

// NewClient attaches to an existing session.
func NewClient(transport Transport, sessionID string, opts ...Option) *Client {
	o := buildOptions(opts)
	return &Client{
		transport: transport,
		sessionID: sessionID,
		platform:  o.platform,
		logger:    o.logger,
	}
}

// NewSession creates a session on the server at serverURL with the given
// capabilities (sent as alwaysMatch).
func NewSession(ctx context.Context, serverURL string, capabilities map[string]interface{}, opts ...Option) (*Client, error) {
	o := buildOptions(opts)

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}
	transport, err := NewHTTPTransport(serverURL, httpClient, o.logger)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]interface{}{
		"capabilities": map[string]interface{}{
			"alwaysMatch": capabilities,
		},
	})
	if err != nil {
		return nil, ErrInvalidArgument.WithMessage("marshal capabilities").WithCause(err)
	}

	value, err := transport.Do(ctx, http.MethodPost, "session", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	reply := gjson.ParseBytes(value)
	sessionID := reply.Get("sessionId").String()
	if sessionID == "" {
		return nil, ErrInvalidResponse.WithMessage("no session ID in response")
	}

	c := &Client{
		transport: transport,
		sessionID: sessionID,
		platform:  strings.ToLower(reply.Get("capabilities.platformName").String()),
		logger:    o.logger,
	}
	c.logger.Info("session created",
		zap.String("session", sessionID), zap.String("platform", c.platform))
	return c, nil
}

// SessionID returns the session this client is bound to.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Platform returns the platform reported at session creation (ios/android).
func (c *Client) Platform() string {
	return c.platform
}

// Transport returns the underlying transport.
func (c *Client) Transport() Transport {
	return c.transport
}

// Issue routes cmd against the session and sends it.
func (c *Client) Issue(ctx context.Context, cmd Command) (json.RawMessage, error) {
	path, err := cmd.Endpoint(c.sessionID)
	if err != nil {
		return nil, err
	}
	method, body, err := cmd.MethodAndBody()
	if err != nil {
		return nil, err
	}
	return c.transport.Do(ctx, method, path, body)
}

// Close deletes the session. Only the first successful call sends the
// request; later calls return nil. The client must not be used afterwards.
func (c *Client) Close(ctx context.Context) error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if _, err := c.Issue(ctx, Custom{Method: http.MethodDelete}); err != nil {
		c.closed.Store(false)
		return err
	}
	c.logger.Info("session deleted", zap.String("session", c.sessionID))
	return nil
}

// Execute runs a script on the server: `mobile: <command>` extensions or
// JavaScript in web contexts.
func (c *Client) Execute(ctx context.Context, script string, args ...interface{}) (json.RawMessage, error) {
	if args == nil {
		args = []interface{}{}
	}
	return c.Issue(ctx, Custom{
		Method: http.MethodPost,
		Path:   "execute/sync",
		Body: map[string]interface{}{
			"script": script,
			"args":   args,
		},
	})
}

// ExecuteMobile runs a `mobile:` extension command with a single argument map.
func (c *Client) ExecuteMobile(ctx context.Context, command string, args map[string]interface{}) (json.RawMessage, error) {
	if args == nil {
		args = map[string]interface{}{}
	}
	return c.Execute(ctx, "mobile: "+command, args)
}

// post, get and decode keep the device command files short.

func (c *Client) post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	if body == nil {
		body = map[string]interface{}{}
	}
	return c.Issue(ctx, Custom{Method: http.MethodPost, Path: path, Body: body})
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Issue(ctx, Custom{Method: http.MethodGet, Path: path})
}

func decode[T any](value json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(value, &out); err != nil {
		return out, ErrInvalidResponse.WithCause(err).
			WithDetails(map[string]interface{}{"value": truncate(value, 200)})
	}
	return out, nil
}
