package appium

import (
	"context"
	"strings"
)

// NativeContext is the name of the native app context.
const NativeContext = "NATIVE_APP"

// SetContext switches to the named context, e.g. NATIVE_APP or WEBVIEW_<pkg>.
func (c *Client) SetContext(ctx context.Context, name string) error {
	_, err := c.post(ctx, "context", map[string]interface{}{"name": name})
	return err
}

// CurrentContext returns the active context.
func (c *Client) CurrentContext(ctx context.Context) (string, error) {
	return decode[string](c.get(ctx, "context"))
}

// Contexts lists available contexts.
func (c *Client) Contexts(ctx context.Context) ([]string, error) {
	return decode[[]string](c.get(ctx, "contexts"))
}

// SwitchToWebView switches to the first web view context.
func (c *Client) SwitchToWebView(ctx context.Context) (string, error) {
	names, err := c.Contexts(ctx)
	if err != nil {
		return "", err
	}
	for _, name := range names {
		if strings.HasPrefix(name, "WEBVIEW") || strings.HasPrefix(name, "CHROMIUM") {
			return name, c.SetContext(ctx, name)
		}
	}
	return "", ErrNoSuchElement.WithMessage("no webview context available").
		WithDetails(map[string]interface{}{"contexts": names})
}
