package appium

import (
	"context"
	"time"
)

// Screenshot returns a PNG of the screen.
func (c *Client) Screenshot(ctx context.Context) ([]byte, error) {
	encoded, err := decode[string](c.get(ctx, "screenshot"))
	if err != nil {
		return nil, err
	}
	return decodeBase64(encoded)
}

// Source returns the page source (XML for native contexts).
func (c *Client) Source(ctx context.Context) (string, error) {
	return decode[string](c.get(ctx, "source"))
}

// WindowRect returns the window rectangle.
func (c *Client) WindowRect(ctx context.Context) (Rect, error) {
	raw, err := decode[rectValue](c.get(ctx, "window/rect"))
	if err != nil {
		return Rect{}, err
	}
	return raw.rect(), nil
}

// ScreenSize returns the window width and height.
func (c *Client) ScreenSize(ctx context.Context) (int, int, error) {
	r, err := c.WindowRect(ctx)
	return r.Width, r.Height, err
}

// ActiveElement returns the focused element.
func (c *Client) ActiveElement(ctx context.Context) (*Element, error) {
	value, err := c.get(ctx, "element/active")
	if err != nil {
		return nil, err
	}
	return c.decodeElement(value)
}

// OpenURL opens a URL or deep link.
func (c *Client) OpenURL(ctx context.Context, url string) error {
	_, err := c.post(ctx, "url", map[string]interface{}{"url": url})
	return err
}

// SetImplicitWait sets the server-side implicit wait for find commands.
// Keep it at zero when polling with Wait.
func (c *Client) SetImplicitWait(ctx context.Context, timeout time.Duration) error {
	_, err := c.post(ctx, "timeouts", map[string]interface{}{
		"implicit": timeout.Milliseconds(),
	})
	return err
}
