package appium

import (
	"context"
	"encoding/json"
)

// UpdateSettings changes driver settings, e.g. {"waitForIdleTimeout": 0}.
func (c *Client) UpdateSettings(ctx context.Context, settings map[string]interface{}) error {
	_, err := c.post(ctx, "appium/settings", map[string]interface{}{"settings": settings})
	return err
}

// Settings returns the current driver settings.
func (c *Client) Settings(ctx context.Context) (map[string]json.RawMessage, error) {
	return decode[map[string]json.RawMessage](c.get(ctx, "appium/settings"))
}
