package appium

import (
	"context"
	"time"
)

// DeviceTime returns the device time in the server's default format
// (ISO 8601 with zone offset).
func (c *Client) DeviceTime(ctx context.Context) (string, error) {
	return decode[string](c.get(ctx, "appium/device/system_time"))
}

// DeviceTimeFormat returns the device time in a moment.js format, e.g. "YYYY-MM-DD".
func (c *Client) DeviceTimeFormat(ctx context.Context, format string) (string, error) {
	return decode[string](c.post(ctx, "appium/device/system_time", map[string]interface{}{
		"format": format,
	}))
}

// DeviceClock parses DeviceTime.
func (c *Client) DeviceClock(ctx context.Context) (time.Time, error) {
	s, err := c.DeviceTime(ctx)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidResponse.WithMessage("device time is not RFC 3339").WithCause(err)
	}
	return t, nil
}
