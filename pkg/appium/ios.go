package appium

import "context"

// Shake shakes the device (iOS simulator).
func (c *Client) Shake(ctx context.Context) error {
	_, err := c.post(ctx, "appium/device/shake", nil)
	return err
}
