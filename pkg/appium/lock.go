package appium

import (
	"context"
	"time"
)

// Lock locks the device screen.
func (c *Client) Lock(ctx context.Context) error {
	_, err := c.post(ctx, "appium/device/lock", nil)
	return err
}

// LockFor locks the screen and unlocks it again after d (whole seconds).
func (c *Client) LockFor(ctx context.Context, d time.Duration) error {
	_, err := c.post(ctx, "appium/device/lock", map[string]interface{}{
		"seconds": int64(d / time.Second),
	})
	return err
}

// Unlock unlocks the device screen.
func (c *Client) Unlock(ctx context.Context) error {
	_, err := c.post(ctx, "appium/device/unlock", nil)
	return err
}

// IsLocked reports whether the screen is locked.
func (c *Client) IsLocked(ctx context.Context) (bool, error) {
	return decode[bool](c.post(ctx, "appium/device/is_locked", nil))
}
