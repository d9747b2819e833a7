package appium

import (
	"context"
	"fmt"
)

// FingerPrint authenticates with a registered fingerprint (Android emulator, ids 1-10).
func (c *Client) FingerPrint(ctx context.Context, id int) error {
	if id < 1 || id > 10 {
		return ErrInvalidArgument.WithMessage(fmt.Sprintf("fingerprint id %d out of range 1-10", id))
	}
	_, err := c.post(ctx, "appium/device/finger_print", map[string]interface{}{
		"fingerprintId": id,
	})
	return err
}

// TouchID simulates a matching or non-matching Touch ID (iOS simulator).
func (c *Client) TouchID(ctx context.Context, match bool) error {
	_, err := c.post(ctx, "appium/simulator/touch_id", map[string]interface{}{
		"match": match,
	})
	return err
}

// ToggleTouchIDEnrollment enrolls or unenrolls Touch ID (iOS simulator).
func (c *Client) ToggleTouchIDEnrollment(ctx context.Context, enabled bool) error {
	_, err := c.post(ctx, "appium/simulator/toggle_touch_id_enrollment", map[string]interface{}{
		"enabled": enabled,
	})
	return err
}
