package appium

import (
	"context"
	"encoding/json"
)

// BatteryState is the charging state; Android and iOS use different codes.
type BatteryState string

const (
	BatteryUnknown     BatteryState = "unknown"
	BatteryCharging    BatteryState = "charging"
	BatteryDischarging BatteryState = "discharging"
	BatteryNotCharging BatteryState = "not charging"
	BatteryUnplugged   BatteryState = "unplugged"
	BatteryFull        BatteryState = "full"
)

// BatteryInfo is the reply of `mobile: batteryInfo`.
type BatteryInfo struct {
	Level    float64 `json:"level"` // 0.0 - 1.0
	RawState int     `json:"state"`
	platform string
	Raw      map[string]json.RawMessage `json:"-"`
}

// State decodes RawState for the session platform.
func (b BatteryInfo) State() BatteryState {
	if b.platform == "ios" {
		switch b.RawState {
		case 1:
			return BatteryUnplugged
		case 2:
			return BatteryCharging
		case 3:
			return BatteryFull
		}
		return BatteryUnknown
	}
	switch b.RawState {
	case 2:
		return BatteryCharging
	case 3:
		return BatteryDischarging
	case 4:
		return BatteryNotCharging
	case 5:
		return BatteryFull
	}
	return BatteryUnknown
}

// IsFull reports a full battery.
func (b BatteryInfo) IsFull() bool { return b.State() == BatteryFull }

// IsCharging reports a charging battery.
func (b BatteryInfo) IsCharging() bool { return b.State() == BatteryCharging }

// IsPlugged reports whether external power is connected.
func (b BatteryInfo) IsPlugged() bool {
	switch b.State() {
	case BatteryCharging, BatteryFull, BatteryNotCharging:
		return true
	}
	return false
}

// BatteryInfo returns the battery level and state.
func (c *Client) BatteryInfo(ctx context.Context) (BatteryInfo, error) {
	value, err := c.ExecuteMobile(ctx, "batteryInfo", nil)
	info, err := decode[BatteryInfo](value, err)
	if err != nil {
		return BatteryInfo{}, err
	}
	info.platform = c.platform
	info.Raw, _ = decode[map[string]json.RawMessage](value, nil)
	return info, nil
}
