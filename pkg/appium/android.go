package appium

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Activity identifies an Android activity to start.
type Activity struct {
	AppPackage         string `json:"appPackage"`
	AppActivity        string `json:"appActivity"`
	AppWaitPackage     string `json:"appWaitPackage,omitempty"`
	AppWaitActivity    string `json:"appWaitActivity,omitempty"`
	IntentAction       string `json:"intentAction,omitempty"`
	IntentCategory     string `json:"intentCategory,omitempty"`
	IntentFlags        string `json:"intentFlags,omitempty"`
	OptionalIntentArgs string `json:"optionalIntentArguments,omitempty"`
	DontStopAppOnReset bool   `json:"dontStopAppOnReset,omitempty"`
}

// StartActivity starts an activity (Android).
func (c *Client) StartActivity(ctx context.Context, a Activity) error {
	if a.AppPackage == "" || a.AppActivity == "" {
		return ErrInvalidArgument.WithMessage("activity needs appPackage and appActivity")
	}
	_, err := c.post(ctx, "appium/device/start_activity", a)
	return err
}

// CurrentActivity returns the foreground activity (Android).
func (c *Client) CurrentActivity(ctx context.Context) (string, error) {
	return decode[string](c.get(ctx, "appium/device/current_activity"))
}

// CurrentPackage returns the foreground package (Android).
func (c *Client) CurrentPackage(ctx context.Context) (string, error) {
	return decode[string](c.get(ctx, "appium/device/current_package"))
}

// DisplayDensity returns the screen density in dpi (Android).
func (c *Client) DisplayDensity(ctx context.Context) (int, error) {
	return decode[int](c.get(ctx, "appium/device/display_density"))
}

// SystemBar describes the status or navigation bar.
type SystemBar struct {
	Visible bool `json:"visible"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Width   int  `json:"width"`
	Height  int  `json:"height"`
}

// SystemBars returns the status and navigation bars (Android).
func (c *Client) SystemBars(ctx context.Context) (map[string]SystemBar, error) {
	return decode[map[string]SystemBar](c.get(ctx, "appium/device/system_bars"))
}

// PerformanceDataTypes lists the performance data types the device can
// report, e.g. cpuinfo, memoryinfo, batteryinfo, networkinfo (Android).
func (c *Client) PerformanceDataTypes(ctx context.Context) ([]string, error) {
	return decode[[]string](c.post(ctx, "appium/performanceData/types", nil))
}

// PerformanceData reads one performance data type for a package (Android).
// The first row holds the column names. readTimeout is sent in whole seconds.
func (c *Client) PerformanceData(ctx context.Context, pkg, dataType string, readTimeout time.Duration) ([][]interface{}, error) {
	return decode[[][]interface{}](c.post(ctx, "appium/getPerformanceData", map[string]interface{}{
		"packageName":     pkg,
		"dataType":        dataType,
		"dataReadTimeout": int64(readTimeout / time.Second),
	}))
}

// SendSMS simulates an incoming SMS (Android emulator).
func (c *Client) SendSMS(ctx context.Context, phoneNumber, message string) error {
	_, err := c.post(ctx, "appium/device/send_sms", map[string]interface{}{
		"phoneNumber": phoneNumber,
		"message":     message,
	})
	return err
}

// GSMCallAction is the action of a simulated call.
type GSMCallAction string

const (
	GSMCall   GSMCallAction = "call"
	GSMAccept GSMCallAction = "accept"
	GSMCancel GSMCallAction = "cancel"
	GSMHold   GSMCallAction = "hold"
)

// MakeGSMCall simulates a phone call (Android emulator).
func (c *Client) MakeGSMCall(ctx context.Context, phoneNumber string, action GSMCallAction) error {
	_, err := c.post(ctx, "appium/device/gsm_call", map[string]interface{}{
		"phoneNumber": phoneNumber,
		"action":      action,
	})
	return err
}

// GSMSignalStrength is the simulated signal strength, 0 (none) to 4 (great).
type GSMSignalStrength int

const (
	SignalNoneOrUnknown GSMSignalStrength = iota
	SignalPoor
	SignalModerate
	SignalGood
	SignalGreat
)

// SetGSMSignal sets the signal strength (Android emulator).
func (c *Client) SetGSMSignal(ctx context.Context, strength GSMSignalStrength) error {
	if strength < SignalNoneOrUnknown || strength > SignalGreat {
		return ErrInvalidArgument.WithMessage(fmt.Sprintf("signal strength %d out of range 0-4", strength))
	}
	// Older drivers read the misspelled key.
	_, err := c.post(ctx, "appium/device/gsm_signal", map[string]interface{}{
		"signalStrengh":  strength,
		"signalStrength": strength,
	})
	return err
}

// GSMVoiceState is the simulated voice network state.
type GSMVoiceState string

const (
	VoiceUnregistered GSMVoiceState = "unregistered"
	VoiceHome         GSMVoiceState = "home"
	VoiceRoaming      GSMVoiceState = "roaming"
	VoiceSearching    GSMVoiceState = "searching"
	VoiceDenied       GSMVoiceState = "denied"
	VoiceOff          GSMVoiceState = "off"
	VoiceOn           GSMVoiceState = "on"
)

// SetGSMVoice sets the voice state (Android emulator).
func (c *Client) SetGSMVoice(ctx context.Context, state GSMVoiceState) error {
	_, err := c.post(ctx, "appium/device/gsm_voice", map[string]interface{}{
		"state": state,
	})
	return err
}

// NetworkSpeed is an emulated network type.
type NetworkSpeed string

const (
	SpeedGSM   NetworkSpeed = "gsm"
	SpeedSCSD  NetworkSpeed = "scsd"
	SpeedGPRS  NetworkSpeed = "gprs"
	SpeedEDGE  NetworkSpeed = "edge"
	SpeedUMTS  NetworkSpeed = "umts"
	SpeedHSDPA NetworkSpeed = "hsdpa"
	SpeedLTE   NetworkSpeed = "lte"
	SpeedEVDO  NetworkSpeed = "evdo"
	SpeedFull  NetworkSpeed = "full"
)

// SetNetworkSpeed sets the emulated network speed (Android emulator).
func (c *Client) SetNetworkSpeed(ctx context.Context, speed NetworkSpeed) error {
	_, err := c.post(ctx, "appium/device/network_speed", map[string]interface{}{
		"netspeed": speed,
	})
	return err
}

// SetPowerCapacity sets the battery percentage (Android emulator).
func (c *Client) SetPowerCapacity(ctx context.Context, percent int) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidArgument.WithMessage(fmt.Sprintf("power capacity %d out of range 0-100", percent))
	}
	_, err := c.post(ctx, "appium/device/power_capacity", map[string]interface{}{
		"percent": percent,
	})
	return err
}

// SetPowerAC plugs or unplugs the charger (Android emulator).
func (c *Client) SetPowerAC(ctx context.Context, on bool) error {
	state := "off"
	if on {
		state = "on"
	}
	_, err := c.post(ctx, "appium/device/power_ac", map[string]interface{}{
		"state": state,
	})
	return err
}

// ExecuteCDP runs a Chrome DevTools Protocol command in a Chrome/webview context.
func (c *Client) ExecuteCDP(ctx context.Context, cmd string, params map[string]interface{}) (json.RawMessage, error) {
	if params == nil {
		params = map[string]interface{}{}
	}
	return c.post(ctx, "goog/cdp/execute", map[string]interface{}{
		"cmd":    cmd,
		"params": params,
	})
}
