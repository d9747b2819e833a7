package appium

import (
	"context"
	"fmt"
	"time"
)

// AppState is the state of an installed app as reported by the server.
type AppState int

const (
	AppNotInstalled                 AppState = 0
	AppNotRunning                   AppState = 1
	AppRunningInBackgroundSuspended AppState = 2
	AppRunningInBackground          AppState = 3
	AppRunningInForeground          AppState = 4
)

func (s AppState) String() string {
	switch s {
	case AppNotInstalled:
		return "not installed"
	case AppNotRunning:
		return "not running"
	case AppRunningInBackgroundSuspended:
		return "running in background (suspended)"
	case AppRunningInBackground:
		return "running in background"
	case AppRunningInForeground:
		return "running in foreground"
	default:
		return fmt.Sprintf("unknown app state %d", int(s))
	}
}

// InstallApp installs the app at path (local to the server or a URL).
func (c *Client) InstallApp(ctx context.Context, path string) error {
	_, err := c.post(ctx, "appium/device/install_app", map[string]interface{}{
		"appPath": path,
	})
	return err
}

// IsAppInstalled checks whether the app with the given bundle id / package is installed.
func (c *Client) IsAppInstalled(ctx context.Context, bundleID string) (bool, error) {
	return decode[bool](c.post(ctx, "appium/device/app_installed", map[string]interface{}{
		"bundleId": bundleID,
	}))
}

// RunAppInBackground sends the app under test to background for d (whole seconds).
func (c *Client) RunAppInBackground(ctx context.Context, d time.Duration) error {
	_, err := c.post(ctx, "appium/app/background", map[string]interface{}{
		"seconds": int64(d / time.Second),
	})
	return err
}

// RemoveApp uninstalls an app.
func (c *Client) RemoveApp(ctx context.Context, bundleID string) error {
	_, err := c.post(ctx, "appium/device/remove_app", map[string]interface{}{
		"bundleId": bundleID,
	})
	return err
}

// ActivateApp brings an app to foreground, launching it if needed.
func (c *Client) ActivateApp(ctx context.Context, bundleID string) error {
	_, err := c.post(ctx, "appium/device/activate_app", map[string]interface{}{
		"bundleId": bundleID,
	})
	return err
}

// AppState returns the state of an app.
func (c *Client) AppState(ctx context.Context, bundleID string) (AppState, error) {
	return decode[AppState](c.post(ctx, "appium/device/app_state", map[string]interface{}{
		"bundleId": bundleID,
	}))
}

// TerminateApp stops an app.
func (c *Client) TerminateApp(ctx context.Context, bundleID string) error {
	_, err := c.post(ctx, "appium/device/terminate_app", map[string]interface{}{
		"bundleId": bundleID,
	})
	return err
}

// ClearAppData terminates the app and wipes its data
// (`pm clear` on Android, `mobile: clearApp` on iOS simulators).
func (c *Client) ClearAppData(ctx context.Context, appID string) error {
	_ = c.TerminateApp(ctx, appID)

	if c.platform == "ios" {
		_, err := c.ExecuteMobile(ctx, "clearApp", map[string]interface{}{"bundleId": appID})
		return err
	}
	_, err := c.ExecuteMobile(ctx, "shell", map[string]interface{}{
		"command": "pm",
		"args":    []string{"clear", appID},
	})
	return err
}
