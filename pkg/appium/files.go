package appium

import (
	"context"
	"encoding/base64"
)

// PullFile downloads a file from the device. Paths are absolute, or
// `@<bundle>:<container>/path` on iOS.
func (c *Client) PullFile(ctx context.Context, path string) ([]byte, error) {
	encoded, err := decode[string](c.post(ctx, "appium/device/pull_file", map[string]interface{}{
		"path": path,
	}))
	if err != nil {
		return nil, err
	}
	return decodeBase64(encoded)
}

// PullFolder downloads a folder from the device as a zip archive.
func (c *Client) PullFolder(ctx context.Context, path string) ([]byte, error) {
	encoded, err := decode[string](c.post(ctx, "appium/device/pull_folder", map[string]interface{}{
		"path": path,
	}))
	if err != nil {
		return nil, err
	}
	return decodeBase64(encoded)
}

// PushFile uploads data to path on the device.
func (c *Client) PushFile(ctx context.Context, path string, data []byte) error {
	_, err := c.post(ctx, "appium/device/push_file", map[string]interface{}{
		"path": path,
		"data": base64.StdEncoding.EncodeToString(data),
	})
	return err
}
