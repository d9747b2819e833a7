package appium

import (
	"context"
	"encoding/base64"
)

// ClipboardContentType is the kind of clipboard content.
type ClipboardContentType string

const (
	ClipboardPlainText ClipboardContentType = "plaintext"
	ClipboardImage     ClipboardContentType = "image"
	ClipboardURL       ClipboardContentType = "url"
)

// GetClipboard returns the raw clipboard content of the given type.
func (c *Client) GetClipboard(ctx context.Context, contentType ClipboardContentType) ([]byte, error) {
	encoded, err := decode[string](c.post(ctx, "appium/device/get_clipboard", map[string]interface{}{
		"contentType": contentType,
	}))
	if err != nil {
		return nil, err
	}
	return decodeBase64(encoded)
}

// GetClipboardText returns clipboard text.
func (c *Client) GetClipboardText(ctx context.Context) (string, error) {
	data, err := c.GetClipboard(ctx, ClipboardPlainText)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetClipboard sets the clipboard content.
func (c *Client) SetClipboard(ctx context.Context, contentType ClipboardContentType, content []byte) error {
	return c.setClipboard(ctx, map[string]interface{}{
		"content":     base64.StdEncoding.EncodeToString(content),
		"contentType": contentType,
	})
}

// SetClipboardText sets clipboard text.
func (c *Client) SetClipboardText(ctx context.Context, text string) error {
	return c.SetClipboard(ctx, ClipboardPlainText, []byte(text))
}

// SetClipboardLabeled sets the clipboard content with a label (Android).
func (c *Client) SetClipboardLabeled(ctx context.Context, label string, contentType ClipboardContentType, content []byte) error {
	return c.setClipboard(ctx, map[string]interface{}{
		"label":       label,
		"content":     base64.StdEncoding.EncodeToString(content),
		"contentType": contentType,
	})
}

func (c *Client) setClipboard(ctx context.Context, body map[string]interface{}) error {
	_, err := c.post(ctx, "appium/device/set_clipboard", body)
	return err
}
