package appium

import (
	"context"
	"net/http"
)

// ConnectionState is the Android network connection bitmask.
type ConnectionState uint16

const (
	ConnectionAirplaneMode ConnectionState = 1 << iota
	ConnectionWifi
	ConnectionData
)

// Has reports whether all bits of flag are set.
func (s ConnectionState) Has(flag ConnectionState) bool {
	return s&flag == flag
}

// SetConnection sets the network connection state (Android).
func (c *Client) SetConnection(ctx context.Context, state ConnectionState) error {
	_, err := c.post(ctx, "network_connection", map[string]interface{}{
		"name": "network_connection",
		"parameters": map[string]interface{}{
			"type": uint16(state),
		},
	})
	return err
}

// Connection returns the network connection state (Android).
func (c *Client) Connection(ctx context.Context) (ConnectionState, error) {
	bits, err := decode[uint16](c.Issue(ctx, Custom{Method: http.MethodGet, Path: "network_connection"}))
	if err != nil {
		return 0, err
	}
	return ConnectionState(bits) & (ConnectionAirplaneMode | ConnectionWifi | ConnectionData), nil
}

// ToggleWifi switches wifi on or off (Android).
func (c *Client) ToggleWifi(ctx context.Context) error {
	_, err := c.post(ctx, "appium/device/toggle_wifi", nil)
	return err
}

// ToggleAirplaneMode switches airplane mode on or off (Android).
func (c *Client) ToggleAirplaneMode(ctx context.Context) error {
	_, err := c.post(ctx, "appium/device/toggle_airplane_mode", nil)
	return err
}

// ToggleData switches mobile data on or off (Android).
func (c *Client) ToggleData(ctx context.Context) error {
	_, err := c.post(ctx, "appium/device/toggle_data", nil)
	return err
}
