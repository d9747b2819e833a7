package appium

import "context"

// Location is a geographic position.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// AndroidLocation adds the fields only emulators accept.
type AndroidLocation struct {
	Location
	Satellites int     `json:"satellites,omitempty"`
	Speed      float64 `json:"speed,omitempty"`
}

// Location returns the device location.
func (c *Client) Location(ctx context.Context) (Location, error) {
	return decode[Location](c.get(ctx, "location"))
}

// SetLocation sets the device location.
func (c *Client) SetLocation(ctx context.Context, loc Location) error {
	_, err := c.post(ctx, "location", map[string]interface{}{"location": loc})
	return err
}

// SetAndroidLocation sets the device location with satellites and speed.
func (c *Client) SetAndroidLocation(ctx context.Context, loc AndroidLocation) error {
	_, err := c.post(ctx, "location", map[string]interface{}{"location": loc})
	return err
}
