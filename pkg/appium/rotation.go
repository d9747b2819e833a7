package appium

import (
	"context"
	"fmt"
	"strings"
)

// Orientation is the screen orientation.
type Orientation string

const (
	Portrait  Orientation = "PORTRAIT"
	Landscape Orientation = "LANDSCAPE"
)

// Rotation is the device rotation in degrees around each axis.
type Rotation struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// NewRotation validates that every angle is in [0, 360).
func NewRotation(x, y, z int) (Rotation, error) {
	for _, a := range []struct {
		name  string
		value int
	}{{"x", x}, {"y", y}, {"z", z}} {
		if a.value < 0 || a.value >= 360 {
			return Rotation{}, ErrInvalidArgument.WithMessage(
				fmt.Sprintf("%s: %d should be between 0 and 359 deg", a.name, a.value))
		}
	}
	return Rotation{X: x, Y: y, Z: z}, nil
}

// Orientation returns the current orientation.
func (c *Client) Orientation(ctx context.Context) (Orientation, error) {
	o, err := decode[string](c.get(ctx, "orientation"))
	return Orientation(strings.ToUpper(o)), err
}

// SetOrientation sets the orientation.
func (c *Client) SetOrientation(ctx context.Context, o Orientation) error {
	_, err := c.post(ctx, "orientation", map[string]interface{}{
		"orientation": strings.ToUpper(string(o)),
	})
	return err
}

// Rotation returns the current device rotation.
func (c *Client) Rotation(ctx context.Context) (Rotation, error) {
	return decode[Rotation](c.get(ctx, "rotation"))
}

// SetRotation rotates the device. Build r with NewRotation.
func (c *Client) SetRotation(ctx context.Context, r Rotation) error {
	if _, err := NewRotation(r.X, r.Y, r.Z); err != nil {
		return err
	}
	_, err := c.post(ctx, "rotation", r)
	return err
}
