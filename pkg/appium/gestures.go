package appium

import (
	"context"
	"net/http"
	"time"
)

// Gestures are W3C pointer action sequences sent to session/{id}/actions.

type action map[string]interface{}

func pointerMove(x, y int, d time.Duration, origin interface{}) action {
	a := action{"type": "pointerMove", "duration": d.Milliseconds(), "x": x, "y": y}
	if origin != nil {
		a["origin"] = origin
	}
	return a
}

func pointerDown() action { return action{"type": "pointerDown", "button": 0} }

func pointerUp() action { return action{"type": "pointerUp", "button": 0} }

func pause(d time.Duration) action { return action{"type": "pause", "duration": d.Milliseconds()} }

// PerformTouch sends one touch pointer sequence.
func (c *Client) PerformTouch(ctx context.Context, actions ...map[string]interface{}) error {
	_, err := c.post(ctx, "actions", map[string]interface{}{
		"actions": []map[string]interface{}{{
			"type":       "pointer",
			"id":         "finger1",
			"parameters": map[string]interface{}{"pointerType": "touch"},
			"actions":    actions,
		}},
	})
	return err
}

// ReleaseActions releases all pressed keys and pointers.
func (c *Client) ReleaseActions(ctx context.Context) error {
	_, err := c.Issue(ctx, Custom{Method: http.MethodDelete, Path: "actions"})
	return err
}

// Tap taps at screen coordinates.
func (c *Client) Tap(ctx context.Context, x, y int) error {
	return c.PerformTouch(ctx,
		pointerMove(x, y, 0, "viewport"),
		pointerDown(),
		pause(50*time.Millisecond),
		pointerUp(),
	)
}

// TapElement taps the center of an element.
func (c *Client) TapElement(ctx context.Context, e *Element) error {
	return c.PerformTouch(ctx,
		pointerMove(0, 0, 0, map[string]interface{}{w3cElementKey: e.id}),
		pointerDown(),
		pause(50*time.Millisecond),
		pointerUp(),
	)
}

// DoubleTap taps twice at screen coordinates.
func (c *Client) DoubleTap(ctx context.Context, x, y int) error {
	return c.PerformTouch(ctx,
		pointerMove(x, y, 0, "viewport"),
		pointerDown(),
		pointerUp(),
		pause(100*time.Millisecond),
		pointerDown(),
		pointerUp(),
	)
}

// LongPress holds at screen coordinates for d.
func (c *Client) LongPress(ctx context.Context, x, y int, d time.Duration) error {
	return c.PerformTouch(ctx,
		pointerMove(x, y, 0, "viewport"),
		pointerDown(),
		pause(d),
		pointerUp(),
	)
}

// Swipe drags from (startX, startY) to (endX, endY) over d.
func (c *Client) Swipe(ctx context.Context, startX, startY, endX, endY int, d time.Duration) error {
	return c.PerformTouch(ctx,
		pointerMove(startX, startY, 0, "viewport"),
		pointerDown(),
		pointerMove(endX, endY, d, "viewport"),
		pointerUp(),
	)
}

// TypeText types text into the focused element with key actions, falling back
// to the active element value endpoint when the driver rejects key actions.
func (c *Client) TypeText(ctx context.Context, text string) error {
	keys := make([]map[string]interface{}, 0, 2*len(text))
	for _, ch := range text {
		keys = append(keys,
			map[string]interface{}{"type": "keyDown", "value": string(ch)},
			map[string]interface{}{"type": "keyUp", "value": string(ch)},
		)
	}
	_, err := c.post(ctx, "actions", map[string]interface{}{
		"actions": []map[string]interface{}{{
			"type":    "key",
			"id":      "keyboard",
			"actions": keys,
		}},
	})
	if err != nil && ctx.Err() == nil {
		_, err = c.post(ctx, "appium/element/active/value", map[string]interface{}{
			"text": text,
		})
	}
	return err
}
