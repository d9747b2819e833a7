package appium

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
)

// Element is a handle to an element located in a session. It only carries the
// server-side id, so copies are cheap and independent. It becomes invalid when
// the session ends or the element leaves the screen.
type Element struct {
	id     string
	client *Client
}

// NewElement builds a handle for a known element id.
func NewElement(client *Client, id string) *Element {
	return &Element{id: id, client: client}
}

// ID returns the element ID.
func (e *Element) ID() string {
	return e.id
}

// Client returns the client the element belongs to.
func (e *Element) Client() *Client {
	return e.client
}

// Reference returns the W3C element reference object, used as an action origin
// or script argument.
func (e *Element) Reference() map[string]interface{} {
	return map[string]interface{}{w3cElementKey: e.id, legacyElementKey: e.id}
}

func (e *Element) path(rest string) string {
	return "element/" + e.id + "/" + rest
}

// Click clicks the element.
func (e *Element) Click(ctx context.Context) error {
	_, err := e.client.post(ctx, e.path("click"), nil)
	return err
}

// Clear clears an element's text.
func (e *Element) Clear(ctx context.Context) error {
	_, err := e.client.post(ctx, e.path("clear"), nil)
	return err
}

// SendKeys types text into the element.
func (e *Element) SendKeys(ctx context.Context, text string) error {
	_, err := e.client.post(ctx, e.path("value"), map[string]interface{}{
		"text":  text,
		"value": strings.Split(text, ""),
	})
	return err
}

// Text returns the element's visible text.
func (e *Element) Text(ctx context.Context) (string, error) {
	return decode[string](e.client.get(ctx, e.path("text")))
}

// Attribute returns an attribute value, or "" when the attribute is null.
func (e *Element) Attribute(ctx context.Context, name string) (string, error) {
	value, err := decode[*string](e.client.get(ctx, e.path("attribute/"+url.PathEscape(name))))
	if err != nil || value == nil {
		return "", err
	}
	return *value, nil
}

// Rect is an element's position and size in screen points.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Rect returns an element's position and size.
func (e *Element) Rect(ctx context.Context) (Rect, error) {
	raw, err := decode[rectValue](e.client.get(ctx, e.path("rect")))
	if err != nil {
		return Rect{}, err
	}
	return raw.rect(), nil
}

// rectValue is the wire form of a rect; servers may send fractional points.
type rectValue struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r rectValue) rect() Rect {
	return Rect{X: int(r.X), Y: int(r.Y), Width: int(r.Width), Height: int(r.Height)}
}

// IsDisplayed checks if element is visible.
func (e *Element) IsDisplayed(ctx context.Context) (bool, error) {
	return decode[bool](e.client.get(ctx, e.path("displayed")))
}

// IsEnabled checks if element is enabled.
func (e *Element) IsEnabled(ctx context.Context) (bool, error) {
	return decode[bool](e.client.get(ctx, e.path("enabled")))
}

// IsSelected checks if element is selected or checked.
func (e *Element) IsSelected(ctx context.Context) (bool, error) {
	return decode[bool](e.client.get(ctx, e.path("selected")))
}

// Screenshot returns a PNG of the element.
func (e *Element) Screenshot(ctx context.Context) ([]byte, error) {
	encoded, err := decode[string](e.client.get(ctx, e.path("screenshot")))
	if err != nil {
		return nil, err
	}
	return decodeBase64(encoded)
}

// ReplaceValue replaces the element's text without typing (UiAutomator2).
func (e *Element) ReplaceValue(ctx context.Context, value string) error {
	_, err := e.client.Issue(ctx, Custom{
		Method: http.MethodPost,
		Path:   "appium/element/" + e.id + "/replace_value",
		Body: map[string]interface{}{
			"id":    e.id,
			"value": value,
		},
	})
	return err
}

// decodeBase64 accepts the line-wrapped base64 some drivers produce.
func decodeBase64(s string) ([]byte, error) {
	s = strings.NewReplacer("\n", "", "\r", "").Replace(s)
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidResponse.WithMessage("invalid base64 payload").WithCause(err)
	}
	return data, nil
}
