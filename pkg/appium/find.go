package appium

import (
	"context"
	"encoding/json"
)

// Element identifier keys. W3C servers use the first, JSONWP/legacy servers the second.
const (
	w3cElementKey    = "element-6066-11e4-a52e-4f735466cecf"
	legacyElementKey = "ELEMENT"
)

// Finder locates elements either on the whole screen (*Client) or inside
// another element (*Element).
type Finder interface {
	Find(ctx context.Context, by By) (*Element, error)
	FindAll(ctx context.Context, by By) ([]*Element, error)
	Wait() Wait
}

var (
	_ Finder = (*Client)(nil)
	_ Finder = (*Element)(nil)
)

// Find returns the first element matching by. A missing element is reported
// as an error matching ErrNoSuchElement.
func (c *Client) Find(ctx context.Context, by By) (*Element, error) {
	value, err := c.Issue(ctx, FindElement{By: by})
	if err != nil {
		return nil, err
	}
	return c.decodeElement(value)
}

// FindAll returns all elements matching by, possibly none.
func (c *Client) FindAll(ctx context.Context, by By) ([]*Element, error) {
	value, err := c.Issue(ctx, FindElements{By: by})
	if err != nil {
		return nil, err
	}
	return c.decodeElements(value)
}

// Find returns the first descendant of e matching by.
func (e *Element) Find(ctx context.Context, by By) (*Element, error) {
	value, err := e.client.Issue(ctx, FindElementIn{By: by, Context: e.id})
	if err != nil {
		return nil, err
	}
	return e.client.decodeElement(value)
}

// FindAll returns all descendants of e matching by.
func (e *Element) FindAll(ctx context.Context, by By) ([]*Element, error) {
	value, err := e.client.Issue(ctx, FindElementsIn{By: by, Context: e.id})
	if err != nil {
		return nil, err
	}
	return e.client.decodeElements(value)
}

func (c *Client) decodeElement(value json.RawMessage) (*Element, error) {
	var ref map[string]interface{}
	if err := json.Unmarshal(value, &ref); err != nil || ref == nil {
		return nil, ErrInvalidResponse.WithMessage("element reply is not an object").
			WithDetails(map[string]interface{}{"value": truncate(value, 200)})
	}
	id := extractElementID(ref)
	if id == "" {
		return nil, ErrInvalidResponse.WithMessage("element reply has no element id").
			WithDetails(map[string]interface{}{"value": truncate(value, 200)})
	}
	return &Element{id: id, client: c}, nil
}

// decodeElements keeps only entries carrying an element id.
func (c *Client) decodeElements(value json.RawMessage) ([]*Element, error) {
	var refs []interface{}
	if err := json.Unmarshal(value, &refs); err != nil {
		return nil, ErrInvalidResponse.WithMessage("elements reply is not an array").
			WithDetails(map[string]interface{}{"value": truncate(value, 200)})
	}

	elements := make([]*Element, 0, len(refs))
	for _, v := range refs {
		ref, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		if id := extractElementID(ref); id != "" {
			elements = append(elements, &Element{id: id, client: c})
		}
	}
	return elements, nil
}

func extractElementID(value map[string]interface{}) string {
	// W3C format
	if id, ok := value[w3cElementKey].(string); ok {
		return id
	}
	// Legacy format
	if id, ok := value[legacyElementKey].(string); ok {
		return id
	}
	return ""
}
