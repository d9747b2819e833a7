package appium

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Command is a request routed against a session. The set of commands is
// closed: FindElement, FindElements, FindElementIn, FindElementsIn and Custom.
type Command interface {
	// Endpoint returns the request path relative to the server URL.
	Endpoint(sessionID string) (string, error)
	// MethodAndBody returns the HTTP method and JSON body (nil for no body).
	MethodAndBody() (string, []byte, error)

	command()
}

// FindElement locates one element on the screen.
type FindElement struct {
	By By
}

// FindElements locates all matching elements on the screen.
type FindElements struct {
	By By
}

// FindElementIn locates one element inside the element with id Context.
type FindElementIn struct {
	By      By
	Context string
}

// FindElementsIn locates all matching elements inside the element with id Context.
type FindElementsIn struct {
	By      By
	Context string
}

// Custom is any other session command, e.g.
//
//	Custom{Method: http.MethodPost, Path: "appium/device/hide_keyboard", Body: map[string]interface{}{}}
//
// Body is marshalled as JSON; json.RawMessage is sent as is and nil sends no body.
type Custom struct {
	Method string
	Path   string
	Body   interface{}
}

func (FindElement) command()    {}
func (FindElements) command()   {}
func (FindElementIn) command()  {}
func (FindElementsIn) command() {}
func (Custom) command()         {}

func (c FindElement) Endpoint(sessionID string) (string, error) {
	return sessionPath(sessionID, "element")
}

func (c FindElements) Endpoint(sessionID string) (string, error) {
	return sessionPath(sessionID, "elements")
}

func (c FindElementIn) Endpoint(sessionID string) (string, error) {
	if err := validateSegment("element id", c.Context); err != nil {
		return "", err
	}
	return sessionPath(sessionID, "element/"+c.Context+"/element")
}

func (c FindElementsIn) Endpoint(sessionID string) (string, error) {
	if err := validateSegment("element id", c.Context); err != nil {
		return "", err
	}
	return sessionPath(sessionID, "element/"+c.Context+"/elements")
}

func (c Custom) Endpoint(sessionID string) (string, error) {
	rest := strings.TrimPrefix(c.Path, "/")
	for _, segment := range strings.Split(rest, "/") {
		if segment == ".." || segment == "." {
			return "", ErrRouting.WithMessage(fmt.Sprintf("path %q leaves the session", c.Path))
		}
	}
	return sessionPath(sessionID, rest)
}

func (c FindElement) MethodAndBody() (string, []byte, error)    { return locatorBody(c.By) }
func (c FindElements) MethodAndBody() (string, []byte, error)   { return locatorBody(c.By) }
func (c FindElementIn) MethodAndBody() (string, []byte, error)  { return locatorBody(c.By) }
func (c FindElementsIn) MethodAndBody() (string, []byte, error) { return locatorBody(c.By) }

func (c Custom) MethodAndBody() (string, []byte, error) {
	if c.Method == "" {
		return "", nil, ErrRouting.WithMessage("custom command has no method")
	}
	if c.Body == nil {
		return c.Method, nil, nil
	}
	if raw, ok := c.Body.(json.RawMessage); ok {
		return c.Method, raw, nil
	}
	data, err := json.Marshal(c.Body)
	if err != nil {
		return "", nil, ErrInvalidArgument.WithMessage("marshal request body").WithCause(err)
	}
	return c.Method, data, nil
}

func locatorBody(by By) (string, []byte, error) {
	data, err := json.Marshal(by.Wire())
	if err != nil {
		return "", nil, ErrInvalidArgument.WithMessage("marshal locator").WithCause(err)
	}
	return http.MethodPost, data, nil
}

func sessionPath(sessionID, rest string) (string, error) {
	if err := validateSegment("session id", sessionID); err != nil {
		return "", err
	}
	if rest == "" {
		return "session/" + sessionID, nil
	}
	return "session/" + sessionID + "/" + rest, nil
}

// validateSegment rejects ids that would change the shape of the path.
func validateSegment(what, id string) error {
	if id == "" {
		return ErrRouting.WithMessage(fmt.Sprintf("empty %s", what))
	}
	if strings.ContainsAny(id, "/?#") {
		return ErrRouting.WithMessage(fmt.Sprintf("malformed %s %q", what, id))
	}
	return nil
}
