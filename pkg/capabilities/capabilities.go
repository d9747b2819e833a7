// Package capabilities builds the W3C capability sets sent when creating an
// Appium session.
package capabilities

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Automation names for appium:automationName.
const (
	XCUITest     = "XCuiTest"
	UiAutomator2 = "UIAutomator2"
	Espresso     = "Espresso"
	Mac2         = "Mac2"
	Windows      = "Windows"
	Safari       = "Safari"
	Gecko        = "Gecko"
	YouiEngine   = "youiengine"
)

// VendorPrefix marks Appium extension capabilities.
const VendorPrefix = "appium:"

// standard lists the W3C capabilities that are sent without a vendor prefix.
var standard = map[string]bool{
	"platformName":              true,
	"browserName":               true,
	"browserVersion":            true,
	"acceptInsecureCerts":       true,
	"pageLoadStrategy":          true,
	"proxy":                     true,
	"setWindowRect":             true,
	"timeouts":                  true,
	"strictFileInteractability": true,
	"unhandledPromptBehavior":   true,
	"webSocketUrl":              true,
}

// Capabilities is a capability set, sent as alwaysMatch.
type Capabilities map[string]interface{}

// New returns an empty capability set.
func New() Capabilities {
	return Capabilities{}
}

// Set stores a capability as is.
func (c Capabilities) Set(name string, value interface{}) {
	c[name] = value
}

// SetAppium stores an Appium capability, adding the vendor prefix.
func (c Capabilities) SetAppium(name string, value interface{}) {
	c[VendorPrefix+strings.TrimPrefix(name, VendorPrefix)] = value
}

// Get returns a capability, looking up the prefixed name as well.
func (c Capabilities) Get(name string) (interface{}, bool) {
	if v, ok := c[name]; ok {
		return v, true
	}
	v, ok := c[VendorPrefix+name]
	return v, ok
}

// Platform returns platformName in lower case.
func (c Capabilities) Platform() string {
	s, _ := c["platformName"].(string)
	return strings.ToLower(s)
}

// AutomationName sets the driver, e.g. UiAutomator2.
func (c Capabilities) AutomationName(name string) { c.SetAppium("automationName", name) }

// PlatformVersion sets the OS version.
func (c Capabilities) PlatformVersion(version string) { c.SetAppium("platformVersion", version) }

// DeviceName sets the device name.
func (c Capabilities) DeviceName(name string) { c.SetAppium("deviceName", name) }

// UDID selects the device by serial or UDID.
func (c Capabilities) UDID(udid string) { c.SetAppium("udid", udid) }

// App sets the app path or URL to install.
func (c Capabilities) App(path string) { c.SetAppium("app", path) }

// OtherApps installs additional apps before the session starts.
func (c Capabilities) OtherApps(paths ...string) { c.SetAppium("otherApps", paths) }

// NoReset keeps app state between sessions.
func (c Capabilities) NoReset(v bool) { c.SetAppium("noReset", v) }

// FullReset reinstalls the app for every session.
func (c Capabilities) FullReset(v bool) { c.SetAppium("fullReset", v) }

// PrintPageSourceOnFindFailure logs the page source when a find fails.
func (c Capabilities) PrintPageSourceOnFindFailure(v bool) {
	c.SetAppium("printPageSourceOnFindFailure", v)
}

// NewCommandTimeout sets how long the server waits for a command before
// ending the session.
func (c Capabilities) NewCommandTimeout(d time.Duration) {
	c.SetAppium("newCommandTimeout", int64(d/time.Second))
}

// Setting applies a driver setting at session start.
func (c Capabilities) Setting(name string, value interface{}) {
	c[fmt.Sprintf("%ssettings[%s]", VendorPrefix, name)] = value
}

// Clone returns a shallow copy.
func (c Capabilities) Clone() Capabilities {
	out := make(Capabilities, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Merge copies other into c, overwriting existing keys.
func (c Capabilities) Merge(other map[string]interface{}) {
	for k, v := range other {
		c[k] = v
	}
}

// Normalize returns a copy with the vendor prefix added to every
// non-standard capability that has none.
func (c Capabilities) Normalize() Capabilities {
	out := make(Capabilities, len(c))
	for k, v := range c {
		if standard[k] || strings.Contains(k, ":") {
			out[k] = v
			continue
		}
		out[VendorPrefix+k] = v
	}
	return out
}

// Parse reads a YAML (or JSON) capability mapping.
func Parse(data []byte) (Capabilities, error) {
	var c Capabilities
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse capabilities: %w", err)
	}
	if c == nil {
		c = New()
	}
	return c, nil
}

// Load reads capabilities from a YAML or JSON file.
func Load(path string) (Capabilities, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read capabilities file: %w", err)
	}
	return Parse(data)
}
