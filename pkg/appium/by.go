package appium

import (
	"encoding/json"
	"fmt"
)

// Strategy is an Appium element location strategy.
type Strategy int

const (
	StrategyID Strategy = iota
	StrategyName
	StrategyXPath
	StrategyUiAutomator
	StrategyAndroidDataMatcher
	StrategyAndroidViewMatcher
	StrategyAndroidViewTag
	StrategyIOSClassChain
	StrategyIOSPredicate
	StrategyAccessibilityID
	StrategyClassName
	StrategyImage
	StrategyCustom
	StrategyCustomKind // caller-supplied "using" tag
)

// String returns the "using" tag sent to the server. StrategyCustomKind has
// no fixed tag; its By carries one.
func (s Strategy) String() string {
	switch s {
	case StrategyID:
		return "id"
	case StrategyName:
		return "name"
	case StrategyXPath:
		return "xpath"
	case StrategyUiAutomator:
		return "-android uiautomator"
	case StrategyAndroidDataMatcher:
		return "-android datamatcher"
	case StrategyAndroidViewMatcher:
		return "-android viewmatcher"
	case StrategyAndroidViewTag:
		return "-android viewtag"
	case StrategyIOSClassChain:
		return "-ios class chain"
	case StrategyIOSPredicate:
		return "-ios predicate string"
	case StrategyAccessibilityID:
		return "accessibility id"
	case StrategyClassName:
		return "class name"
	case StrategyImage:
		return "-image"
	case StrategyCustom:
		return "-custom"
	default:
		return "custom kind"
	}
}

// Locator is the wire form of a By: the body of a find request.
type Locator struct {
	Using string `json:"using"`
	Value string `json:"value"`
}

// By describes how to find an element. The zero value is ByID("").
// Build it with one of the By* constructors.
type By struct {
	strategy Strategy
	using    string // only for StrategyCustomKind
	value    string
}

// ByID finds an element by its resource id (Android) or name (iOS).
func ByID(id string) By {
	return By{strategy: StrategyID, value: id}
}

// ByName finds an element by name.
func ByName(name string) By {
	return By{strategy: StrategyName, value: name}
}

// ByXPath finds an element by an XPath query over the page source.
func ByXPath(query string) By {
	return By{strategy: StrategyXPath, value: query}
}

// ByUiAutomator finds an element with a UiSelector expression (UiAutomator2 only),
// e.g. `new UiSelector().text("Login")`.
func ByUiAutomator(query string) By {
	return By{strategy: StrategyUiAutomator, value: query}
}

// ByAndroidDataMatcher finds an element with an Espresso data matcher (JSON).
func ByAndroidDataMatcher(query string) By {
	return By{strategy: StrategyAndroidDataMatcher, value: query}
}

// ByAndroidViewMatcher finds an element with an Espresso view matcher (JSON).
func ByAndroidViewMatcher(query string) By {
	return By{strategy: StrategyAndroidViewMatcher, value: query}
}

// ByAndroidViewTag finds an element by its Espresso view tag.
func ByAndroidViewTag(tag string) By {
	return By{strategy: StrategyAndroidViewTag, value: tag}
}

// ByIOSClassChain finds an element with an XCUITest class chain,
// e.g. `**/XCUIElementTypeButton[`label == "Go"`]`.
func ByIOSClassChain(query string) By {
	return By{strategy: StrategyIOSClassChain, value: query}
}

// ByIOSPredicate finds an element with an NSPredicate string.
func ByIOSPredicate(predicate string) By {
	return By{strategy: StrategyIOSPredicate, value: predicate}
}

// ByAccessibilityID finds an element by content-desc (Android) or accessibility identifier (iOS).
func ByAccessibilityID(id string) By {
	return By{strategy: StrategyAccessibilityID, value: id}
}

// ByClassName finds an element by its native class name.
func ByClassName(className string) By {
	return By{strategy: StrategyClassName, value: className}
}

// ByImage finds an element by matching a base64-encoded template image against the screen.
func ByImage(base64Template string) By {
	return By{strategy: StrategyImage, value: base64Template}
}

// ByCustom uses the server's custom element finding plugin.
func ByCustom(query string) By {
	return By{strategy: StrategyCustom, value: query}
}

// ByCustomKind sends using and value verbatim. Use it for strategies added by
// drivers or plugins that have no constructor here.
func ByCustomKind(using, value string) By {
	return By{strategy: StrategyCustomKind, using: using, value: value}
}

// Strategy returns the location strategy.
func (b By) Strategy() Strategy {
	return b.strategy
}

// Value returns the query string.
func (b By) Value() string {
	return b.value
}

// Wire returns the (using, value) pair sent to the server.
func (b By) Wire() Locator {
	if b.strategy == StrategyCustomKind {
		return Locator{Using: b.using, Value: b.value}
	}
	return Locator{Using: b.strategy.String(), Value: b.value}
}

// MarshalJSON encodes the locator as {"using": ..., "value": ...}.
func (b By) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Wire())
}

// String describes the locator for logs and error messages.
func (b By) String() string {
	w := b.Wire()
	return fmt.Sprintf("%s=%q", w.Using, w.Value)
}

// ParseBy builds a By from a wire tag. Unknown tags become ByCustomKind.
func ParseBy(using, value string) By {
	for s := StrategyID; s < StrategyCustomKind; s++ {
		if s.String() == using {
			return By{strategy: s, value: value}
		}
	}
	return ByCustomKind(using, value)
}
