package pagesource

import (
	"fmt"
	"strings"

	"github.com/devicelab-dev/appium-go/pkg/appium"
)

// Locator suggests the most stable locator that matches n and nothing else
// in the source. Attributes are tried from most to least stable; the absolute
// XPath is the fallback and always unique.
func (s *Source) Locator(n *Node) appium.By {
	if s.Platform == IOS {
		switch {
		case n.Name != "" && s.unique(n, func(o *Node) string { return o.Name }):
			return appium.ByAccessibilityID(n.Name)
		case n.Label != "" && s.unique(n, func(o *Node) string { return o.Label }):
			return appium.ByIOSPredicate(fmt.Sprintf("label == %s", quote(n.Label)))
		}
		return appium.ByXPath(s.XPath(n))
	}

	switch {
	case n.ContentDesc != "" && s.unique(n, func(o *Node) string { return o.ContentDesc }):
		return appium.ByAccessibilityID(n.ContentDesc)
	case n.ResourceID != "" && s.unique(n, func(o *Node) string { return o.ResourceID }):
		return appium.ByID(n.ResourceID)
	case n.Text != "" && s.unique(n, func(o *Node) string { return o.Text }):
		return appium.ByUiAutomator(fmt.Sprintf("new UiSelector().text(%s)", quote(n.Text)))
	}
	return appium.ByXPath(s.XPath(n))
}

// XPath returns the absolute XPath of n, e.g.
// /hierarchy/android.widget.FrameLayout[1]/android.widget.Button[2].
func (s *Source) XPath(n *Node) string {
	var steps []string
	for p := n; p != nil; p = p.Parent {
		steps = append(steps, fmt.Sprintf("%s[%d]", p.Tag, p.index))
	}

	var b strings.Builder
	if s.wrapper != "" {
		b.WriteString("/" + s.wrapper)
	}
	for i := len(steps) - 1; i >= 0; i-- {
		b.WriteString("/" + steps[i])
	}
	return b.String()
}

func (s *Source) unique(n *Node, attr func(*Node) string) bool {
	want := attr(n)
	for _, o := range s.Nodes {
		if o != n && attr(o) == want {
			return false
		}
	}
	return true
}

// quote renders s as a double-quoted string literal for UiSelector and
// NSPredicate queries.
func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
