// Package pagesource parses the XML page source returned by Appium drivers
// into a flat list of nodes that can be queried offline and turned into
// locators.
package pagesource

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/devicelab-dev/appium-go/pkg/appium"
)

// Platform names as reported by Parse.
const (
	Android = "android"
	IOS     = "ios"
)

// Root elements wrapping the hierarchy.
const (
	androidRoot = "hierarchy"
	iosRoot     = "AppiumAUT"
)

// Node is one element of the page source.
type Node struct {
	// Tag is the XML element name: the widget class on Android and the
	// XCUIElementType on iOS.
	Tag string `json:"tag"`

	Bounds    appium.Rect `json:"bounds"`
	Enabled   bool        `json:"enabled"`
	Displayed bool        `json:"displayed"`
	Selected  bool        `json:"selected,omitempty"`
	Focused   bool        `json:"focused,omitempty"`
	Clickable bool        `json:"clickable,omitempty"`

	// Android
	Text        string `json:"text,omitempty"`
	ResourceID  string `json:"resourceId,omitempty"`
	ContentDesc string `json:"contentDesc,omitempty"`
	Hint        string `json:"hint,omitempty"`
	Package     string `json:"package,omitempty"`

	// iOS
	Name        string `json:"name,omitempty"`
	Label       string `json:"label,omitempty"`
	Value       string `json:"value,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`

	Depth    int     `json:"depth"`
	Parent   *Node   `json:"-"`
	Children []*Node `json:"-"`

	// index is the 1-based position among siblings with the same tag.
	index int
}

// Center returns the midpoint of the node's bounds.
func (n *Node) Center() (int, int) {
	return n.Bounds.Center()
}

// Texts returns the human readable strings of the node, most specific first.
func (n *Node) Texts() []string {
	var out []string
	for _, s := range []string{n.Text, n.ContentDesc, n.Hint, n.Label, n.Name, n.Value, n.Placeholder} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Source is a parsed page source. Nodes are in document order.
type Source struct {
	Platform string
	Nodes    []*Node

	doc   *etree.Document
	nodes map[*etree.Element]*Node
	// wrapper is the root element enclosing the nodes, empty when the
	// first node is the document root.
	wrapper string
}

// Parse parses page source XML. The platform is detected from the markup.
// Parse errors wrap appium.ErrInvalidResponse.
func Parse(data string) (*Source, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return nil, appium.ErrInvalidResponse.WithMessage("invalid page source").WithCause(err)
	}
	root := doc.Root()
	if root == nil {
		return nil, appium.ErrInvalidResponse.WithMessage("invalid page source: empty document")
	}

	platform := Android
	if root.Tag == iosRoot || strings.Contains(data, "XCUIElementType") {
		platform = IOS
	}
	src := &Source{Platform: platform, doc: doc, nodes: make(map[*etree.Element]*Node)}

	switch {
	case root.Tag == androidRoot || root.Tag == iosRoot:
		src.wrapper = root.Tag
		src.walk(root.ChildElements(), nil)
	case platform == IOS:
		src.walk([]*etree.Element{root}, nil)
	default:
		return nil, appium.ErrInvalidResponse.WithMessage("invalid page source: no hierarchy element found")
	}

	if platform == IOS && len(src.Nodes) == 0 {
		return nil, appium.ErrInvalidResponse.WithMessage("no elements found in page source")
	}
	return src, nil
}

// walk appends elements and their descendants in document order.
func (s *Source) walk(elements []*etree.Element, parent *Node) {
	seen := make(map[string]int)
	for _, el := range elements {
		node := newNode(s.Platform, el)
		seen[node.Tag]++
		node.index = seen[node.Tag]
		if parent != nil {
			node.Parent = parent
			node.Depth = parent.Depth + 1
			parent.Children = append(parent.Children, node)
		}
		s.Nodes = append(s.Nodes, node)
		s.nodes[el] = node
		s.walk(el.ChildElements(), node)
	}
}

// Select returns the nodes matching an XPath-style path, e.g.
// //android.widget.Button[@text='OK'] or the output of XPath. The supported
// syntax is the subset understood by github.com/beevik/etree.
func (s *Source) Select(path string) ([]*Node, error) {
	compiled, err := etree.CompilePath(path)
	if err != nil {
		return nil, appium.ErrInvalidArgument.WithMessage("invalid path " + path).WithCause(err)
	}
	var result []*Node
	for _, el := range s.doc.FindElementsPath(compiled) {
		if node, ok := s.nodes[el]; ok {
			result = append(result, node)
		}
	}
	return result, nil
}

func newNode(platform string, el *etree.Element) *Node {
	n := &Node{Tag: el.Tag, Displayed: true}
	if platform == IOS {
		// XCUITest omits enabled when true.
		n.Enabled = true
	}

	for _, attr := range el.Attr {
		v := attr.Value
		switch attr.Key {
		case "text":
			n.Text = v
		case "resource-id":
			n.ResourceID = v
		case "content-desc":
			n.ContentDesc = v
		case "hint":
			n.Hint = v
		case "package":
			n.Package = v
		case "bounds":
			n.Bounds = parseBounds(v)
		case "clickable":
			n.Clickable = v == "true"
		case "displayed", "visible":
			n.Displayed = v == "true"
		case "enabled":
			n.Enabled = v == "true"
		case "selected", "checked":
			n.Selected = n.Selected || v == "true"
		case "focused":
			n.Focused = v == "true"
		case "name":
			n.Name = v
		case "label":
			n.Label = v
		case "value":
			n.Value = v
		case "placeholderValue":
			n.Placeholder = v
		case "x":
			n.Bounds.X = atoi(v)
		case "y":
			n.Bounds.Y = atoi(v)
		case "width":
			n.Bounds.Width = atoi(v)
		case "height":
			n.Bounds.Height = atoi(v)
		}
	}
	if platform == IOS {
		// Every accessible iOS element can be tapped.
		n.Clickable = n.Enabled
	}
	return n
}

// parseBounds parses the Android form "[x1,y1][x2,y2]".
func parseBounds(s string) appium.Rect {
	parts := strings.Split(strings.Trim(strings.ReplaceAll(s, "][", ","), "[]"), ",")
	if len(parts) != 4 {
		return appium.Rect{}
	}
	x1, y1, x2, y2 := atoi(parts[0]), atoi(parts[1]), atoi(parts[2]), atoi(parts[3])
	return appium.Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// atoi accepts the fractional points some drivers report.
func atoi(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
