package pagesource

import (
	"regexp"
	"sort"
	"strings"
)

// Query selects nodes. Zero fields match everything.
type Query struct {
	// Text matches any of the node's texts case-insensitively. It is treated
	// as a regular expression when it looks like one.
	Text string
	// ID is a substring of the resource-id (Android) or name (iOS).
	ID string
	// Tag is the exact element name.
	Tag string

	Enabled   *bool
	Selected  *bool
	Focused   *bool
	Clickable bool
}

// Find returns the nodes matching q in document order.
func (s *Source) Find(q Query) []*Node {
	return s.Filter(s.Nodes, q)
}

// Filter returns the nodes of nodes matching q, keeping their order.
func (s *Source) Filter(nodes []*Node, q Query) []*Node {
	var result []*Node
	for _, n := range nodes {
		if q.matches(n, s.Platform) {
			result = append(result, n)
		}
	}
	return result
}

func (q Query) matches(n *Node, platform string) bool {
	if q.Text != "" && !matchesText(q.Text, n.Texts()...) {
		return false
	}
	if q.ID != "" {
		id := n.ResourceID
		if platform == IOS {
			id = n.Name
		}
		if !strings.Contains(id, q.ID) {
			return false
		}
	}
	if q.Tag != "" && n.Tag != q.Tag {
		return false
	}
	if q.Clickable && !n.Clickable {
		return false
	}
	if q.Enabled != nil && n.Enabled != *q.Enabled {
		return false
	}
	if q.Selected != nil && n.Selected != *q.Selected {
		return false
	}
	if q.Focused != nil && n.Focused != *q.Focused {
		return false
	}
	return true
}

// Deepest returns the most nested of nodes, the first one on ties.
func Deepest(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return nil
	}
	deepest := nodes[0]
	for _, n := range nodes[1:] {
		if n.Depth > deepest.Depth {
			deepest = n
		}
	}
	return deepest
}

// Tappable returns n if it is clickable, else its nearest clickable ancestor,
// else n itself. Text nodes inside clickable containers resolve to the container.
func Tappable(n *Node) *Node {
	for p := n; p != nil; p = p.Parent {
		if p.Clickable {
			return p
		}
	}
	return n
}

// Below returns the nodes starting under anchor, nearest first.
func Below(nodes []*Node, anchor *Node) []*Node {
	bottom := anchor.Bounds.Y + anchor.Bounds.Height
	return sortedBy(nodes, anchor, func(n *Node) (int, bool) {
		return n.Bounds.Y - bottom, n.Bounds.Y >= bottom
	})
}

// Above returns the nodes ending over anchor, nearest first.
func Above(nodes []*Node, anchor *Node) []*Node {
	return sortedBy(nodes, anchor, func(n *Node) (int, bool) {
		end := n.Bounds.Y + n.Bounds.Height
		return anchor.Bounds.Y - end, end <= anchor.Bounds.Y
	})
}

// LeftOf returns the nodes ending left of anchor, nearest first.
func LeftOf(nodes []*Node, anchor *Node) []*Node {
	return sortedBy(nodes, anchor, func(n *Node) (int, bool) {
		end := n.Bounds.X + n.Bounds.Width
		return anchor.Bounds.X - end, end <= anchor.Bounds.X
	})
}

// RightOf returns the nodes starting right of anchor, nearest first.
func RightOf(nodes []*Node, anchor *Node) []*Node {
	right := anchor.Bounds.X + anchor.Bounds.Width
	return sortedBy(nodes, anchor, func(n *Node) (int, bool) {
		return n.Bounds.X - right, n.Bounds.X >= right
	})
}

// Inside returns the nodes whose bounds lie within outer's bounds.
func Inside(nodes []*Node, outer *Node) []*Node {
	var result []*Node
	for _, n := range nodes {
		if n != outer && contains(outer, n) {
			result = append(result, n)
		}
	}
	return result
}

func contains(outer, inner *Node) bool {
	o, i := outer.Bounds, inner.Bounds
	return i.X >= o.X && i.Y >= o.Y &&
		i.X+i.Width <= o.X+o.Width &&
		i.Y+i.Height <= o.Y+o.Height
}

// sortedBy keeps the nodes dist accepts and orders them by distance. The sort
// is stable so document order breaks ties.
func sortedBy(nodes []*Node, anchor *Node, dist func(*Node) (int, bool)) []*Node {
	type scored struct {
		node *Node
		d    int
	}
	var kept []scored
	for _, n := range nodes {
		if n == anchor {
			continue
		}
		if d, ok := dist(n); ok {
			kept = append(kept, scored{n, d})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].d < kept[j].d })

	result := make([]*Node, len(kept))
	for i, k := range kept {
		result[i] = k.node
	}
	return result
}

func matchesText(pattern string, texts ...string) bool {
	if looksLikeRegex(pattern) {
		if re, err := regexp.Compile("(?i)" + pattern); err == nil {
			for _, text := range texts {
				if re.MatchString(text) || re.MatchString(strings.ReplaceAll(text, "\n", " ")) {
					return true
				}
			}
			return false
		}
	}
	for _, text := range texts {
		if strings.Contains(strings.ToLower(text), strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// looksLikeRegex reports whether text uses regex metacharacters. A lone period
// ("example.com") is literal; ".*", ".+" and ".?" are not.
func looksLikeRegex(text string) bool {
	for i := 0; i < len(text); i++ {
		if i > 0 && text[i-1] == '\\' {
			continue
		}
		switch text[i] {
		case '.':
			if i+1 < len(text) && strings.ContainsRune("*+?", rune(text[i+1])) {
				return true
			}
		case '*', '+', '?', '[', ']', '{', '}', '|', '(', ')':
			return true
		case '^':
			if i == 0 {
				return true
			}
		case '$':
			if i == len(text)-1 {
				return true
			}
		}
	}
	return false
}
