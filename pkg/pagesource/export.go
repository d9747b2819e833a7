package pagesource

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Row is the flat export form of a node with its suggested locator.
type Row struct {
	*Node
	Using   string `json:"using"`
	Locator string `json:"locator"`
	XPath   string `json:"xpath"`
}

// Rows pairs each node with its suggested locator.
func (s *Source) Rows(nodes []*Node) []Row {
	rows := make([]Row, 0, len(nodes))
	for _, n := range nodes {
		by := s.Locator(n)
		rows = append(rows, Row{Node: n, Using: by.Strategy().String(), Locator: by.Value(), XPath: s.XPath(n)})
	}
	return rows
}

// WriteJSON writes nodes as an indented JSON array.
func (s *Source) WriteJSON(w io.Writer, nodes []*Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Rows(nodes))
}

var csvHeader = []string{"depth", "tag", "text", "id", "description", "bounds", "clickable", "enabled", "using", "locator"}

// WriteCSV writes nodes as CSV with a header row. On iOS the id column holds
// the name and the description column the label.
func (s *Source) WriteCSV(w io.Writer, nodes []*Node) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range s.Rows(nodes) {
		text, id, desc := row.Text, row.ResourceID, row.ContentDesc
		if s.Platform == IOS {
			text, id, desc = row.Value, row.Name, row.Label
		}
		b := row.Bounds
		record := []string{
			strconv.Itoa(row.Depth),
			row.Tag,
			text,
			id,
			desc,
			fmt.Sprintf("[%d,%d][%d,%d]", b.X, b.Y, b.X+b.Width, b.Y+b.Height),
			strconv.FormatBool(row.Clickable),
			strconv.FormatBool(row.Enabled),
			row.Using,
			row.Locator,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
