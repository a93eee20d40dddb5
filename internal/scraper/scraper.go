// Package scraper turns the portal's HTML report page into attendance
// records. The page is not an API: it is a plain report table whose column
// layout is fixed at [1]=employee number, [2]=name, [3]=timestamp.
package scraper

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tanabodee/attendly/internal/constants"
	apperrors "github.com/tanabodee/attendly/internal/errors"
	"github.com/tanabodee/attendly/internal/models"
)

// Parse extracts attendance records from a raw HTML document.
//
// Row 0 of the table is the header and is skipped. Rows with fewer than four
// cells or an empty timestamp cell are tolerated by skipping them, not by
// failing the parse. A document with no table rows at all is a valid empty
// result only when it is short or carries the portal's no-data marker;
// anything else (error page, captcha wall) is a StructureError.
func Parse(doc string) ([]models.AttendanceRecord, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, &apperrors.StructureError{Reason: err.Error()}
	}

	rows := elementsByTag(root, "tr")
	if len(rows) == 0 {
		if len(doc) < constants.MinDocumentSize || strings.Contains(doc, constants.NoDataMarker) {
			return []models.AttendanceRecord{}, nil
		}
		return nil, &apperrors.StructureError{Reason: "no table rows found"}
	}

	records := make([]models.AttendanceRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		cells := elementsByTag(row, "td")
		if len(cells) < 4 {
			continue
		}

		timestamp := strings.TrimSpace(nodeText(cells[3]))
		if timestamp == "" {
			continue
		}

		name := strings.TrimSpace(nodeText(cells[2]))
		if name == "" {
			name = "Unknown"
		}

		records = append(records, models.AttendanceRecord{
			Seq:       i + 1,
			EmpNo:     strings.TrimSpace(nodeText(cells[1])),
			Name:      name,
			Timestamp: timestamp,
		})
	}

	return records, nil
}

// elementsByTag collects descendant elements with the given tag in document
// order. Matched elements are not descended into: a table nested inside a
// row's cell contributes no rows of its own. The report table is flat, so
// the only effect is that junk markup inside a cell cannot duplicate rows.
func elementsByTag(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
			continue
		}
		out = append(out, elementsByTag(c, tag)...)
	}
	return out
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
