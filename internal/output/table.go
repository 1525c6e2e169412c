package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/portscout/portscout/pkg/model"
)

const (
	truncateWidth = 30
	wrapWidth     = 50
)

// asciiBorder draws the classic +---+ ruled table.
var asciiBorder = lipgloss.Border{
	Top:          "-",
	Bottom:       "-",
	Left:         "|",
	Right:        "|",
	TopLeft:      "+",
	TopRight:     "+",
	BottomLeft:   "+",
	BottomRight:  "+",
	MiddleLeft:   "+",
	MiddleRight:  "+",
	Middle:       "+",
	MiddleTop:    "+",
	MiddleBottom: "+",
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(border lipgloss.Border) *table.Table {
	return table.New().
		Border(border).
		BorderRow(true).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(headers...)
}

// renderStandard draws one line per record. The wide columns are cut at a
// fixed width with an ellipsis tail so a row never wraps.
func renderStandard(records []model.EnrichedRecord) string {
	t := newTable(asciiBorder)
	for _, r := range records {
		row := fieldValues(r)
		row[colCommand] = truncate.StringWithTail(row[colCommand], truncateWidth, "...")
		row[colWorkingDir] = truncate.StringWithTail(row[colWorkingDir], truncateWidth, "...")
		t.Row(row...)
	}
	return t.Render()
}

// renderCompact keeps full values and wraps the wide columns instead. A row
// grows to the height of its tallest wrapped cell; the table pads the other
// cells with blank continuation lines.
func renderCompact(records []model.EnrichedRecord) string {
	t := newTable(lipgloss.NormalBorder())
	for _, r := range records {
		row := fieldValues(r)
		row[colCommand] = wordwrap.String(row[colCommand], wrapWidth)
		row[colWorkingDir] = wordwrap.String(row[colWorkingDir], wrapWidth)
		t.Row(row...)
	}
	return t.Render()
}
