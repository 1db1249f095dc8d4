package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(ColorDimGray)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RecordTable renders configuration record pairs as a KEY/VALUE table in the
// given key order. Keys are styled as nouns.
func RecordTable(keys []string, values map[string]string) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers("KEY", "VALUE").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableCellStyle.Inherit(StyleHeader)
			case col == 0:
				return tableCellStyle.Inherit(StyleNoun)
			default:
				return tableCellStyle
			}
		})

	for _, k := range keys {
		tbl.Row(k, values[k])
	}
	return tbl.String()
}
