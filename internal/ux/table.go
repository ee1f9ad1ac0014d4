package ux

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Tabular is implemented by anything the table formatter can render
type Tabular interface {
	// TableHeader returns the column titles
	TableHeader() []string
	// TableRows returns one row of cells per record
	TableRows() [][]string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderTable renders a Tabular value as an aligned, bordered table
func RenderTable(t Tabular, noColor bool) string {
	header := headerStyle
	border := borderStyle
	if noColor {
		header = lipgloss.NewStyle().Bold(true)
		border = lipgloss.NewStyle()
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(t.TableHeader()...).
		Rows(t.TableRows()...)

	return tbl.String()
}
