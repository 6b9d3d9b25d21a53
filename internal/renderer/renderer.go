// Package renderer prints diagnostic tables for the huff command.
package renderer

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Renderer struct {
	output io.Writer
}

func NewRenderer(output io.Writer) *Renderer {
	return &Renderer{
		output: output,
	}
}

func (r *Renderer) RenderTable(header []interface{}, records [][]interface{}) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.output)
	tw.SetStyle(table.Style{
		Name: "Huff",
		Box: table.BoxStyle{
			MiddleVertical: "|",
			PaddingLeft:    " ",
			PaddingRight:   " ",
		},
		Options: table.Options{
			DoNotColorBordersAndSeparators: true,
			DrawBorder:                     false,
			SeparateColumns:                true,
			SeparateFooter:                 false,
			SeparateHeader:                 false,
			SeparateRows:                   false,
		},
		Color:  table.ColorOptionsDefault,
		Format: table.FormatOptionsDefault,
		HTML:   table.DefaultHTMLOptions,
		Title:  table.TitleOptionsDefault,
	})
	tw.AppendHeader(r.rowInterfaceToTableRow(header), table.RowConfig{})
	tw.AppendRows(r.rowsToTableRows(records), table.RowConfig{})
	tw.Render()
}

func (r *Renderer) rowsToTableRows(rows [][]interface{}) []table.Row {
	tableRows := make([]table.Row, len(rows))
	for rowIndex, rowValue := range rows {
		tableRows[rowIndex] = r.rowInterfaceToTableRow(rowValue)
	}
	return tableRows
}

func (r *Renderer) rowInterfaceToTableRow(row []interface{}) table.Row {
	tableRow := make(table.Row, len(row))
	copy(tableRow, row)
	return tableRow
}
