// Package pdf renderiza los reportes de la consola con Maroto v2: título,
// tabla con cabecera y pie con la fecha de generación, el mismo layout que
// producía el visor del portal.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/comercio-admin/internal/application/export"
)

var _ export.ReportGenerator = (*MarotoReportGenerator)(nil)

// Paleta del portal.
var (
	colorPrimary = &props.Color{Red: 40, Green: 116, Blue: 240}
	colorGray    = &props.Color{Red: 119, Green: 119, Blue: 119}
	colorGreen   = &props.Color{Red: 0, Green: 128, Blue: 0}
	colorRed     = &props.Color{Red: 200, Green: 0, Blue: 0}
)

// MarotoReportGenerator implementa export.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate renderiza el reporte y devuelve los bytes del PDF.
func (g *MarotoReportGenerator) Generate(_ context.Context, report export.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	sizes := columnSizes(len(report.Columns))

	m.AddRows(titleRow(report.Title))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))
	m.AddRows(headerRow(report.Columns, sizes))
	for _, cells := range report.Rows {
		m.AddRows(dataRow(cells, sizes))
	}
	m.AddRows(line.NewRow(4, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// columnSizes reparte las 12 columnas de la grilla: la primera (#) angosta y
// el resto en partes iguales, con el sobrante en la segunda (el nombre).
func columnSizes(n int) []int {
	if n <= 1 {
		return []int{12}
	}
	sizes := make([]int, n)
	sizes[0] = 1
	rest := 12 - 1
	each := rest / (n - 1)
	for i := 1; i < n; i++ {
		sizes[i] = each
	}
	sizes[1] += rest - each*(n-1)
	return sizes
}

func titleRow(title string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 2,
		})),
	)
}

func headerRow(columns []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, label := range columns {
		cols = append(cols, col.New(sizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Left: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func dataRow(cells []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		cols = append(cols, col.New(sizes[i]).Add(text.New(cell, cellProps(cell))))
	}
	return row.New(7).Add(cols...)
}

// cellProps colorea las celdas de estado igual que el listado: verde activo,
// rojo deshabilitado.
func cellProps(cell string) props.Text {
	switch cell {
	case "Active":
		return props.Text{Size: 8, Top: 1, Left: 1, Style: fontstyle.Bold, Color: colorGreen}
	case "Disabled":
		return props.Text{Size: 8, Top: 1, Left: 1, Style: fontstyle.Bold, Color: colorRed}
	}
	return props.Text{Size: 8, Top: 1, Left: 1}
}

func footerRow(report export.Report) core.Row {
	generated := report.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(6).Add(
		col.New(12).Add(text.New(
			"Generated on "+generated+" | Ecommerce Admin Portal",
			props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1},
		)),
	)
}
