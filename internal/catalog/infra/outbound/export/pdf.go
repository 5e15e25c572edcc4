package export

import (
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/davicafu/coincatalog/internal/catalog/application"
)

const (
	rowHeight   = 7.0
	marginWidth = 10.0
)

// PDFWriter escribe el listado como una tabla en un PDF apaisado.
type PDFWriter struct{}

func NewPDFWriter() *PDFWriter {
	return &PDFWriter{}
}

func (*PDFWriter) ContentType() string { return "application/pdf" }

func (*PDFWriter) Extension() string { return "pdf" }

func (*PDFWriter) Write(w io.Writer, data *application.ExportData) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(data.Title, false)
	pdf.SetMargins(marginWidth, marginWidth, marginWidth)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, strings.ToUpper(data.Title))
	pdf.Ln(12)

	if len(data.Columns) == 0 {
		return pdf.Output(w)
	}

	pageWidth, _ := pdf.GetPageSize()
	colWidth := (pageWidth - 2*marginWidth) / float64(len(data.Columns))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, name := range data.Columns {
		pdf.CellFormat(colWidth, rowHeight, name, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range data.Rows {
		for _, field := range row {
			pdf.CellFormat(colWidth, rowHeight, tr(text(field.Value)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
