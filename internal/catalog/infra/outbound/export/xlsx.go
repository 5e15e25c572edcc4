package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/davicafu/coincatalog/internal/catalog/application"
)

const sheetName = "Sheet1"

// XLSXWriter escribe el listado como un libro de Excel con una hoja.
type XLSXWriter struct{}

func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

func (*XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (*XLSXWriter) Extension() string { return "xlsx" }

func (*XLSXWriter) Write(w io.Writer, data *application.ExportData) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(sheetName, data.Title); err != nil {
		return err
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	for col, name := range data.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(data.Title, cell, name); err != nil {
			return err
		}
	}
	if len(data.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(data.Columns), 1)
		if err := f.SetCellStyle(data.Title, "A1", last, header); err != nil {
			return err
		}
	}

	for i, row := range data.Rows {
		for col, field := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(data.Title, cell, cellValue(field.Value)); err != nil {
				return fmt.Errorf("cell %s: %w", cell, err)
			}
		}
	}

	_, err = f.WriteTo(w)
	return err
}
