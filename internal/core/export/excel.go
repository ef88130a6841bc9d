package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter writes an .xlsx workbook with a single sheet.
type ExcelExporter struct {
	sheetName string
}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{sheetName: "Turnos"}
}

func (e *ExcelExporter) Export(table *Table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", e.sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	row := 1
	if table.Title != "" {
		titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
		if err != nil {
			return fmt.Errorf("failed to create title style: %w", err)
		}
		if err := e.setCell(f, 1, row, table.Title, titleStyle); err != nil {
			return err
		}
		row += 2
	}

	headerStyle, err := e.headerStyle(f, table.Style)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	headerRow := row
	for i, header := range table.Headers {
		if err := e.setCell(f, i+1, row, header, headerStyle); err != nil {
			return err
		}
		if width, ok := table.Style.ColumnWidths[i]; ok {
			col, _ := excelize.ColumnNumberToName(i + 1)
			if err := f.SetColWidth(e.sheetName, col, col, width); err != nil {
				return fmt.Errorf("failed to set column width: %w", err)
			}
		}
	}
	row++

	oddStyle, err := e.rowStyle(f, table.Style, table.Style.RowBgColor1)
	if err != nil {
		return fmt.Errorf("failed to create row style: %w", err)
	}
	evenStyle, err := e.rowStyle(f, table.Style, table.Style.RowBgColor2)
	if err != nil {
		return fmt.Errorf("failed to create row style: %w", err)
	}
	for i, cells := range table.Rows {
		style := oddStyle
		if i%2 == 1 {
			style = evenStyle
		}
		for col, value := range cells {
			if err := e.setCell(f, col+1, row, value, style); err != nil {
				return err
			}
		}
		row++
	}

	if table.Style.FreezeHeader {
		topLeft, _ := excelize.CoordinatesToCellName(1, headerRow+1)
		if err := f.SetPanes(e.sheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      headerRow,
			TopLeftCell: topLeft,
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("failed to freeze header: %w", err)
		}
	}

	if table.Style.AutoFilter && len(table.Headers) > 0 {
		from, _ := excelize.CoordinatesToCellName(1, headerRow)
		to, _ := excelize.CoordinatesToCellName(len(table.Headers), headerRow+len(table.Rows))
		if err := f.AutoFilter(e.sheetName, from+":"+to, nil); err != nil {
			return fmt.Errorf("failed to add auto filter: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) FileExtension() string {
	return ".xlsx"
}

func (e *ExcelExporter) setCell(f *excelize.File, col, row int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell: %w", err)
	}
	if err := f.SetCellStr(e.sheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return f.SetCellStyle(e.sheetName, cell, cell, style)
}

func (e *ExcelExporter) headerStyle(f *excelize.File, style Style) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: style.FontSize, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{strings.TrimPrefix(style.HeaderBgColor, "#")},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func (e *ExcelExporter) rowStyle(f *excelize.File, style Style, bgColor string) (int, error) {
	s := &excelize.Style{Font: &excelize.Font{Size: style.FontSize}}
	// white rows stay unfilled
	if bgColor != "" && !strings.EqualFold(bgColor, "#FFFFFF") {
		s.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{strings.TrimPrefix(bgColor, "#")},
		}
	}
	return f.NewStyle(s)
}
