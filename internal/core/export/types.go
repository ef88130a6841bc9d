package export

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Format is an export file format.
type Format string

const (
	FormatExcel Format = "xlsx"
	FormatCSV   Format = "csv"
	FormatPDF   Format = "pdf"
)

// ParseFormat maps a query value to a Format. Empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xlsx", "excel":
		return FormatExcel, nil
	case "csv":
		return FormatCSV, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format: %s", s)
}

// Exporter writes a Table in one file format.
type Exporter interface {
	Export(table *Table, w io.Writer) error
	ContentType() string
	FileExtension() string
}

// Table is the data handed to every exporter. Cells are preformatted.
type Table struct {
	Title     string
	CreatedAt time.Time
	Headers   []string
	Rows      [][]string
	Style     Style
}

// Style holds the xlsx and pdf presentation options; csv ignores it.
type Style struct {
	HeaderBgColor string // hex
	RowBgColor1   string
	RowBgColor2   string
	FontSize      float64
	FreezeHeader  bool
	AutoFilter    bool
	ColumnWidths  map[int]float64 // column index -> width
}

func DefaultStyle() Style {
	return Style{
		HeaderBgColor: "#4472C4",
		RowBgColor1:   "#FFFFFF",
		RowBgColor2:   "#F2F2F2",
		FontSize:      10,
		FreezeHeader:  true,
		AutoFilter:    true,
		ColumnWidths:  map[int]float64{0: 24, 3: 32},
	}
}
