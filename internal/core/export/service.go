// Package export renders tabular data as xlsx, csv or pdf downloads.
package export

import (
	"bytes"
	"fmt"
	"io"
)

type Service struct {
	exporters map[Format]Exporter
}

func NewService() *Service {
	return &Service{
		exporters: map[Format]Exporter{
			FormatExcel: NewExcelExporter(),
			FormatCSV:   NewCSVExporter(),
			FormatPDF:   NewPDFExporter(),
		},
	}
}

func (s *Service) exporter(format Format) (Exporter, error) {
	e, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	return e, nil
}

// Export renders table and returns the bytes with their content type.
func (s *Service) Export(table *Table, format Format) ([]byte, string, error) {
	e, err := s.exporter(format)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := e.Export(table, &buf); err != nil {
		return nil, "", fmt.Errorf("export failed: %w", err)
	}
	return buf.Bytes(), e.ContentType(), nil
}

func (s *Service) ExportToWriter(table *Table, format Format, w io.Writer) error {
	e, err := s.exporter(format)
	if err != nil {
		return err
	}
	return e.Export(table, w)
}

// FileName returns base with the format's extension.
func (s *Service) FileName(base string, format Format) string {
	e, err := s.exporter(format)
	if err != nil {
		return base + ".bin"
	}
	return base + e.FileExtension()
}
