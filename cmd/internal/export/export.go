// Package export выгружает рассчитанные варианты закупки в XLSX и PDF.
// Суммы берутся из QuoteResult как есть, ничего не пересчитывается.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/quote"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat принимает "xlsx" (по умолчанию при пустой строке) или "pdf".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatXLSX):
		return FormatXLSX, nil
	case string(FormatPDF):
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileName - имя файла для Content-Disposition.
func (f Format) FileName(generatedAt time.Time) string {
	return fmt.Sprintf("quote-%s.%s", generatedAt.UTC().Format("20060102-150405"), f)
}

// Meta - шапка документа.
type Meta struct {
	Title       string
	GeneratedAt time.Time
}

func (m Meta) title() string {
	if m.Title == "" {
		return "Building Materials Quote"
	}
	return m.Title
}

// Write выгружает результат в выбранном формате.
func Write(w io.Writer, format Format, result quote.QuoteResult, meta Meta) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, result, meta)
	case FormatPDF:
		return WritePDF(w, result, meta)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func savingsText(p quote.Plan) string {
	if p.Savings == nil {
		return "-"
	}
	return p.Savings.StringFixed(2)
}
