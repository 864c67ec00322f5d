package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/quote"
)

// ширины колонок таблицы позиций, сумма 190 мм (A4 с полями по 10 мм)
var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Material", 52, "L"},
	{"Qty", 16, "R"},
	{"Unit", 20, "L"},
	{"Supplier", 44, "L"},
	{"Ctry", 12, "C"},
	{"Unit Price", 22, "R"},
	{"Subtotal", 24, "R"},
}

// WritePDF пишет по разделу на каждый вариант закупки.
func WritePDF(w io.Writer, result quote.QuoteResult, meta Meta) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Prices as last reported by suppliers; totals are not converted between currencies. Page %d", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(10, 10, 190, 14, "F")
	pdf.SetXY(12, 12)
	pdf.Cell(186, 10, tr(meta.title()))
	pdf.Ln(16)

	if !meta.GeneratedAt.IsZero() {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(40, 6, "Generated on:")
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(80, 6, meta.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))
		pdf.Ln(10)
	}

	for _, plan := range result.Options {
		writePlanSection(pdf, tr, plan)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	return pdf.Output(w)
}

func writePlanSection(pdf *gofpdf.Fpdf, tr func(string) string, plan quote.Plan) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(190, 9, tr(plan.Name), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, tr(plan.Description), "", 1, "L", false, 0, "")
	if plan.Coverage == quote.CoveragePartial {
		pdf.SetTextColor(180, 0, 0)
		pdf.CellFormat(190, 6, "Some requested materials could not be sourced for this option.", "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range pdfColumns {
		ln := 0
		if i == len(pdfColumns)-1 {
			ln = 1
		}
		pdf.CellFormat(col.width, 7, col.title, "1", ln, "C", true, 0, "")
	}

	pdf.SetFont("Arial", "", 9)
	for _, it := range plan.Items {
		values := []string{
			it.MaterialName,
			it.Quantity.String(),
			it.Unit,
			it.SupplierName,
			it.LocationCountry,
			it.UnitPrice.StringFixed(2),
			it.Subtotal.StringFixed(2),
		}
		for i, col := range pdfColumns {
			ln := 0
			if i == len(pdfColumns)-1 {
				ln = 1
			}
			pdf.CellFormat(col.width, 7, fit(pdf, tr(values[i]), col.width), "1", ln, col.align, false, 0, "")
		}
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(166, 8, "Total ("+plan.Currency+")", "1", 0, "R", false, 0, "")
	pdf.CellFormat(24, 8, plan.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	if plan.Savings != nil {
		pdf.CellFormat(166, 7, "Savings", "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 7, savingsText(plan), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "", 9)
	if len(plan.Pros) > 0 {
		pdf.MultiCell(190, 5, tr("Pros: "+strings.Join(plan.Pros, ", ")), "", "L", false)
	}
	if len(plan.Cons) > 0 {
		pdf.MultiCell(190, 5, tr("Cons: "+strings.Join(plan.Cons, ", ")), "", "L", false)
	}
	pdf.Ln(6)
}

// fit обрезает текст под ширину ячейки.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	const padding = 2
	if pdf.GetStringWidth(s) <= width-padding {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"..") > width-padding {
		s = s[:len(s)-1]
	}
	return s + ".."
}
