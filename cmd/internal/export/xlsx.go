package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/zhukovvlad/buildprice-go/cmd/internal/quote"
)

const summarySheet = "Summary"

// moneyFormat - встроенный формат excel "0.00".
const moneyFormat = 2

// WriteXLSX пишет книгу: лист Summary и по листу на каждый вариант.
func WriteXLSX(w io.Writer, result quote.QuoteResult, meta Meta) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return err
	}

	if err := writeSummary(f, result, meta, headerStyle, moneyStyle); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}
	for _, plan := range result.Options {
		if err := writePlanSheet(f, plan, headerStyle, moneyStyle); err != nil {
			return fmt.Errorf("sheet %q: %w", plan.Name, err)
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func writeSummary(f *excelize.File, result quote.QuoteResult, meta Meta, headerStyle, moneyStyle int) error {
	if err := f.SetCellValue(summarySheet, "A1", meta.title()); err != nil {
		return err
	}
	if !meta.GeneratedAt.IsZero() {
		if err := f.SetCellValue(summarySheet, "A2", "Generated "+meta.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")); err != nil {
			return err
		}
	}

	header := []interface{}{"Option", "Total", "Currency", "Savings", "Coverage", "Items", "Pros", "Cons"}
	if err := f.SetSheetRow(summarySheet, "A4", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A4", "H4", headerStyle); err != nil {
		return err
	}

	for i, plan := range result.Options {
		row := 5 + i
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []interface{}{
			plan.Name,
			plan.Total.InexactFloat64(),
			plan.Currency,
			savingsText(plan),
			string(plan.Coverage),
			len(plan.Items),
			strings.Join(plan.Pros, "; "),
			strings.Join(plan.Cons, "; "),
		}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return err
		}
		totalCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellStyle(summarySheet, totalCell, totalCell, moneyStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 22); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "G", "H", 45)
}

func writePlanSheet(f *excelize.File, plan quote.Plan, headerStyle, moneyStyle int) error {
	sheet := sheetName(plan.Name)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", plan.Name); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A2", plan.Description); err != nil {
		return err
	}

	header := []interface{}{"Material", "Quantity", "Unit", "Supplier", "Country", "Unit Price", "Subtotal", "Currency"}
	if err := f.SetSheetRow(sheet, "A4", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A4", "H4", headerStyle); err != nil {
		return err
	}

	row := 5
	for _, it := range plan.Items {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []interface{}{
			it.MaterialName,
			it.Quantity.InexactFloat64(),
			it.Unit,
			it.SupplierName,
			it.LocationCountry,
			it.UnitPrice.InexactFloat64(),
			it.Subtotal.InexactFloat64(),
			it.Currency,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		from, _ := excelize.CoordinatesToCellName(6, row)
		to, _ := excelize.CoordinatesToCellName(7, row)
		if err := f.SetCellStyle(sheet, from, to, moneyStyle); err != nil {
			return err
		}
		row++
	}

	totalLabel, _ := excelize.CoordinatesToCellName(6, row)
	totalCell, _ := excelize.CoordinatesToCellName(7, row)
	if err := f.SetCellValue(sheet, totalLabel, "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, totalCell, plan.Total.InexactFloat64()); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, totalLabel, totalCell, headerStyle); err != nil {
		return err
	}

	return f.SetColWidth(sheet, "A", "A", 28)
}

// sheetName укладывает название в ограничения excel (31 символ, без []:*?/\).
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '-'
		}
		return r
	}, name)
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	return name
}
