package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/anisha0207/lushop/internal/domain/catalog"
	"github.com/anisha0207/lushop/internal/domain/customers"
	"github.com/anisha0207/lushop/internal/domain/purchases"
)

type Data struct {
	Spending []customers.SpendingRow
	Revenue  []catalog.RevenueRow
	PerDay   []purchases.PerDayRow
}

// Workbook renders the three manager reports into one xlsx, a sheet each.
func Workbook(d Data) (*excelize.File, error) {
	f := excelize.NewFile()

	const spending = "Spending"
	if err := f.SetSheetName("Sheet1", spending); err != nil {
		return nil, err
	}
	_ = f.SetCellValue(spending, "A1", "Name")
	_ = f.SetCellValue(spending, "B1", "Total")
	for i, row := range d.Spending {
		_ = f.SetCellValue(spending, fmt.Sprintf("A%d", i+2), row.Name)
		_ = f.SetCellValue(spending, fmt.Sprintf("B%d", i+2), row.TotalExpense)
	}

	const revenue = "Revenue"
	if _, err := f.NewSheet(revenue); err != nil {
		return nil, err
	}
	_ = f.SetCellValue(revenue, "A1", "Description")
	_ = f.SetCellValue(revenue, "B1", "Revenue")
	for i, row := range d.Revenue {
		_ = f.SetCellValue(revenue, fmt.Sprintf("A%d", i+2), row.Description)
		_ = f.SetCellValue(revenue, fmt.Sprintf("B%d", i+2), row.Revenue)
	}

	const perDay = "Purchases per day"
	if _, err := f.NewSheet(perDay); err != nil {
		return nil, err
	}
	_ = f.SetCellValue(perDay, "A1", "Date")
	_ = f.SetCellValue(perDay, "B1", "Purchases")
	for i, row := range d.PerDay {
		_ = f.SetCellValue(perDay, fmt.Sprintf("A%d", i+2), row.Day.Format("2006-01-02"))
		_ = f.SetCellValue(perDay, fmt.Sprintf("B%d", i+2), row.Count)
	}

	return f, nil
}

// Write saves the workbook at path.
func Write(path string, d Data) error {
	f, err := Workbook(d)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return f.SaveAs(path)
}
