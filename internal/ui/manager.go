package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/anisha0207/lushop/internal/reports"
)

const defaultReportPath = "lushop_reports.xlsx"

func (u *UI) managerMenu(ctx context.Context) {
	for {
		u.printf("\n--- Manager Menu ---\n")
		u.printf("1. Report: Total spending by customer\n")
		u.printf("2. Report: Total revenue by catalog item\n")
		u.printf("3. Report: Purchases per day\n")
		u.printf("4. List all managers\n")
		u.printf("5. Manage catalog\n")
		u.printf("6. Manage installment plans\n")
		u.printf("7. Export reports to Excel\n")
		u.printf("0. Back\n")
		u.printf("Choice: ")

		choice, ok, eof := u.readChoice()
		if eof {
			return
		}
		if !ok {
			continue
		}

		switch choice {
		case 0:
			return
		case 1:
			u.reportSpendingByCustomer(ctx)
		case 2:
			u.reportRevenueByItem(ctx)
		case 3:
			u.reportPurchasesByDay(ctx)
		case 4:
			u.listManagers(ctx)
		case 5:
			u.manageCatalog(ctx)
		case 6:
			u.manageInstallmentPlans(ctx)
		case 7:
			u.exportReports(ctx)
		default:
			u.printf("Invalid choice.\n")
		}
	}
}

func (u *UI) reportSpendingByCustomer(ctx context.Context) {
	rows, err := u.customers.SpendingReport(ctx)
	if err != nil {
		u.printf("SQL error: %v\n", err)
		return
	}
	u.printf("\nTotal Spending by Customer:\n")
	u.printf("%-20s | %s\n", "Name", "Total")
	u.printf("-------------------------------\n")
	for _, r := range rows {
		u.printf("%-20s | $%.2f\n", r.Name, r.TotalExpense)
	}
}

func (u *UI) reportRevenueByItem(ctx context.Context) {
	rows, err := u.catalog.RevenueReport(ctx)
	if err != nil {
		u.printf("SQL error: %v\n", err)
		return
	}
	u.printf("\nRevenue by Item:\n")
	u.printf("%-30s | %s\n", "Item", "Revenue")
	u.printf("-------------------------------------------\n")
	for _, r := range rows {
		u.printf("%-30s | $%.2f\n", r.Description, r.Revenue)
	}
}

func (u *UI) reportPurchasesByDay(ctx context.Context) {
	rows, err := u.purchases.PerDayReport(ctx)
	if err != nil {
		u.printf("SQL error: %v\n", err)
		return
	}
	u.printf("\nPurchases per Day:\n")
	for _, r := range rows {
		u.printf("%s | %d\n", r.Day.Format("2006-01-02"), r.Count)
	}
}

func (u *UI) listManagers(ctx context.Context) {
	list, err := u.managers.List(ctx)
	if err != nil {
		u.printf("Error: %v\n", err)
		return
	}
	u.printf("\n--- Registered Managers ---\n")
	for _, m := range list {
		u.printf("%d | %s\n", m.ID, m.Name)
	}
}

func (u *UI) manageCatalog(ctx context.Context) {
	u.printf("\n--- Catalog Management ---\n")
	u.printf("1. Add new item\n")
	u.printf("2. Add new service\n")
	u.printf("3. Update item/service\n")
	u.printf("0. Back\n")
	u.printf("Choice: ")

	choice, ok, eof := u.readChoice()
	if eof || !ok {
		return
	}

	switch choice {
	case 1:
		u.addItem(ctx)
	case 2:
		u.addService(ctx)
	case 3:
		u.updateCatalog(ctx)
	}
}

func (u *UI) addItem(ctx context.Context) {
	vendor, ok := u.promptString("Enter vendor: ")
	if !ok {
		return
	}
	desc, ok := u.promptString("Enter description: ")
	if !ok {
		return
	}
	price, ok := u.promptFloat("Enter price: ")
	if !ok {
		return
	}
	managerID, ok := u.promptInt("Enter manager ID: ")
	if !ok {
		return
	}

	id, err := u.catalog.AddItem(ctx, vendor, desc, price, managerID)
	if err != nil {
		u.printf("Error adding item: %v\n", err)
		return
	}
	u.printf("Item added with ID: %d\n", id)
}

func (u *UI) addService(ctx context.Context) {
	vendor, ok := u.promptString("Enter vendor: ")
	if !ok {
		return
	}
	desc, ok := u.promptString("Enter description: ")
	if !ok {
		return
	}
	price, ok := u.promptFloat("Enter price: ")
	if !ok {
		return
	}
	duration, ok := u.promptInt("Enter duration (in days): ")
	if !ok {
		return
	}
	managerID, ok := u.promptInt("Enter manager ID: ")
	if !ok {
		return
	}

	id, err := u.catalog.AddService(ctx, vendor, desc, price, duration, managerID)
	if err != nil {
		u.printf("Error adding service: %v\n", err)
		return
	}
	u.printf("Service added with ID: %d\n", id)
}

// updateCatalog changes the price only; the rest of the row is immutable
// through this screen. Blank input leaves the price alone.
func (u *UI) updateCatalog(ctx context.Context) {
	catID, ok := u.promptInt("Enter catalog ID to update: ")
	if !ok {
		return
	}

	entry, err := u.catalog.Get(ctx, catID)
	if err != nil {
		u.printf("Error updating catalog: %v\n", err)
		return
	}
	if entry == nil {
		u.printf("Catalog ID not found.\n")
		return
	}
	u.printf("Current: %s | %s | $%.2f\n", entry.Vendor, entry.Description, entry.Price)

	line, ok := u.promptString("Enter new price (leave blank to skip): ")
	if !ok || strings.TrimSpace(line) == "" {
		return
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		u.printf("Error updating catalog: %v\n", err)
		return
	}

	if err := u.catalog.UpdatePrice(ctx, catID, price); err != nil {
		u.printf("Error updating catalog: %v\n", err)
		return
	}
	u.printf("Price updated!\n")
}

func (u *UI) manageInstallmentPlans(ctx context.Context) {
	u.printf("\n--- Installment Plan Management ---\n")
	u.printf("1. View all plans\n")
	u.printf("2. Add new plan\n")
	u.printf("0. Back\n")
	u.printf("Choice: ")

	choice, ok, eof := u.readChoice()
	if eof || !ok {
		return
	}

	switch choice {
	case 1:
		u.viewInstallmentPlans(ctx)
	case 2:
		u.addInstallmentPlan(ctx)
	}
}

func (u *UI) viewInstallmentPlans(ctx context.Context) {
	plans, err := u.installments.List(ctx)
	if err != nil {
		u.printf("Error reading plans: %v\n", err)
		return
	}
	u.printf("\n--- Installment Plans ---\n")
	u.printf("%-5s | %-10s | %s\n", "ID", "Months", "Rate")
	u.printf("--------------------------------\n")
	for _, p := range plans {
		u.printf("%-5d | %-10d | %.2f%%\n", p.ID, p.TermMonths, p.InterestRate)
	}
}

func (u *UI) addInstallmentPlan(ctx context.Context) {
	terms, ok := u.promptInt("Enter terms (months): ")
	if !ok {
		return
	}
	rate, ok := u.promptFloat("Enter interest rate: ")
	if !ok {
		return
	}
	managerID, ok := u.promptInt("Enter manager ID: ")
	if !ok {
		return
	}

	id, err := u.installments.Add(ctx, terms, rate, managerID)
	if err != nil {
		u.printf("Error adding plan: %v\n", err)
		return
	}
	u.printf("Installment plan added with ID: %d\n", id)
}

// exportReports pulls all three reports and writes them to one workbook.
func (u *UI) exportReports(ctx context.Context) {
	path, ok := u.promptString("Output file (blank for " + defaultReportPath + "): ")
	if !ok {
		return
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultReportPath
	}

	spending, err := u.customers.SpendingReport(ctx)
	if err != nil {
		u.printf("Error exporting reports: %v\n", err)
		return
	}
	revenue, err := u.catalog.RevenueReport(ctx)
	if err != nil {
		u.printf("Error exporting reports: %v\n", err)
		return
	}
	perDay, err := u.purchases.PerDayReport(ctx)
	if err != nil {
		u.printf("Error exporting reports: %v\n", err)
		return
	}

	data := reports.Data{Spending: spending, Revenue: revenue, PerDay: perDay}
	if err := reports.Write(path, data); err != nil {
		u.printf("Error exporting reports: %v\n", err)
		return
	}
	u.printf("Reports written to %s\n", path)
	u.log.Info("reports exported", "path", path)
}
