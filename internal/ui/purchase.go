package ui

import (
	"context"
	"errors"

	"github.com/anisha0207/lushop/internal/domain/catalog"
	"github.com/anisha0207/lushop/internal/domain/purchases"
	"github.com/anisha0207/lushop/internal/infra/metrics"
)

// makePurchase walks the operator through one purchase. All reads happen
// up front; the writes land in a single transaction inside the purchases
// repo, so a failure at any step leaves nothing behind.
func (u *UI) makePurchase(ctx context.Context) {
	custID, ok := u.promptInt("Enter customer ID: ")
	if !ok {
		return
	}

	cust, err := u.customers.Classify(ctx, custID)
	if err != nil {
		u.printf("Transaction failed: %v\n", err)
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return
	}
	if cust == nil {
		u.printf("Customer ID not found.\n")
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return
	}

	u.showCatalogPreview(ctx)

	catID, ok := u.promptInt("Enter catalog ID to purchase: ")
	if !ok {
		return
	}

	entry, err := u.catalog.Classify(ctx, catID)
	if err != nil {
		u.printf("Transaction failed: %v\n", err)
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return
	}
	if entry == nil {
		u.printf("Catalog ID not found.\n")
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return
	}

	if err := purchases.CheckEligibility(cust.Kind, entry.Kind); err != nil {
		switch {
		case errors.Is(err, purchases.ErrIndividualItemsOnly):
			u.printf("Error: Individuals can only buy ITEMS.\n")
		case errors.Is(err, purchases.ErrBusinessServicesOnly):
			u.printf("Error: Businesses can only buy SERVICES.\n")
		}
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return
	}

	// Any parsed integer is accepted, including non-positive quantities.
	qty, ok := u.promptInt("Enter quantity: ")
	if !ok {
		return
	}

	var payment purchases.Payment
	if entry.Kind == catalog.KindItem {
		payment, ok = u.pickItemPayment(ctx, custID)
	} else {
		payment, ok = u.pickServicePayment(ctx, custID)
	}
	if !ok {
		return
	}

	rcpt, err := u.purchases.Create(ctx, purchases.CreateParams{
		CustomerID: custID,
		CatalogID:  catID,
		Quantity:   qty,
		Payment:    payment,
	})
	if err != nil {
		u.printf("Transaction failed: %v\n", err)
		u.log.Error("purchase failed", "customer_id", custID, "catalog_id", catID, "err", err)
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return
	}

	u.printf("Purchase successful!\n")
	u.log.Info("purchase recorded",
		"purchase_id", rcpt.PurchaseID, "customer_id", rcpt.CustomerID,
		"description", rcpt.Description, "quantity", rcpt.Quantity, "unit_price", rcpt.UnitPrice)
	metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	u.notify.PurchaseRecorded(rcpt.PurchaseID, rcpt.CustomerID, rcpt.Description, rcpt.Quantity, rcpt.UnitPrice)
}

func (u *UI) showCatalogPreview(ctx context.Context) {
	u.printf("\n--- AVAILABLE CATALOG ITEMS/SERVICES ---\n")
	u.printf("%-8s | %-10s | %-35s | %s\n", "CatID", "Vendor", "Description", "Price")
	u.printf("---------------------------------------------------------------------\n")

	entries, err := u.catalog.ListAll(ctx)
	if err != nil {
		u.printf("Error showing catalog preview: %v\n", err)
		return
	}
	for _, e := range entries {
		u.printf("%-8d | %-10s | %-35s | $%.2f\n", e.ID, e.Vendor, e.Description, e.Price)
	}
	u.printf("---------------------------------------------------------------------\n")
}

// pickItemPayment lists the customer's cards, then lets the operator pick a
// card id or 0 to pay by installment plan instead.
func (u *UI) pickItemPayment(ctx context.Context, custID int64) (purchases.Payment, bool) {
	u.printf("\n--- Your Credit Cards ---\n")
	cards, err := u.payments.ListCreditCards(ctx, custID)
	if err != nil {
		u.printf("Error listing credit cards: %v\n", err)
		return purchases.Payment{}, false
	}
	for _, c := range cards {
		u.printf("%d | %s | Exp: %d/%d\n", c.ID, maskCard(c.Number), c.ExpMonth, c.ExpYear)
	}

	ccID, ok := u.promptInt("\nEnter Credit Card ID (or 0 for Installment): ")
	if !ok {
		return purchases.Payment{}, false
	}
	if ccID > 0 {
		return purchases.Payment{CreditCardID: &ccID}, true
	}

	u.showInstallmentPlans(ctx)
	instID, ok := u.promptInt("Enter Installment Plan ID: ")
	if !ok {
		return purchases.Payment{}, false
	}
	return purchases.Payment{InstallmentID: &instID}, true
}

func (u *UI) pickServicePayment(ctx context.Context, custID int64) (purchases.Payment, bool) {
	u.printf("\n--- Your Bank Accounts ---\n")
	accounts, err := u.payments.ListBankAccounts(ctx, custID)
	if err != nil {
		u.printf("Error listing bank accounts: %v\n", err)
		return purchases.Payment{}, false
	}
	for _, b := range accounts {
		u.printf("%d | Routing: %s | Account: %s\n", b.ID, b.RoutingNumber, b.AccountNumber)
	}

	bankID, ok := u.promptInt("\nEnter Bank Account ID: ")
	if !ok {
		return purchases.Payment{}, false
	}
	return purchases.Payment{BankAccountID: &bankID}, true
}

func (u *UI) showInstallmentPlans(ctx context.Context) {
	plans, err := u.installments.List(ctx)
	if err != nil {
		u.printf("Error showing installment plans: %v\n", err)
		return
	}
	u.printf("\n--- Available Installment Plans ---\n")
	u.printf("%-5s | %-10s | %s\n", "ID", "Months", "Rate")
	u.printf("--------------------------------\n")
	for _, p := range plans {
		u.printf("%-5d | %-10d | %.2f%%\n", p.ID, p.TermMonths, p.InterestRate)
	}
}
