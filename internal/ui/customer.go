package ui

import (
	"context"

	"github.com/anisha0207/lushop/internal/domain/customers"
)

func (u *UI) customerMenu(ctx context.Context) {
	for {
		u.showCustomerPreview(ctx)

		u.printf("\n--- Customer Menu ---\n")
		u.printf("1. View details & history\n")
		u.printf("2. Make a purchase\n")
		u.printf("3. Manage payment methods\n")
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
			u.viewCustomerDetails(ctx)
		case 2:
			u.makePurchase(ctx)
		case 3:
			u.managePaymentMethods(ctx)
		default:
			u.printf("Invalid choice.\n")
		}
	}
}

// showCustomerPreview lists everyone in the system, split by subtype, so the
// operator has ids to work with before the prompts.
func (u *UI) showCustomerPreview(ctx context.Context) {
	u.printf("      CUSTOMER DATABASE PREVIEW\n")

	section := func(title string, list []customers.Customer, err error) {
		u.printf("--- %s ---\n", title)
		if err != nil {
			u.printf("Error listing %s: %v\n", title, err)
			return
		}
		u.printf("%-5s | %-20s | %s\n", "ID", "Name", "Total Exp")
		for _, c := range list {
			u.printf("%-5d | %-20s | $%.2f\n", c.ID, c.Name, c.TotalExpense)
		}
	}

	indiv, err := u.customers.ListIndividuals(ctx)
	section("INDIVIDUALS", indiv, err)
	u.printf("\n")
	bus, err := u.customers.ListBusinesses(ctx)
	section("BUSINESSES", bus, err)
}

func (u *UI) viewCustomerDetails(ctx context.Context) {
	id, ok := u.promptInt("Enter customer ID from list above: ")
	if !ok {
		return
	}

	c, err := u.customers.Get(ctx, id)
	if err != nil {
		u.printf("Error: %v\n", err)
		return
	}
	if c == nil {
		u.printf("Customer not found.\n")
		return
	}
	u.printf("\n--- Details for %s ---\n", c.Name)
	u.printf("Total Expense: $%.2f\n", c.TotalExpense)

	u.printf("Purchase History:\n")
	history, err := u.customers.History(ctx, id)
	if err != nil {
		u.printf("Error history: %v\n", err)
		return
	}
	if len(history) == 0 {
		u.printf("   (No purchases found)\n")
		return
	}
	for _, h := range history {
		u.printf(" - %s | %s | Qty: %d | $%.2f\n",
			h.Date.Format("2006-01-02"), h.Description, h.Quantity, h.PriceAtPurchase)
	}
}

func (u *UI) managePaymentMethods(ctx context.Context) {
	u.printf("\n--- Payment Methods ---\n")
	u.printf("1. View credit cards\n")
	u.printf("2. Add credit card\n")
	u.printf("3. View bank accounts\n")
	u.printf("4. Add bank account\n")
	u.printf("0. Back\n")
	u.printf("Choice: ")

	choice, ok, eof := u.readChoice()
	if eof || !ok || choice == 0 {
		return
	}

	custID, ok := u.promptInt("Enter customer ID: ")
	if !ok {
		return
	}

	switch choice {
	case 1:
		u.viewCreditCards(ctx, custID)
	case 2:
		u.addCreditCard(ctx, custID)
	case 3:
		u.viewBankAccounts(ctx, custID)
	case 4:
		u.addBankAccount(ctx, custID)
	}
}

func (u *UI) viewCreditCards(ctx context.Context, custID int64) {
	cards, err := u.payments.ListCreditCards(ctx, custID)
	if err != nil {
		u.printf("Error listing credit cards: %v\n", err)
		return
	}
	u.printf("\n--- Credit Cards on File ---\n")
	if len(cards) == 0 {
		u.printf("No credit cards found.\n")
		return
	}
	for _, c := range cards {
		u.printf("ID: %d | Card#: %s | Exp: %d/%d\n", c.ID, c.Number, c.ExpMonth, c.ExpYear)
	}
}

func (u *UI) addCreditCard(ctx context.Context, custID int64) {
	num, ok := u.promptString("Enter card number: ")
	if !ok {
		return
	}
	mm, ok := u.promptInt("Enter exp month (MM): ")
	if !ok {
		return
	}
	yy, ok := u.promptInt("Enter exp year (YYYY): ")
	if !ok {
		return
	}

	if _, err := u.payments.AddCreditCard(ctx, custID, num, int(mm), int(yy)); err != nil {
		u.printf("Error adding card: %v\n", err)
		return
	}
	u.printf("Credit card added!\n")
}

func (u *UI) viewBankAccounts(ctx context.Context, custID int64) {
	accounts, err := u.payments.ListBankAccounts(ctx, custID)
	if err != nil {
		u.printf("Error listing bank accounts: %v\n", err)
		return
	}
	u.printf("\n--- Bank Accounts on File ---\n")
	if len(accounts) == 0 {
		u.printf("No bank accounts found.\n")
		return
	}
	for _, b := range accounts {
		u.printf("ID: %d | Routing: %s | Account: %s\n", b.ID, b.RoutingNumber, b.AccountNumber)
	}
}

func (u *UI) addBankAccount(ctx context.Context, custID int64) {
	routing, ok := u.promptString("Enter routing number: ")
	if !ok {
		return
	}
	acct, ok := u.promptString("Enter account number: ")
	if !ok {
		return
	}

	if _, err := u.payments.AddBankAccount(ctx, custID, routing, acct); err != nil {
		u.printf("Error adding bank account: %v\n", err)
		return
	}
	u.printf("Bank account added!\n")
}
