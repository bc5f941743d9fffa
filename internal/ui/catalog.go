package ui

import "context"

func (u *UI) catalogMenu(ctx context.Context) {
	for {
		u.printf("\n=== Featured Catalog Preview ===\n")
		u.printf("Item Ex:    101 | JBL | Wireless Headphones  | $99.99\n")
		u.printf("Service Ex: 102 | Apple | iPhone Screen Repair | $200.00 | 14 days\n")

		u.printf("\n--- Catalog Menu ---\n")
		u.printf("1. List all items\n")
		u.printf("2. List all services\n")
		u.printf("3. Search catalog by keyword\n")
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
			u.listItems(ctx)
		case 2:
			u.listServices(ctx)
		case 3:
			u.searchCatalog(ctx)
		default:
			u.printf("Invalid choice.\n")
		}
	}
}

func (u *UI) listItems(ctx context.Context) {
	items, err := u.catalog.ListItems(ctx)
	if err != nil {
		u.printf("Error: %v\n", err)
		return
	}
	u.printf("\n--- All Items ---\n")
	for _, e := range items {
		u.printf("%d | %s | %s | $%.2f\n", e.ID, e.Vendor, e.Description, e.Price)
	}
}

func (u *UI) listServices(ctx context.Context) {
	services, err := u.catalog.ListServices(ctx)
	if err != nil {
		u.printf("Error: %v\n", err)
		return
	}
	u.printf("\n--- All Services ---\n")
	for _, e := range services {
		u.printf("%d | %s | %s | $%.2f | %d days\n", e.ID, e.Vendor, e.Description, e.Price, e.DurationDays)
	}
}

func (u *UI) searchCatalog(ctx context.Context) {
	keyword, ok := u.promptString("Enter keyword: ")
	if !ok {
		return
	}

	matches, err := u.catalog.Search(ctx, keyword)
	if err != nil {
		u.printf("SQL error: %v\n", err)
		return
	}

	u.printf("\nSearch Results:\n")
	if len(matches) == 0 {
		u.printf("No matches.\n")
		return
	}
	for _, e := range matches {
		u.printf("%d | %s | %s | $%.2f\n", e.ID, e.Vendor, e.Description, e.Price)
	}
}
