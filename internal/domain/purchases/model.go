package purchases

import (
	"time"

	"github.com/anisha0207/lushop/internal/domain/catalog"
)

// Payment selects exactly one stored instrument. Item purchases take a credit
// card or an installment plan; service purchases take a bank account.
type Payment struct {
	CreditCardID  *int64
	InstallmentID *int64
	BankAccountID *int64
}

type CreateParams struct {
	CustomerID int64
	CatalogID  int64
	Quantity   int64
	Payment    Payment
}

// Receipt describes a committed purchase. UnitPrice is the catalog price
// snapshotted into the line row.
type Receipt struct {
	PurchaseID  int64
	CustomerID  int64
	Description string
	Kind        catalog.Kind
	Quantity    int64
	UnitPrice   float64
}

type PerDayRow struct {
	Day   time.Time
	Count int64
}
