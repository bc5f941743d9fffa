package customers

import "time"

// Kind tags which subtype table a customer id appears in. Exactly one holds
// per customer.
type Kind string

const (
	KindIndividual Kind = "individual"
	KindBusiness   Kind = "business"
)

type Customer struct {
	ID           int64
	Name         string
	TotalExpense float64
	Kind         Kind
}

// HistoryEntry is one purchased line, item or service alike. The price is the
// catalog price snapshotted when the purchase was recorded.
type HistoryEntry struct {
	Date            time.Time
	Description     string
	Quantity        int64
	PriceAtPurchase float64
}

type SpendingRow struct {
	Name         string
	TotalExpense float64
}
