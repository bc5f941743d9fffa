package catalog

// Kind tags which subtype table a catalog id appears in.
type Kind string

const (
	KindItem    Kind = "item"
	KindService Kind = "service"
)

type Entry struct {
	ID          int64
	Vendor      string
	Description string
	Price       float64
	ManagerID   int64
	Kind        Kind
	// DurationDays is meaningful only for services.
	DurationDays int64
}

type RevenueRow struct {
	Description string
	Revenue     float64
}
