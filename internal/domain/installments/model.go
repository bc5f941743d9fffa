package installments

type Plan struct {
	ID           int64
	TermMonths   int64
	InterestRate float64
	ManagerID    int64
}
