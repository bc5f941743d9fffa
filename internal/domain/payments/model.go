package payments

type CreditCard struct {
	ID         int64
	Number     string
	ExpMonth   int
	ExpYear    int
	CustomerID int64
}

type BankAccount struct {
	ID            int64
	RoutingNumber string
	AccountNumber string
	CustomerID    int64
}
