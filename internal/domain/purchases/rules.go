package purchases

import (
	"errors"

	"github.com/anisha0207/lushop/internal/domain/catalog"
	"github.com/anisha0207/lushop/internal/domain/customers"
)

var (
	ErrCustomerNotFound     = errors.New("customer ID not found")
	ErrCatalogNotFound      = errors.New("catalog ID not found")
	ErrIndividualItemsOnly  = errors.New("individuals can only buy ITEMS")
	ErrBusinessServicesOnly = errors.New("businesses can only buy SERVICES")
	ErrPaymentShape         = errors.New("payment does not match the purchase type")
)

// CheckEligibility enforces the subtype pairing: individuals buy items,
// businesses buy services.
func CheckEligibility(ck customers.Kind, ek catalog.Kind) error {
	switch {
	case ck == customers.KindIndividual && ek != catalog.KindItem:
		return ErrIndividualItemsOnly
	case ck == customers.KindBusiness && ek != catalog.KindService:
		return ErrBusinessServicesOnly
	}
	return nil
}

// Validate checks the instrument shape against the purchase subtype: an item
// purchase references a credit card XOR an installment plan, a service
// purchase references a bank account and nothing else.
func (p Payment) Validate(kind catalog.Kind) error {
	switch kind {
	case catalog.KindItem:
		if p.BankAccountID != nil {
			return ErrPaymentShape
		}
		if (p.CreditCardID != nil) == (p.InstallmentID != nil) {
			return ErrPaymentShape
		}
	case catalog.KindService:
		if p.CreditCardID != nil || p.InstallmentID != nil || p.BankAccountID == nil {
			return ErrPaymentShape
		}
	default:
		return ErrPaymentShape
	}
	return nil
}
