package ui

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/anisha0207/lushop/internal/domain/catalog"
	"github.com/anisha0207/lushop/internal/domain/customers"
	"github.com/anisha0207/lushop/internal/domain/installments"
	"github.com/anisha0207/lushop/internal/domain/managers"
	"github.com/anisha0207/lushop/internal/domain/payments"
	"github.com/anisha0207/lushop/internal/domain/purchases"
	"github.com/anisha0207/lushop/internal/infra/notify"
)

// UI is the operator console: three menu trees over the domain repos.
// Everything is synchronous; one prompt at a time.
type UI struct {
	in  *bufio.Scanner
	out io.Writer
	log *slog.Logger

	customers    *customers.Repo
	catalog      *catalog.Repo
	payments     *payments.Repo
	purchases    *purchases.Repo
	installments *installments.Repo
	managers     *managers.Repo

	notify *notify.Telegram
}

// New takes the scanner rather than a bare reader so the credential prompt
// and the menus can share one buffered view of stdin.
func New(in *bufio.Scanner, out io.Writer, log *slog.Logger,
	customersRepo *customers.Repo, catalogRepo *catalog.Repo,
	paymentsRepo *payments.Repo, purchasesRepo *purchases.Repo,
	installmentsRepo *installments.Repo, managersRepo *managers.Repo,
	notifier *notify.Telegram) *UI {

	return &UI{
		in: in, out: out, log: log,
		customers: customersRepo, catalog: catalogRepo,
		payments: paymentsRepo, purchases: purchasesRepo,
		installments: installmentsRepo, managers: managersRepo,
		notify: notifier,
	}
}

// Run drives the top-level menu until the operator exits or stdin closes.
func (u *UI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		u.printf("\n==== LUShop Main Menu ====\n")
		u.printf("1. Customer interface\n")
		u.printf("2. Catalog interface\n")
		u.printf("3. Manager interface\n")
		u.printf("0. Exit\n")
		u.printf("Enter choice: ")

		choice, ok, eof := u.readChoice()
		if eof {
			return nil
		}
		if !ok {
			u.printf("Please input an integer.\n")
			continue
		}

		switch choice {
		case 0:
			return nil
		case 1:
			u.customerMenu(ctx)
		case 2:
			u.catalogMenu(ctx)
		case 3:
			u.managerMenu(ctx)
		default:
			u.printf("Invalid input.\n")
		}
	}
}
