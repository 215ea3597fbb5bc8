package cmd

import (
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&clientAddCmd{}, "clients")
	c.Register(&clientDeleteCmd{}, "clients")
	c.Register(&clientListCmd{}, "clients")

	c.Register(&productAddCmd{}, "produits")
	c.Register(&productDeleteCmd{}, "produits")
	c.Register(&productListCmd{}, "produits")
	c.Register(&priceCmd{}, "produits")

	c.Register(&saleAddCmd{}, "ventes")
	c.Register(&saleDeleteCmd{}, "ventes")
	c.Register(&saleListCmd{}, "ventes")
	c.Register(&saleShowCmd{}, "ventes")

	c.Register(&expenseAddCmd{}, "dépenses")
	c.Register(&expenseDeleteCmd{}, "dépenses")
	c.Register(&expenseListCmd{}, "dépenses")
	c.Register(&expenseShowCmd{}, "dépenses")

	c.Register(&profitCmd{}, "rapports")
	c.Register(&monthlyCmd{}, "rapports")
	c.Register(&revenueCmd{}, "rapports")
	c.Register(&spendingCmd{}, "rapports")

	c.Register(&uploadCmd{}, "données")
	c.Register(&exportCmd{}, "données")
}
