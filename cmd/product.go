package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lafermette/boutique"
	"github.com/lafermette/boutique/renderer"
	"github.com/shopspring/decimal"
)

type productAddCmd struct {
	nom  string
	prix string
}

func (*productAddCmd) Name() string     { return "produit-add" }
func (*productAddCmd) Synopsis() string { return "record a new product and its price per kilogram" }
func (*productAddCmd) Usage() string {
	return `bqt produit-add -nom <nom> -prix <prix au kg>

  Records a new product. The name must not already exist.

Usage Examples:
$ bqt produit-add -nom Tomates -prix 3.50
`
}

func (c *productAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.nom, "nom", "", "Product name (required)")
	f.StringVar(&c.prix, "prix", "", "Price per kilogram (required)")
}

func (c *productAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prix, err := decimal.NewFromString(c.prix)
	if err != nil {
		return usageError(fmt.Errorf("invalid price %q: %w", c.prix, err))
	}
	shop := OpenShop()
	id, err := shop.AddProduct(boutique.ProductInput{Nom: c.nom, Prix: prix})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Produit %d recorded.\n", id)
	return subcommands.ExitSuccess
}

type productDeleteCmd struct {
	nom string
}

func (*productDeleteCmd) Name() string     { return "produit-delete" }
func (*productDeleteCmd) Synopsis() string { return "delete a product by name" }
func (*productDeleteCmd) Usage() string {
	return `bqt produit-delete -nom <nom>

  Deletes the product matching the given name, case-insensitively.
`
}

func (c *productDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.nom, "nom", "", "Product name (required)")
}

func (c *productDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	if err := shop.DeleteProduct(c.nom); err != nil {
		return fail(err)
	}
	fmt.Println("Produit deleted.")
	return subcommands.ExitSuccess
}

type productListCmd struct{}

func (*productListCmd) Name() string     { return "produits" }
func (*productListCmd) Synopsis() string { return "display the products table" }
func (*productListCmd) Usage() string {
	return `bqt produits

  Displays every recorded product and its current price per kilogram.
`
}

func (*productListCmd) SetFlags(*flag.FlagSet) {}

func (c *productListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	produits, err := shop.ListProducts()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ProductsMarkdown(produits))
	return subcommands.ExitSuccess
}

type priceCmd struct {
	nom  string
	prix string
}

func (*priceCmd) Name() string     { return "prix" }
func (*priceCmd) Synopsis() string { return "change the price per kilogram of a product" }
func (*priceCmd) Usage() string {
	return `bqt prix -nom <nom> -prix <prix au kg>

  Updates a product's price. Past sale lines keep the price they were
  recorded with.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.nom, "nom", "", "Product name (required)")
	f.StringVar(&c.prix, "prix", "", "New price per kilogram (required)")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prix, err := decimal.NewFromString(c.prix)
	if err != nil {
		return usageError(fmt.Errorf("invalid price %q: %w", c.prix, err))
	}
	shop := OpenShop()
	if err := shop.SetPrice(c.nom, prix); err != nil {
		return fail(err)
	}
	fmt.Printf("Prix of %s set to %s.\n", c.nom, boutique.M(prix))
	return subcommands.ExitSuccess
}
