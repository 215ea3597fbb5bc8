package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type uploadCmd struct{}

func (*uploadCmd) Name() string     { return "upload" }
func (*uploadCmd) Synopsis() string { return "merge a CSV file into one of the tables" }
func (*uploadCmd) Usage() string {
	return `bqt upload <table> <file>

  Merges the given CSV file into one of the tables: clients, produits,
  ventes or depenses. The file must carry the exact header of the
  table. Duplicates keep the uploaded version and every row gets a
  fresh identifier.

Usage Examples:
$ bqt upload clients anciens_clients.csv
`
}

func (*uploadCmd) SetFlags(*flag.FlagSet) {}

func (c *uploadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usageError(fmt.Errorf("want a table name and a file"))
	}
	table, name := f.Arg(0), f.Arg(1)

	in, err := os.Open(name)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	shop := OpenShop()
	switch table {
	case "clients":
		err = shop.UploadClients(in)
	case "produits":
		err = shop.UploadProduits(in)
	case "ventes":
		err = shop.UploadVentes(in)
	case "depenses":
		err = shop.UploadDepenses(in)
	default:
		return usageError(fmt.Errorf("unknown table %q", table))
	}
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Merged %s into %s.\n", name, table)
	return subcommands.ExitSuccess
}

type exportCmd struct {
	xlsx string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the books as CSV or as one Excel workbook" }
func (*exportCmd) Usage() string {
	return `bqt export [-xlsx <file>] [<table>]

  Without -xlsx, writes the given table (clients, produits, ventes or
  depenses) as CSV on stdout. With -xlsx, writes all four tables as
  sheets of one Excel workbook.

Usage Examples:
$ bqt export ventes > ventes.csv
$ bqt export -xlsx livres.xlsx
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.xlsx, "xlsx", "", "Write every table into this Excel workbook")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()

	if c.xlsx != "" {
		out, err := os.Create(c.xlsx)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
		if err := shop.ExportXLSX(out); err != nil {
			return fail(err)
		}
		fmt.Printf("Books written to %s.\n", c.xlsx)
		return subcommands.ExitSuccess
	}

	if f.NArg() != 1 {
		return usageError(fmt.Errorf("want a table name or -xlsx"))
	}
	var err error
	switch table := f.Arg(0); table {
	case "clients":
		err = shop.Clients.Export(os.Stdout)
	case "produits":
		err = shop.Products.Export(os.Stdout)
	case "ventes":
		err = shop.Sales.Export(os.Stdout)
	case "depenses":
		err = shop.Expenses.Export(os.Stdout)
	default:
		return usageError(fmt.Errorf("unknown table %q", table))
	}
	if err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
