package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lafermette/boutique"
	"github.com/lafermette/boutique/renderer"
)

type clientAddCmd struct {
	nom       string
	prenom    string
	email     string
	telephone string
}

func (*clientAddCmd) Name() string     { return "client-add" }
func (*clientAddCmd) Synopsis() string { return "record a new client" }
func (*clientAddCmd) Usage() string {
	return `bqt client-add -nom <nom> [-prenom <prénom>] [-email <email>] [-tel <téléphone>]

  Records a new client. The (nom, prénom) pair must not already exist.

Usage Examples:
$ bqt client-add -nom Dupont -prenom Marie -email marie@example.org
`
}

func (c *clientAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.nom, "nom", "", "Family name (required)")
	f.StringVar(&c.prenom, "prenom", "", "First name")
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.telephone, "tel", "", "Phone number")
}

func (c *clientAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	id, err := shop.AddClient(boutique.ClientInput{
		Nom:       c.nom,
		Prenom:    c.prenom,
		Email:     c.email,
		Telephone: c.telephone,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Client %d recorded.\n", id)
	return subcommands.ExitSuccess
}

type clientDeleteCmd struct {
	nom    string
	prenom string
}

func (*clientDeleteCmd) Name() string     { return "client-delete" }
func (*clientDeleteCmd) Synopsis() string { return "delete a client by name" }
func (*clientDeleteCmd) Usage() string {
	return `bqt client-delete -nom <nom> [-prenom <prénom>]

  Deletes the client matching the given name, case-insensitively.
`
}

func (c *clientDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.nom, "nom", "", "Family name (required)")
	f.StringVar(&c.prenom, "prenom", "", "First name")
}

func (c *clientDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	if err := shop.DeleteClient(c.nom, c.prenom); err != nil {
		return fail(err)
	}
	fmt.Println("Client deleted.")
	return subcommands.ExitSuccess
}

type clientListCmd struct{}

func (*clientListCmd) Name() string     { return "clients" }
func (*clientListCmd) Synopsis() string { return "display the clients table" }
func (*clientListCmd) Usage() string {
	return `bqt clients

  Displays every recorded client.
`
}

func (*clientListCmd) SetFlags(*flag.FlagSet) {}

func (c *clientListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	shop := OpenShop()
	clients, err := shop.ListClients()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ClientsMarkdown(clients))
	return subcommands.ExitSuccess
}
