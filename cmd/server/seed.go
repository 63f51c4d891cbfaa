package main

import (
	"ctchen222/acme-store/internal/seed"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	if err := a.prepareSchema(ctx, true); err != nil {
		return err
	}
	res, err := seed.Run(ctx, a.services)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Seeded favorites for %s (user %d)", res.User.Username, res.User.ID)
	t.AppendHeader(table.Row{"Favorite ID", "Product ID", "Product"})
	for i, fav := range res.Favorites {
		t.AppendRow(table.Row{fav.ID, fav.ProductID, res.Products[i].Name})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
