package cmd

import (
	"context"
	"fmt"

	"github.com/dedene/metricool-cli/internal/output"
)

type BrandsCmd struct{}

func (c *BrandsCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	mode, err := resolveOutputMode(flags)
	if err != nil {
		return err
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	raw, brands, err := client.ListBrands(ctx)
	if err != nil {
		return fmt.Errorf("list brands: %w", err)
	}

	if mode.JSON {
		return output.WriteRawJSON(stdout, raw, "[]")
	}

	if len(brands) == 0 {
		fmt.Fprintln(stdout, "No brands found.")

		return nil
	}

	if !mode.Plain {
		fmt.Fprintf(stdout, "Metricool Brands\n\n")
	}

	tbl := output.NewTableWriter(stdout, mode.Plain)
	tbl.AddRow("ID", "LABEL", "NETWORKS")

	for _, b := range brands {
		tbl.AddRow(output.FormatBrand(b)...)
	}

	return tbl.Flush()
}
