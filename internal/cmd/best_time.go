package cmd

import (
	"context"
	"fmt"

	"github.com/dedene/metricool-cli/internal/api"
	"github.com/dedene/metricool-cli/internal/output"
)

type BestTimeCmd struct {
	Platform string `arg:"" help:"Platform (linkedin, x, bluesky, threads, instagram, facebook, ...)"`
	Blog     string `help:"Blog (brand) ID; defaults to the first brand"`
	Top      int    `help:"Number of slots to show" default:"5"`
}

func (c *BestTimeCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	network, err := api.PlatformCode(c.Platform)
	if err != nil {
		return err
	}

	mode, err := resolveOutputMode(flags)
	if err != nil {
		return err
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	blog, err := resolveBlog(ctx, client, c.Blog)
	if err != nil {
		return err
	}

	result, err := client.BestTime(ctx, blog, network)
	if err != nil {
		return fmt.Errorf("best time: %w", err)
	}

	if mode.JSON {
		return output.WriteRawJSON(stdout, result, "null")
	}

	slots, ok := api.BestTimesFromJSON(result)
	if !ok {
		fmt.Fprintf(stdout, "Best time to post on %s\n\n", api.PlatformLabel(network))

		return output.WriteRawJSON(stdout, result, "null")
	}

	if c.Top > 0 && len(slots) > c.Top {
		slots = slots[:c.Top]
	}

	if !mode.Plain {
		fmt.Fprintf(stdout, "Best time to post on %s\n\n", api.PlatformLabel(network))

		if len(slots) == 0 {
			fmt.Fprintln(stdout, "No recommendations available yet.")

			return nil
		}
	}

	tbl := output.NewTableWriter(stdout, mode.Plain)
	tbl.AddRow("RANK", "DAY", "HOUR", "SCORE")

	for i, s := range slots {
		tbl.AddRow(output.FormatBestTime(i+1, s)...)
	}

	return tbl.Flush()
}
