package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dedene/metricool-cli/internal/api"
	"github.com/dedene/metricool-cli/internal/output"
)

const defaultRangeDays = 7

type ScheduledCmd struct {
	Start string `help:"Start date YYYY-MM-DD (default: today)"`
	End   string `help:"End date YYYY-MM-DD (default: today + 7 days)"`
	Blog  string `help:"Blog (brand) ID; defaults to the first brand"`
}

// DefaultRange returns today and today+7 days as UTC calendar dates.
func DefaultRange(at time.Time) (string, string) {
	at = at.UTC()

	return output.FormatDate(at), output.FormatDate(at.AddDate(0, 0, defaultRangeDays))
}

// dateRange applies defaults and validates the requested range.
func dateRange(start, end string, at time.Time) (string, string, error) {
	defStart, defEnd := DefaultRange(at)

	start = strings.TrimSpace(start)
	if start == "" {
		start = defStart
	}

	end = strings.TrimSpace(end)
	if end == "" {
		end = defEnd
	}

	s, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return "", "", &api.ValidationError{Field: "start", Msg: fmt.Sprintf("%q is not a YYYY-MM-DD date", start)}
	}

	e, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return "", "", &api.ValidationError{Field: "end", Msg: fmt.Sprintf("%q is not a YYYY-MM-DD date", end)}
	}

	if e.Before(s) {
		return "", "", &api.ValidationError{Field: "end", Msg: fmt.Sprintf("%s is before start %s", end, start)}
	}

	return start, end, nil
}

func (c *ScheduledCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	start, end, err := dateRange(c.Start, c.End, now())
	if err != nil {
		return err
	}

	mode, err := resolveOutputMode(flags)
	if err != nil {
		return err
	}

	loc, err := resolveLocation()
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

	raw, posts, err := client.ListScheduledPosts(ctx, api.ListScheduledOptions{
		BlogID:   blog,
		Start:    start,
		End:      end,
		Timezone: loc.String(),
	})
	if err != nil {
		return fmt.Errorf("list scheduled posts: %w", err)
	}

	if mode.JSON {
		return output.WriteRawJSON(stdout, raw, "[]")
	}

	if mode.Plain {
		tbl := output.NewTableWriter(stdout, mode.Plain)
		tbl.AddRow("ID", "DATE", "NETWORKS", "TEXT")

		for _, p := range posts {
			tbl.AddRow(p.ID, output.FormatPostTime(p.ScheduledAt, p.RawDate, loc), output.PostNetworks(p), output.Truncate(p.Text(), 50))
		}

		return tbl.Flush()
	}

	fmt.Fprintf(stdout, "Scheduled Posts (%s to %s)\n\n", start, end)

	if len(posts) == 0 {
		fmt.Fprintln(stdout, "No scheduled posts in this range.")

		return nil
	}

	for i, p := range posts {
		fmt.Fprintf(stdout, "%d. %s\n", i+1, output.FormatPostTime(p.ScheduledAt, p.RawDate, loc))
		fmt.Fprintf(stdout, "   Networks: %s\n", output.PostNetworks(p))
		fmt.Fprintf(stdout, "   Text:     %q\n", output.Truncate(p.Text(), 50))

		for _, m := range p.Media {
			fmt.Fprintf(stdout, "   Media:    %s %s\n", m.Type, m.URL)
		}

		if p.ID != "" {
			fmt.Fprintf(stdout, "   ID:       %s\n", p.ID)
		}

		fmt.Fprintln(stdout)
	}

	fmt.Fprintf(stdout, "Total: %d scheduled posts\n", len(posts))

	return nil
}
