package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dedene/metricool-cli/internal/api"
)

// Table provides simple table output using tabwriter.
type Table struct {
	w *tabwriter.Writer
}

type TableWriter interface {
	AddRow(cols ...string)
	Flush() error
}

type PlainTable struct {
	w io.Writer
}

func (t *PlainTable) AddRow(cols ...string) {
	fmt.Fprintln(t.w, strings.Join(cols, "\t"))
}

func (t *PlainTable) Flush() error {
	return nil
}

func NewTable(out io.Writer) *Table {
	return &Table{
		w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0),
	}
}

func NewPlainTable(out io.Writer) *PlainTable {
	return &PlainTable{w: out}
}

func NewTableWriter(out io.Writer, plain bool) TableWriter {
	if plain {
		return NewPlainTable(out)
	}

	return NewTable(out)
}

func (t *Table) AddRow(cols ...string) {
	fmt.Fprintln(t.w, strings.Join(cols, "\t"))
}

func (t *Table) Flush() error {
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	return nil
}

// Truncate shortens s to n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n]) + "..."
}

var weekdays = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Weekday returns the short name for a 0-based (Sunday) day index.
func Weekday(day int) string {
	if day < 0 || day >= len(weekdays) {
		return fmt.Sprintf("day %d", day)
	}

	return weekdays[day]
}

// FormatBrand formats a brand for table output.
func FormatBrand(b api.Brand) []string {
	networks := "-"
	if len(b.Networks) > 0 {
		networks = strings.Join(b.Networks, ", ")
	}

	return []string{b.ID, b.Label, networks}
}

// FormatBestTime formats a ranked slot for table output.
func FormatBestTime(rank int, t api.BestTime) []string {
	return []string{
		fmt.Sprintf("%d", rank),
		Weekday(t.Day),
		fmt.Sprintf("%d:00", t.Hour),
		fmt.Sprintf("%g", t.Value),
	}
}

// PostNetworks returns the display labels of a post's networks.
func PostNetworks(p api.ScheduledPost) string {
	labels := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		if e.Network == "" {
			continue
		}

		labels = append(labels, api.PlatformLabel(e.Network))
	}

	if len(labels) == 0 {
		return "-"
	}

	return strings.Join(labels, ", ")
}
