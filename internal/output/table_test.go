package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dedene/metricool-cli/internal/api"
)

func TestPlainTableWriterUsesTabs(t *testing.T) {
	var buf bytes.Buffer

	tbl := NewTableWriter(&buf, true)
	tbl.AddRow("A", "B", "C")

	require.NoError(t, tbl.Flush())
	assert.Equal(t, "A\tB\tC\n", buf.String())
}

func TestTableWriterAlignsColumns(t *testing.T) {
	var buf bytes.Buffer

	tbl := NewTableWriter(&buf, false)
	tbl.AddRow("ID", "LABEL")
	tbl.AddRow("12345", "Acme")

	require.NoError(t, tbl.Flush())
	assert.Equal(t, "ID     LABEL\n12345  Acme\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "héé...", Truncate("héééé", 3))
}

func TestFormatBestTime(t *testing.T) {
	row := FormatBestTime(1, api.BestTime{Day: 2, Hour: 9, Value: 87.5})
	assert.Equal(t, []string{"1", "Tue", "9:00", "87.5"}, row)
	assert.Equal(t, "day 9", Weekday(9))
}

func TestPostNetworksUsesLabels(t *testing.T) {
	p := api.ScheduledPost{Entries: []api.PostEntry{{Network: "IN"}, {Network: "TK"}, {Network: "ZZ"}}}
	assert.Equal(t, "LinkedIn, TikTok, ZZ", PostNetworks(p))
	assert.Equal(t, "-", PostNetworks(api.ScheduledPost{}))
}

func TestFormatBrand(t *testing.T) {
	assert.Equal(t, []string{"7", "Shop", "-"}, FormatBrand(api.Brand{ID: "7", Label: "Shop"}))
	assert.Equal(t, []string{"7", "Shop", "Twitter, Linkedin"}, FormatBrand(api.Brand{ID: "7", Label: "Shop", Networks: []string{"Twitter", "Linkedin"}}))
}
