package cmd

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpShowsCommandExamples(t *testing.T) {
	env := setupCommand(t, nil)
	t.Setenv(colorEnvVar, "never")

	require.NoError(t, Execute([]string{"schedule", "--help"}))

	out := env.stdout.String()
	assert.Contains(t, out, "Usage: metricoolcli schedule")
	assert.Contains(t, out, "\nExamples:\n  metricoolcli schedule '")
	assert.Contains(t, out, "--dry-run")
	assert.NotContains(t, out, "\x1b[")
}

func TestStyleHelp(t *testing.T) {
	text := "Usage: metricoolcli <command>\n\nCommands:\n  brands\n    List brands\n\nExamples:\n  metricoolcli brands\n"

	assert.Equal(t, text, styleHelp(text, termenv.Ascii))

	styled := styleHelp(text, termenv.ANSI256)
	assert.Contains(t, styled, "\x1b[")
	assert.Contains(t, styled, "    List brands")
	assert.NotContains(t, styled, "brands \n")
}

func TestHelpColorMode(t *testing.T) {
	t.Setenv(colorEnvVar, "")
	assert.Equal(t, "auto", helpColorMode([]string{"brands"}))
	assert.Equal(t, "never", helpColorMode([]string{"brands", "--json"}))

	t.Setenv(colorEnvVar, " Always ")
	assert.Equal(t, "always", helpColorMode([]string{"--plain"}))
}

func TestAppendExamplesUnknownCommand(t *testing.T) {
	assert.Equal(t, "help\n", appendExamples("help\n", "version"))
}
