package errfmt

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dedene/metricool-cli/internal/api"
	"github.com/dedene/metricool-cli/internal/config"
)

// Format formats an error into a user-friendly message with actionable suggestions.
func Format(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return formatAPIError(apiErr)
	}

	var credErr *api.CredentialsError
	if errors.As(err, &credErr) {
		return formatCredentialsError(credErr)
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return formatNetworkError(netErr)
	}

	var vErr *api.ValidationError
	if errors.As(err, &vErr) {
		return fmt.Sprintf("Error: %v\n", vErr)
	}

	if errors.Is(err, api.ErrNoBrands) {
		return formatNoBrandsError()
	}

	return fmt.Sprintf("Error: %v\n", err)
}

func formatAPIError(err *api.APIError) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: Metricool API error %d\n", err.StatusCode))

	if body := strings.TrimSpace(err.Body); body != "" {
		sb.WriteString("\n  " + body + "\n")
	}

	switch err.StatusCode {
	case http.StatusUnauthorized:
		sb.WriteString("\n  Check that " + config.TokenEnvVar + " is valid.\n")

	case http.StatusBadRequest:
		sb.WriteString("\n  Check your post data:\n")
		sb.WriteString("    - Text within character limits?\n")
		sb.WriteString("    - Image URL publicly accessible?\n")
		sb.WriteString("    - Datetime in valid format?\n")
	}

	return sb.String()
}

func formatCredentialsError(err *api.CredentialsError) string {
	var sb strings.Builder

	sb.WriteString("Error: Missing Metricool credentials\n\n")
	sb.WriteString("  Not set: " + strings.Join(err.Missing, ", ") + "\n\n")
	sb.WriteString("  Set " + config.TokenEnvVar + " and " + config.UserIDEnvVar + " in the environment,\n")
	sb.WriteString("  in ~/.moltbot/moltbot.json under env.vars, or in a .env file.\n")

	return sb.String()
}

func formatNetworkError(err *api.NetworkError) string {
	var sb strings.Builder

	sb.WriteString("Error: Could not reach Metricool\n\n")
	sb.WriteString(fmt.Sprintf("  %s %s: %v\n", err.Method, err.URL, err.Err))

	return sb.String()
}

func formatNoBrandsError() string {
	var sb strings.Builder

	sb.WriteString("Error: No blog ID specified and no brands found to auto-detect\n\n")
	sb.WriteString("  Run 'metricoolcli brands' to list your blog IDs and pass one with --blog.\n")

	return sb.String()
}
