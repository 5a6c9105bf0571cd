package errfmt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dedene/metricool-cli/internal/api"
)

func TestFormatAPIErrorHints(t *testing.T) {
	unauthorized := Format(&api.APIError{StatusCode: 401, Body: "bad token"})
	assert.Contains(t, unauthorized, "API error 401")
	assert.Contains(t, unauthorized, "bad token")
	assert.Contains(t, unauthorized, "METRICOOL_USER_TOKEN is valid")

	badRequest := Format(fmt.Errorf("schedule: %w", &api.APIError{StatusCode: 400}))
	assert.Contains(t, badRequest, "character limits")
	assert.Contains(t, badRequest, "Image URL")

	notFound := Format(&api.APIError{StatusCode: 404, Body: "missing"})
	assert.NotContains(t, notFound, "character limits")
	assert.NotContains(t, notFound, "is valid")
}

func TestFormatKinds(t *testing.T) {
	assert.Contains(t, Format(&api.CredentialsError{Missing: []string{"METRICOOL_USER_ID"}}), "Not set: METRICOOL_USER_ID")
	assert.Contains(t, Format(&api.NetworkError{Method: "GET", URL: "https://x", Err: errors.New("refused")}), "Could not reach Metricool")
	assert.Contains(t, Format(fmt.Errorf("discover: %w", api.ErrNoBrands)), "metricoolcli brands")
	assert.Equal(t, "Error: invalid platform: nope\n", Format(&api.ValidationError{Field: "platform", Msg: "nope"}))
	assert.Empty(t, Format(nil))
}
