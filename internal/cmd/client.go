package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dedene/metricool-cli/internal/api"
	"github.com/dedene/metricool-cli/internal/config"
)

var (
	resolveCredentials = func() config.Credentials { return config.NewResolver().Resolve() }
	newClient          = func(creds config.Credentials) *api.Client { return api.NewClient(creds.Token, creds.UserID) }
	now                = time.Now
)

// getClient resolves credentials and builds an API client.
func getClient() (*api.Client, error) {
	creds := resolveCredentials()
	if missing := creds.Missing(); len(missing) > 0 {
		return nil, &api.CredentialsError{Missing: missing}
	}

	return newClient(creds), nil
}

// resolveBlog returns blogFlag, or the first brand on the account when it is empty.
func resolveBlog(ctx context.Context, client *api.Client, blogFlag string) (string, error) {
	if blog := strings.TrimSpace(blogFlag); blog != "" {
		return blog, nil
	}

	brand, err := client.DiscoverDefaultBrand(ctx)
	if err != nil {
		return "", err
	}

	_, _ = fmt.Fprintf(stderr, "Using brand: %s (%s)\n", brand.Label, brand.ID)

	return brand.ID, nil
}
