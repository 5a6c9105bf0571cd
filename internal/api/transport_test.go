package api

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTransportOmitsQueryAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var buf bytes.Buffer

	client := NewClientWithBaseURL("secret-token", "user-99", srv.URL)
	client.httpClient.Transport = &LoggingTransport{
		Base:   http.DefaultTransport,
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	_, err := client.Get(context.Background(), "/settings/brands", nil)
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "/settings/brands")
	assert.Contains(t, logs, "status=200")
	assert.NotContains(t, logs, "user-99")
	assert.NotContains(t, logs, "secret-token")
}
