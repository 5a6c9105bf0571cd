package api

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingTransport wraps an http.RoundTripper and logs each exchange at
// debug level. Query strings and headers are never logged.
type LoggingTransport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

func NewLoggingTransport(base http.RoundTripper) *LoggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &LoggingTransport{Base: base}
}

func (t *LoggingTransport) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}

	return slog.Default()
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	log := t.logger()
	start := time.Now()
	target := req.URL.Scheme + "://" + req.URL.Host + req.URL.Path

	log.Debug("api request", "method", req.Method, "url", target)

	resp, err := t.Base.RoundTrip(req)
	if err != nil {
		log.Debug("api request failed", "method", req.Method, "url", target, "err", err, "elapsed", time.Since(start))

		return nil, err
	}

	log.Debug("api response", "method", req.Method, "url", target, "status", resp.StatusCode, "elapsed", time.Since(start))

	return resp, nil
}
