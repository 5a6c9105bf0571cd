package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

type Mode struct {
	JSON  bool
	Plain bool
}

func FromEnv() Mode {
	return Mode{
		JSON:  envBool("METRICOOL_JSON"),
		Plain: envBool("METRICOOL_PLAIN"),
	}
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// WriteRawJSON indents a response value as-is, keeping the API's key order.
// A missing value is written as fallback.
func WriteRawJSON(w io.Writer, v gjson.Result, fallback string) error {
	raw := v.Raw
	if !v.Exists() {
		raw = fallback
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		return fmt.Errorf("indent json: %w", err)
	}

	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	return nil
}

func envBool(key string) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
