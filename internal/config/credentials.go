package config

import (
	"bufio"
	"bytes"
	"log/slog"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	TokenEnvVar  = "METRICOOL_USER_TOKEN" //nolint:gosec // env var name
	UserIDEnvVar = "METRICOOL_USER_ID"
)

// Credentials authenticate against Metricool.
type Credentials struct {
	Token  string
	UserID string
}

func (c Credentials) complete() bool {
	return c.Token != "" && c.UserID != ""
}

// Missing names the env variables for absent fields.
func (c Credentials) Missing() []string {
	var out []string

	if c.Token == "" {
		out = append(out, TokenEnvVar)
	}

	if c.UserID == "" {
		out = append(out, UserIDEnvVar)
	}

	return out
}

// fill sets empty fields from token and userID.
func (c *Credentials) fill(token, userID string) {
	if c.Token == "" {
		c.Token = token
	}

	if c.UserID == "" {
		c.UserID = userID
	}
}

// Resolver looks up credentials in the environment, the moltbot config file
// and a dotenv file, in that order. A field keeps the first non-empty value.
type Resolver struct {
	Getenv      func(string) string
	ReadFile    func(string) ([]byte, error)
	MoltbotPath func() (string, error)
	DotenvPath  func() string
	Logger      *slog.Logger
}

// NewResolver returns a Resolver over the real environment and filesystem.
func NewResolver() *Resolver {
	return &Resolver{
		Getenv:      os.Getenv,
		ReadFile:    os.ReadFile,
		MoltbotPath: MoltbotConfigPath,
		DotenvPath:  DotenvPath,
	}
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return slog.Default()
}

// Resolve never fails; callers check Missing.
func (r *Resolver) Resolve() Credentials {
	log := r.logger()

	creds := Credentials{
		Token:  strings.TrimSpace(r.Getenv(TokenEnvVar)),
		UserID: strings.TrimSpace(r.Getenv(UserIDEnvVar)),
	}
	logSource(log, "environment", Credentials{}, creds)

	if creds.complete() {
		return creds
	}

	before := creds
	creds.fill(r.fromMoltbot())
	logSource(log, "moltbot config", before, creds)

	if creds.complete() {
		return creds
	}

	before = creds
	creds.fill(r.fromDotenv())
	logSource(log, "dotenv", before, creds)

	return creds
}

func (r *Resolver) fromMoltbot() (string, string) {
	path, err := r.MoltbotPath()
	if err != nil {
		return "", ""
	}

	b, err := r.ReadFile(path)
	if err != nil || !gjson.ValidBytes(b) {
		return "", ""
	}

	vars := gjson.GetBytes(b, "env.vars")

	return strings.TrimSpace(vars.Get(TokenEnvVar).String()), strings.TrimSpace(vars.Get(UserIDEnvVar).String())
}

func (r *Resolver) fromDotenv() (string, string) {
	b, err := r.ReadFile(r.DotenvPath())
	if err != nil {
		return "", ""
	}

	vals := ParseDotenv(b)

	return vals[TokenEnvVar], vals[UserIDEnvVar]
}

// ParseDotenv reads KEY=VALUE lines. Values are trimmed and lose one leading
// and one trailing quote. Lines without '=' are skipped; later keys win.
func ParseDotenv(b []byte) map[string]string {
	out := map[string]string{}

	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		key, value, ok := strings.Cut(strings.TrimSuffix(sc.Text(), "\r"), "=")
		if !ok || strings.TrimSpace(key) == "" {
			continue
		}

		value = strings.TrimSpace(value)
		if value != "" && isQuote(value[0]) {
			value = value[1:]
		}

		if n := len(value); n > 0 && isQuote(value[n-1]) {
			value = value[:n-1]
		}

		out[strings.TrimSpace(key)] = value
	}

	return out
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func logSource(log *slog.Logger, source string, before, after Credentials) {
	if before.Token == "" && after.Token != "" {
		log.Debug("credential resolved", "field", TokenEnvVar, "source", source)
	}

	if before.UserID == "" && after.UserID != "" {
		log.Debug("credential resolved", "field", UserIDEnvVar, "source", source)
	}
}
