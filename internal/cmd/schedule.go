package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dedene/metricool-cli/internal/api"
	"github.com/dedene/metricool-cli/internal/config"
	"github.com/dedene/metricool-cli/internal/output"
)

const (
	isoMillisLayout = "2006-01-02T15:04:05.000Z"
	previewLength   = 60
)

type ScheduleCmd struct {
	Config string `arg:"" help:"JSON config: {\"platforms\":[...],\"text\":\"...\"|{...},\"datetime\":\"2026-01-30T10:00:00\",\"timezone\":\"America/Chicago\",\"imageUrl\":\"...\",\"blogId\":\"...\"}"`
	DryRun bool   `help:"Print the request body without sending it"`
}

// scheduleConfig is the user's JSON scheduling request.
type scheduleConfig struct {
	Platforms []string
	Text      gjson.Result
	Datetime  string
	Timezone  string
	ImageURL  string
	BlogID    string
}

func parseScheduleConfig(raw string) (scheduleConfig, error) {
	if !gjson.Valid(raw) {
		return scheduleConfig{}, &api.ValidationError{Field: "config", Msg: "not valid JSON"}
	}

	v := gjson.Parse(raw)
	if !v.IsObject() {
		return scheduleConfig{}, &api.ValidationError{Field: "config", Msg: "must be a JSON object"}
	}

	cfg := scheduleConfig{
		Text:     v.Get("text"),
		Datetime: strings.TrimSpace(v.Get("datetime").String()),
		Timezone: strings.TrimSpace(v.Get("timezone").String()),
		ImageURL: strings.TrimSpace(v.Get("imageUrl").String()),
	}

	if cfg.Timezone == "" {
		cfg.Timezone = config.DefaultTimezone
	}

	if blog := v.Get("blogId"); blog.Exists() && blog.Type != gjson.Null {
		cfg.BlogID = strings.TrimSpace(blog.String())
	}

	for _, p := range v.Get("platforms").Array() {
		if p.Type != gjson.String {
			return scheduleConfig{}, &api.ValidationError{Field: "platforms", Msg: "must be a list of platform names"}
		}

		cfg.Platforms = append(cfg.Platforms, p.String())
	}

	return cfg, nil
}

// parseBlogID accepts a decimal blog id.
func parseBlogID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &api.ValidationError{Field: "blogId", Msg: fmt.Sprintf("%q is not a numeric blog ID", s)}
	}

	return id, nil
}

var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// scheduleDate returns datetime as ISO-8601 UTC with milliseconds. Wall-clock
// digits are kept as given; the request timezone travels in its own field.
// An RFC 3339 offset is honoured.
func scheduleDate(datetime string) (string, error) {
	if t, err := time.Parse(time.RFC3339, datetime); err == nil {
		return t.UTC().Format(isoMillisLayout), nil
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, datetime, time.UTC); err == nil {
			return t.Format(isoMillisLayout), nil
		}
	}

	return "", &api.ValidationError{Field: "datetime", Msg: fmt.Sprintf("%q is not in YYYY-MM-DDTHH:MM[:SS] form", datetime)}
}

// textFor picks the text for one platform: a plain string applies to every
// platform; an object is keyed by platform name with an optional "default".
func textFor(text gjson.Result, platform string) (string, error) {
	if text.Type == gjson.String {
		return text.String(), nil
	}

	key := strings.ToLower(strings.TrimSpace(platform))
	for _, k := range []string{key, "default"} {
		if v := text.Get(gjson.Escape(k)); v.Type == gjson.String && v.String() != "" {
			return v.String(), nil
		}
	}

	return "", &api.ValidationError{Field: "text", Msg: fmt.Sprintf("no text for %s and no \"default\"", platform)}
}

// buildPostRequest validates cfg and returns the request without a blog id.
func buildPostRequest(cfg scheduleConfig) (api.PostRequest, error) {
	if len(cfg.Platforms) == 0 {
		return api.PostRequest{}, &api.ValidationError{Field: "platforms", Msg: "no platforms specified"}
	}

	switch {
	case cfg.Text.Type == gjson.String && cfg.Text.String() != "":
	case cfg.Text.IsObject():
	default:
		return api.PostRequest{}, &api.ValidationError{Field: "text", Msg: "no text specified"}
	}

	if cfg.Datetime == "" {
		return api.PostRequest{}, &api.ValidationError{Field: "datetime", Msg: "no datetime specified"}
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return api.PostRequest{}, &api.ValidationError{Field: "timezone", Msg: fmt.Sprintf("unknown timezone %q", cfg.Timezone)}
	}

	date, err := scheduleDate(cfg.Datetime)
	if err != nil {
		return api.PostRequest{}, err
	}

	req := api.PostRequest{Date: date, Timezone: cfg.Timezone}

	for _, platform := range cfg.Platforms {
		network, err := api.PlatformCode(platform)
		if err != nil {
			return api.PostRequest{}, err
		}

		text, err := textFor(cfg.Text, platform)
		if err != nil {
			return api.PostRequest{}, err
		}

		entry := api.PostEntry{Network: network, Text: text}
		if cfg.ImageURL != "" {
			entry.Media = []api.MediaRef{{Type: "IMAGE", URL: cfg.ImageURL}}
		}

		req.Posts = append(req.Posts, entry)
	}

	return req, nil
}

func (c *ScheduleCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	cfg, err := parseScheduleConfig(c.Config)
	if err != nil {
		return err
	}

	req, err := buildPostRequest(cfg)
	if err != nil {
		return err
	}

	if cfg.BlogID != "" {
		if _, err := parseBlogID(cfg.BlogID); err != nil {
			return err
		}
	}

	mode, err := resolveOutputMode(flags)
	if err != nil {
		return err
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	blog, err := resolveBlog(ctx, client, cfg.BlogID)
	if err != nil {
		return err
	}

	blogID, err := parseBlogID(blog)
	if err != nil {
		return err
	}

	req.SetBlogID(blogID)

	if c.DryRun {
		return output.WriteJSON(stdout, req)
	}

	if !mode.JSON {
		fmt.Fprintln(stdout, "Scheduling post...")
		fmt.Fprintf(stdout, "   Platforms: %s\n", strings.Join(cfg.Platforms, ", "))
		fmt.Fprintf(stdout, "   Time:      %s (%s)\n", cfg.Datetime, cfg.Timezone)

		if cfg.ImageURL != "" {
			fmt.Fprintf(stdout, "   Image:     %s\n", cfg.ImageURL)
		}
	}

	payload, err := client.SchedulePost(ctx, req)
	if err != nil {
		return fmt.Errorf("schedule post: %w", err)
	}

	if mode.JSON {
		if !payload.JSON {
			return output.WriteJSON(stdout, payload.Text())
		}

		return output.WriteRawJSON(stdout, payload.Value(), "null")
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Post scheduled successfully!")

	if id := api.CreatedPostID(payload); id != "" {
		fmt.Fprintf(stdout, "   Post ID: %s\n", id)
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Scheduled posts preview:")

	for _, p := range req.Posts {
		fmt.Fprintf(stdout, "   %s: %q\n", api.PlatformName(p.Network), output.Truncate(p.Text, previewLength))
	}

	return nil
}
