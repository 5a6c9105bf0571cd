package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// ListBrands returns the unwrapped brand list.
func (c *Client) ListBrands(ctx context.Context) (gjson.Result, []Brand, error) {
	payload, err := c.Get(ctx, "/settings/brands", nil)
	if err != nil {
		return gjson.Result{}, nil, err
	}

	raw := Unwrap(payload.Value())

	entries := UnwrapList(payload.Value())
	brands := make([]Brand, 0, len(entries))

	for _, e := range entries {
		brands = append(brands, BrandFromJSON(e))
	}

	return raw, brands, nil
}

// DiscoverDefaultBrand returns the first brand on the account.
func (c *Client) DiscoverDefaultBrand(ctx context.Context) (Brand, error) {
	_, brands, err := c.ListBrands(ctx)
	if err != nil {
		return Brand{}, fmt.Errorf("discover brand: %w", err)
	}

	if len(brands) == 0 {
		return Brand{}, ErrNoBrands
	}

	return brands[0], nil
}

// BestTime fetches best-time analytics for one brand and network code.
func (c *Client) BestTime(ctx context.Context, blogID, network string) (gjson.Result, error) {
	q := url.Values{}
	q.Set("blogId", blogID)
	q.Set("network", network)

	payload, err := c.Get(ctx, "/analytics/best-time", q)
	if err != nil {
		return gjson.Result{}, err
	}

	return Unwrap(payload.Value()), nil
}

// ListScheduledOptions selects scheduled posts by calendar day, inclusive.
type ListScheduledOptions struct {
	BlogID   string
	Start    string // YYYY-MM-DD
	End      string // YYYY-MM-DD
	Timezone string
}

func (o ListScheduledOptions) Query() url.Values {
	q := url.Values{}
	q.Set("blogId", o.BlogID)
	q.Set("start", o.Start+"T00:00:00")
	q.Set("end", o.End+"T23:59:59")
	q.Set("timezone", o.Timezone)
	q.Set("extendedRange", "true")

	return q
}

// ListScheduledPosts lists posts scheduled in the given range.
func (c *Client) ListScheduledPosts(ctx context.Context, opts ListScheduledOptions) (gjson.Result, []ScheduledPost, error) {
	payload, err := c.Get(ctx, "/scheduler/posts", opts.Query())
	if err != nil {
		return gjson.Result{}, nil, err
	}

	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		loc = time.UTC
	}

	raw := Unwrap(payload.Value())

	entries := UnwrapList(payload.Value())
	posts := make([]ScheduledPost, 0, len(entries))

	for _, e := range entries {
		posts = append(posts, ScheduledPostFromJSON(e, loc))
	}

	return raw, posts, nil
}

// SchedulePost creates a scheduled post and returns the raw response.
func (c *Client) SchedulePost(ctx context.Context, req PostRequest) (Payload, error) {
	q := url.Values{}
	q.Set("blogId", strconv.FormatInt(req.BlogID, 10))

	return c.Post(ctx, "/scheduler/posts", q, req)
}

// CreatedPostID extracts the new post id from a schedule response.
func CreatedPostID(p Payload) string {
	return firstString(p.Value(), "result.id", "id")
}
