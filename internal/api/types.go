package api

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Brand is a Metricool brand (the API calls it a blog).
type Brand struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Networks []string `json:"networks,omitempty"`
}

// ScheduledPost is a post returned by the scheduler endpoint.
type ScheduledPost struct {
	ID          string      `json:"id,omitempty"`
	ScheduledAt time.Time   `json:"scheduledAt"`
	RawDate     string      `json:"rawDate,omitempty"`
	Entries     []PostEntry `json:"posts"`
	Media       []MediaRef  `json:"media,omitempty"`
}

// Text returns the first non-empty entry text.
func (p ScheduledPost) Text() string {
	for _, e := range p.Entries {
		if e.Text != "" {
			return e.Text
		}
	}

	return ""
}

// PostEntry is one network's copy of a post. BlogID and Media are only set on
// outgoing requests.
type PostEntry struct {
	Network string     `json:"network"`
	Text    string     `json:"text"`
	BlogID  int64      `json:"blogId,omitempty"`
	Media   []MediaRef `json:"media,omitempty"`
}

// MediaRef is an attached media item.
type MediaRef struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// PostRequest is the body of a schedule request.
type PostRequest struct {
	BlogID   int64       `json:"blogId"`
	Date     string      `json:"date"`
	Timezone string      `json:"timezone"`
	Posts    []PostEntry `json:"posts"`
}

// BestTime is one ranked posting slot. Day is 0 (Sunday) through 6.
type BestTime struct {
	Day   int     `json:"day"`
	Hour  int     `json:"hour"`
	Value float64 `json:"value"`
}

// firstString returns the first non-empty string at any of paths.
func firstString(v gjson.Result, paths ...string) string {
	for _, p := range paths {
		if s := v.Get(p); s.Exists() && s.Type != gjson.Null && s.String() != "" {
			return s.String()
		}
	}

	return ""
}

// BrandFromJSON reads a brand from a brand-listing entry.
func BrandFromJSON(v gjson.Result) Brand {
	b := Brand{
		ID:    firstString(v, "id", "blogId"),
		Label: firstString(v, "label", "name", "brandName"),
	}

	if b.Label == "" {
		b.Label = "Unknown"
	}

	v.Get("networksData").ForEach(func(key, _ gjson.Result) bool {
		name := strings.TrimSuffix(key.String(), "Data")
		if name == "" || name == "web" {
			return true
		}

		b.Networks = append(b.Networks, strings.ToUpper(name[:1])+name[1:])

		return true
	})

	return b
}

// scheduledLayouts are the date formats seen in scheduler responses.
var scheduledLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParsePostDate parses a scheduler date. Dates without an offset are read in loc.
func ParsePostDate(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range scheduledLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ScheduledPostFromJSON reads a post from a scheduler listing entry.
func ScheduledPostFromJSON(v gjson.Result, loc *time.Location) ScheduledPost {
	p := ScheduledPost{
		ID:      firstString(v, "id"),
		RawDate: firstString(v, "date", "scheduledDate", "publicationDate.dateTime"),
	}

	if t, ok := ParsePostDate(p.RawDate, loc); ok {
		p.ScheduledAt = t
	}

	entries := v.Get("posts").Array()
	if len(entries) == 0 {
		entries = []gjson.Result{v}
	}

	for _, e := range entries {
		p.Entries = append(p.Entries, PostEntry{
			Network: e.Get("network").String(),
			Text:    e.Get("text").String(),
		})
	}

	if text := v.Get("text").String(); text != "" && len(p.Entries) > 0 && p.Entries[0].Text == "" {
		p.Entries[0].Text = text
	}

	v.Get("media").ForEach(func(_, m gjson.Result) bool {
		p.Media = append(p.Media, MediaRef{Type: m.Get("type").String(), URL: m.Get("url").String()})

		return true
	})

	return p
}

// BestTimesFromJSON reads ranked slots from an unwrapped best-time result.
// ok is false when the result carries no bestTimes array.
func BestTimesFromJSON(v gjson.Result) ([]BestTime, bool) {
	arr := v.Get("bestTimes")
	if !arr.IsArray() {
		return nil, false
	}

	out := make([]BestTime, 0, len(arr.Array()))
	for _, t := range arr.Array() {
		out = append(out, BestTime{
			Day:   int(t.Get("day").Int()),
			Hour:  int(t.Get("hour").Int()),
			Value: t.Get("value").Float(),
		})
	}

	return out, true
}

// SetBlogID sets the blog on the request and every entry.
func (r *PostRequest) SetBlogID(id int64) {
	r.BlogID = id
	for i := range r.Posts {
		r.Posts[i].BlogID = id
	}
}
