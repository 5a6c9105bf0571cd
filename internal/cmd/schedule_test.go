package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dedene/metricool-cli/internal/api"
)

type sentPost struct {
	BlogID   int64  `json:"blogId"`
	Date     string `json:"date"`
	Timezone string `json:"timezone"`
	Posts    []struct {
		Network string         `json:"network"`
		Text    string         `json:"text"`
		BlogID  int64          `json:"blogId"`
		Media   []api.MediaRef `json:"media"`
	} `json:"posts"`
}

func decodeSent(t *testing.T, env *commandEnv) sentPost {
	t.Helper()

	req := env.api.last()
	require.Equal(t, "POST", req.Method)

	var got sentPost
	require.NoError(t, json.Unmarshal(req.Body, &got))

	return got
}

func TestScheduleSharedText(t *testing.T) {
	env := setupCommand(t, map[string]string{"POST /scheduler/posts": `{"result":{"id":555}}`})

	cmd := ScheduleCmd{Config: `{"platforms":["linkedin","x"],"text":"Hello","datetime":"2026-01-30T10:00:00","blogId":"42"}`}
	require.NoError(t, cmd.Run(&RootFlags{}))

	assert.Equal(t, []string{"POST /scheduler/posts"}, env.api.paths())
	assert.Equal(t, []string{"42"}, env.api.last().Query["blogId"])

	got := decodeSent(t, env)
	assert.EqualValues(t, 42, got.BlogID)
	assert.Equal(t, "2026-01-30T10:00:00.000Z", got.Date)
	assert.Equal(t, "America/Chicago", got.Timezone)
	require.Len(t, got.Posts, 2)
	assert.Equal(t, "IN", got.Posts[0].Network)
	assert.Equal(t, "TW", got.Posts[1].Network)

	for _, p := range got.Posts {
		assert.Equal(t, "Hello", p.Text)
		assert.EqualValues(t, 42, p.BlogID)
		assert.Empty(t, p.Media)
	}

	assert.Contains(t, env.stdout.String(), "Post ID: 555")
	assert.Contains(t, env.stdout.String(), `x: "Hello"`)
}

func TestSchedulePerPlatformText(t *testing.T) {
	env := setupCommand(t, map[string]string{"POST /scheduler/posts": `{"id":"abc"}`})

	cmd := ScheduleCmd{Config: `{"platforms":["linkedin","x"],"text":{"linkedin":"A","x":"B"},"datetime":"2026-01-30T10:00:00","timezone":"UTC","blogId":42,"imageUrl":"https://img/pic.png"}`}
	require.NoError(t, cmd.Run(&RootFlags{}))

	got := decodeSent(t, env)
	assert.Equal(t, "2026-01-30T10:00:00.000Z", got.Date)
	require.Len(t, got.Posts, 2)
	assert.Equal(t, "IN", got.Posts[0].Network)
	assert.Equal(t, "A", got.Posts[0].Text)
	assert.Equal(t, "TW", got.Posts[1].Network)
	assert.Equal(t, "B", got.Posts[1].Text)
	assert.Equal(t, []api.MediaRef{{Type: "IMAGE", URL: "https://img/pic.png"}}, got.Posts[0].Media)
	assert.Contains(t, env.stdout.String(), "Post ID: abc")
}

func TestScheduleDiscoversBlog(t *testing.T) {
	env := setupCommand(t, map[string]string{
		"GET /settings/brands":   `{"data":[{"id":77,"label":"Acme"}]}`,
		"POST /scheduler/posts": `{}`,
	})

	cmd := ScheduleCmd{Config: `{"platforms":["bluesky"],"text":{"default":"D"},"datetime":"2026-01-30T10:00"}`}
	require.NoError(t, cmd.Run(&RootFlags{}))

	assert.Equal(t, []string{"GET /settings/brands", "POST /scheduler/posts"}, env.api.paths())

	got := decodeSent(t, env)
	assert.EqualValues(t, 77, got.BlogID)
	assert.Equal(t, "D", got.Posts[0].Text)
	assert.Contains(t, env.stderr.String(), "Using brand: Acme (77)")
}

func TestScheduleValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name   string
		config string
		field  string
	}{
		{"invalid json", `{"platforms":`, "config"},
		{"no platforms", `{"platforms":[],"text":"t","datetime":"2026-01-30T10:00:00"}`, "platforms"},
		{"unknown platform", `{"platforms":["myspace"],"text":"t","datetime":"2026-01-30T10:00:00"}`, "platform"},
		{"no text", `{"platforms":["x"],"datetime":"2026-01-30T10:00:00"}`, "text"},
		{"no matching text", `{"platforms":["linkedin","x"],"text":{"linkedin":"A","bluesky":"B"},"datetime":"2026-01-30T10:00:00"}`, "text"},
		{"no datetime", `{"platforms":["x"],"text":"t"}`, "datetime"},
		{"bad datetime", `{"platforms":["x"],"text":"t","datetime":"tomorrow"}`, "datetime"},
		{"bad timezone", `{"platforms":["x"],"text":"t","datetime":"2026-01-30T10:00:00","timezone":"Mars/Olympus"}`, "timezone"},
		{"bad blog id", `{"platforms":["x"],"text":"t","datetime":"2026-01-30T10:00:00","blogId":"abc"}`, "blogId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupCommand(t, nil)

			err := (&ScheduleCmd{Config: tt.config}).Run(&RootFlags{})

			var vErr *api.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Empty(t, env.api.paths())
		})
	}
}

func TestScheduleDryRunDoesNotPost(t *testing.T) {
	env := setupCommand(t, nil)

	cmd := ScheduleCmd{Config: `{"platforms":["threads"],"text":"t","datetime":"2026-01-30T10:00:00Z","blogId":"9"}`, DryRun: true}
	require.NoError(t, cmd.Run(&RootFlags{}))

	assert.Empty(t, env.api.paths())
	assert.Contains(t, env.stdout.String(), `"network": "TH"`)
	assert.Contains(t, env.stdout.String(), `"date": "2026-01-30T10:00:00.000Z"`)
}

func TestScheduleDateKeepsWallClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-01-30T10:00:00", "2026-01-30T10:00:00.000Z"},
		{"2026-07-01T10:00", "2026-07-01T10:00:00.000Z"},
		{"2026-07-01T10:00:00Z", "2026-07-01T10:00:00.000Z"},
		{"2026-07-01T10:00:00+02:00", "2026-07-01T08:00:00.000Z"},
	}

	for _, tt := range tests {
		got, err := scheduleDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestScheduleDateIgnoresRequestTimezone(t *testing.T) {
	env := setupCommand(t, map[string]string{"POST /scheduler/posts": `{}`})

	cmd := ScheduleCmd{Config: `{"platforms":["x"],"text":"t","datetime":"2026-01-30T10:00:00","timezone":"Asia/Tokyo","blogId":"1"}`}
	require.NoError(t, cmd.Run(&RootFlags{}))

	got := decodeSent(t, env)
	assert.Equal(t, "2026-01-30T10:00:00.000Z", got.Date)
	assert.Equal(t, "Asia/Tokyo", got.Timezone)
}
