package api

import (
	"sort"
	"strings"
)

// platformCodes maps user-facing platform names to Metricool network codes.
var platformCodes = map[string]string{
	"linkedin":  "IN",
	"x":         "TW",
	"twitter":   "TW",
	"bluesky":   "BS",
	"threads":   "TH",
	"instagram": "IG",
	"facebook":  "FB",
	"tiktok":    "TK",
	"pinterest": "PI",
	"youtube":   "YT",
}

// canonicalNames picks one name per code; "x" wins over "twitter".
var canonicalNames = map[string]string{
	"IN": "linkedin",
	"TW": "x",
	"BS": "bluesky",
	"TH": "threads",
	"IG": "instagram",
	"FB": "facebook",
	"TK": "tiktok",
	"PI": "pinterest",
	"YT": "youtube",
}

var platformLabels = map[string]string{
	"IN": "LinkedIn",
	"TW": "X/Twitter",
	"BS": "Bluesky",
	"TH": "Threads",
	"IG": "Instagram",
	"FB": "Facebook",
	"TK": "TikTok",
	"PI": "Pinterest",
	"YT": "YouTube",
}

// PlatformNames returns every accepted platform name, sorted.
func PlatformNames() []string {
	names := make([]string, 0, len(platformCodes))
	for name := range platformCodes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// PlatformCode returns the network code for a platform name.
// Matching is case-insensitive; unknown names are rejected.
func PlatformCode(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	code, ok := platformCodes[key]
	if !ok {
		return "", invalid("platform", "unknown platform %q (valid: %s)", name, strings.Join(PlatformNames(), ", "))
	}

	return code, nil
}

// PlatformName returns the canonical platform name for a network code,
// or the code itself when none is registered.
func PlatformName(code string) string {
	if name, ok := canonicalNames[strings.ToUpper(code)]; ok {
		return name
	}

	return code
}

// PlatformLabel returns a display label for a network code.
func PlatformLabel(code string) string {
	if label, ok := platformLabels[strings.ToUpper(code)]; ok {
		return label
	}

	return code
}
