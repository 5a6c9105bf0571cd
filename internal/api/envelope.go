package api

import "github.com/tidwall/gjson"

// envelopePaths are tried in order; Metricool is not consistent across endpoints.
var envelopePaths = []string{"result.data", "data", "result"}

// Unwrap strips the response envelope and returns the first array or object
// found at a known path, or the value itself.
func Unwrap(v gjson.Result) gjson.Result {
	if v.IsObject() {
		for _, path := range envelopePaths {
			inner := v.Get(path)
			if inner.IsArray() || inner.IsObject() {
				return inner
			}
		}
	}

	return v
}

// UnwrapList unwraps v and returns its elements. A single object becomes a
// one-element list and a missing or null value an empty one.
func UnwrapList(v gjson.Result) []gjson.Result {
	inner := Unwrap(v)

	switch {
	case inner.IsArray():
		return inner.Array()
	case inner.IsObject():
		return []gjson.Result{inner}
	default:
		return nil
	}
}
