package prodex

import "strings"

// Between returns the substring of haystack strictly between the first
// occurrence of start and the first subsequent occurrence of end.
// The second return value is false when either marker is missing.
func Between(haystack, start, end string) (string, bool) {
	i := strings.Index(haystack, start)
	if i < 0 {
		return "", false
	}
	rest := haystack[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}
