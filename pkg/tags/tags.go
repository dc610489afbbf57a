package tags

import "strings"

// Normalize converts a raw comma-separated tag input into the canonical tag
// list: tokens are trimmed, empty tokens dropped, and every surviving token
// is prefixed with "#" unless it already carries one. Order is preserved and
// duplicates are kept; callers that need de-duplication do it themselves.
//
// The same function backs both the live preview and the create payload, so it
// must stay pure and deterministic.
func Normalize(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		result = append(result, tag)
	}
	return result
}
