package notesync

import "strings"

// MergeNote appends block after existing with exactly one separating blank
// line. A whitespace-only existing value counts as empty and the result is
// block alone.
//
// Existing content is treated as an opaque prefix: it is never parsed,
// reordered, or deduplicated. Only trailing whitespace of the existing
// value is normalized so that sequential merges stay separated by exactly
// one blank line.
func MergeNote(existing, block string) string {
	if strings.TrimSpace(existing) == "" {
		return block
	}
	return strings.TrimRight(existing, " \t\r\n") + "\n\n" + block
}
