package notesync

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeNote_EmptyExisting(t *testing.T) {
	assert.Equal(t, "block\n", MergeNote("", "block\n"))
	assert.Equal(t, "block\n", MergeNote("   \n\t ", "block\n"), "whitespace-only counts as empty")
}

func TestMergeNote_AppendsWithSingleBlankLine(t *testing.T) {
	merged := MergeNote("existing content", "block\n")

	assert.Equal(t, "existing content\n\nblock\n", merged)
}

func TestMergeNote_TrimsOnlyTrailingWhitespace(t *testing.T) {
	merged := MergeNote("existing content\n\n\n", "block\n")

	assert.Equal(t, "existing content\n\nblock\n", merged,
		"extra trailing newlines collapse to exactly one blank line")
}

func TestMergeNote_ExistingContentOpaque(t *testing.T) {
	existing := "#111111 | Someone | 2025-01-01 00:00 UTC\n\nolder entry\n\n---\n"
	block := "#111111 | Someone | 2025-01-01 00:00 UTC\n\nolder entry\n\n---\n"

	merged := MergeNote(existing, block)

	// Deduplication is deliberately absent: the identical block appends.
	assert.Equal(t, 2, strings.Count(merged, "older entry"))
	assert.True(t, strings.HasPrefix(merged, strings.TrimRight(existing, "\n")))
}

func TestMergeNote_SequentialAppendsPreserveOrder(t *testing.T) {
	x := "X original note"
	a := FormatBlock(1, "Agent A", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "first")
	b := FormatBlock(2, "Agent B", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), "second")

	merged := MergeNote(MergeNote(x, a), b)

	xi := strings.Index(merged, "X original note")
	ai := strings.Index(merged, "first")
	bi := strings.Index(merged, "second")
	assert.True(t, xi >= 0 && ai > xi && bi > ai, "X then A then B in byte order")

	// Each boundary is exactly one blank line.
	assert.Equal(t, "X original note\n\n#1 |", merged[:len("X original note\n\n#1 |")])
	assert.Contains(t, merged, "---\n\n#2 |", "separator then one blank line then next header")
	assert.NotContains(t, merged, "\n\n\n", "never more than one blank line at a seam")
}
