package notesync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annotationAt(id int64, created string, private bool) Annotation {
	ts, err := time.Parse(time.RFC3339, created)
	if err != nil {
		panic(err)
	}
	return Annotation{ID: id, Body: "body", Author: "agent", CreatedAt: ts, Private: private}
}

func TestSelectLatestPrivate_Empty(t *testing.T) {
	_, ok := SelectLatestPrivate(nil)
	assert.False(t, ok)

	_, ok = SelectLatestPrivate([]Annotation{})
	assert.False(t, ok)
}

func TestSelectLatestPrivate_NoPrivateEntries(t *testing.T) {
	annotations := []Annotation{
		annotationAt(1, "2025-11-01T10:00:00Z", false),
		annotationAt(2, "2025-11-02T10:00:00Z", false),
	}

	_, ok := SelectLatestPrivate(annotations)
	assert.False(t, ok)
}

func TestSelectLatestPrivate_SinglePrivate(t *testing.T) {
	annotations := []Annotation{
		annotationAt(1, "2025-11-01T10:00:00Z", false),
		annotationAt(2, "2025-11-02T10:00:00Z", true),
		annotationAt(3, "2025-11-03T10:00:00Z", false),
	}

	sel, ok := SelectLatestPrivate(annotations)
	require.True(t, ok)
	assert.Equal(t, int64(2), sel.ID)
}

func TestSelectLatestPrivate_MaxCreatedAtWins(t *testing.T) {
	annotations := []Annotation{
		annotationAt(1, "2025-11-01T10:00:00Z", true),
		annotationAt(2, "2025-11-05T10:00:00Z", true),
		annotationAt(3, "2025-11-03T10:00:00Z", true),
	}

	sel, ok := SelectLatestPrivate(annotations)
	require.True(t, ok)
	assert.Equal(t, int64(2), sel.ID, "maximum created_at wins regardless of position")
}

func TestSelectLatestPrivate_TieGoesToLaterPosition(t *testing.T) {
	annotations := []Annotation{
		annotationAt(1, "2025-11-01T10:00:00Z", true),
		annotationAt(2, "2025-11-01T10:00:00Z", true),
		annotationAt(3, "2025-10-30T10:00:00Z", true),
	}

	sel, ok := SelectLatestPrivate(annotations)
	require.True(t, ok)
	assert.Equal(t, int64(2), sel.ID, "equal timestamps resolve to the later entry")
}

func TestSelectLatestPrivate_EquivalentZonesCompareEqual(t *testing.T) {
	annotations := []Annotation{
		annotationAt(1, "2025-11-01T13:00:00+03:00", true), // 10:00 UTC
		annotationAt(2, "2025-11-01T10:00:00Z", true),
	}

	sel, ok := SelectLatestPrivate(annotations)
	require.True(t, ok)
	assert.Equal(t, int64(2), sel.ID, "zone-shifted equal instants tie, later position wins")
}
