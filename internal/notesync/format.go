package notesync

import (
	"fmt"
	"time"
)

// headerStampLayout renders timestamps for transcript headers. The zone
// suffix is appended literally after converting to UTC.
const headerStampLayout = "2006-01-02 15:04"

// FormatBlock renders the transcript block appended to an order note:
// a header line with ticket id, author, and UTC timestamp, the verbatim
// annotation body, and a trailing separator line.
//
// The timestamp is normalized to UTC regardless of source zone. The body
// is not re-parsed or truncated; an empty body still yields the header
// and separator with an empty body line in between (the Syncer rejects
// empty bodies before formatting, so this only matters to direct callers).
func FormatBlock(ticketID int64, author string, createdAt time.Time, body string) string {
	stamp := createdAt.UTC().Format(headerStampLayout) + " UTC"
	return fmt.Sprintf("#%d | %s | %s\n\n%s\n\n---\n", ticketID, author, stamp, body)
}
