// Package notesync implements the ticket-to-order note pipeline.
//
// Given a ticket id, the Syncer selects the latest private annotation on
// the ticket, extracts an order token from its body, renders a transcript
// block, merges it onto the matching order's note, and writes the merged
// text back through the commerce collaborator.
//
// ARCHITECTURE:
//
// Linear, single-threaded pipeline:
//
//	fetch annotations -> select -> extract token -> format -> fetch order
//	  -> merge -> write (at most once)
//
// Every invocation is independent and stateless: no cache, no cursor, no
// background work. The only mutating external call is the final note
// write; any earlier failure terminates the run with a classified reason
// and nothing written.
//
// KNOWN LIMITATION:
//
// The order's note field is shared with other actors (support agents,
// other tool instances) and the commerce API exposes no optimistic
// concurrency token for it. The read-modify-write between the order fetch
// and the note write is therefore last-writer-wins. Callers that need
// stronger guarantees must serialize invocations externally.
//
// Deduplication is intentionally absent: invoking the pipeline twice on
// the same annotation appends the transcript block twice.
package notesync
