// Package draft owns the single in-progress journal entry of the client.
//
// A Controller keeps the text and the selected emotion, saves the text to
// the local store every few seconds, and releases it on Submit: the entry is
// sent to the sync server in the background while the local state is cleared
// right away. Focus mode, the rotating writing prompt and the short
// acknowledgment after a release are timer driven; all timers come from a
// clockwork.Clock so tests can drive them.
//
// Every operation is non-failing for the caller. Storage and network
// problems only end up in the log.
package draft
