// Package schedule ingests Lexi booking records from the EEG scheduling API
// and produces a normalised, time-ordered event list.
//
// Each raw booking record carries an embedded semi-structured ICS text block
// plus optional numeric epoch start/end fields. The pipeline:
//
//  1. converts the query window to epoch seconds in the configured zone
//  2. fetches raw records with recurrence expansion
//  3. extracts title/description/start/end from the ICS block by field
//     marker, falling back per-field to the numeric epoch fields
//  4. drops any record whose start or end stays unresolved after fallback
//  5. sorts the survivors chronologically by resolved start time
//
// Marker-based extraction is inherently fragile, so it is isolated behind
// the icsBlock type: each field degrades independently to its default or
// fallback, one malformed record never aborts the batch, and the scanner
// can later be swapped for a real ICS parser without touching the
// fallback/drop logic.
//
// All failures at the vendor boundary (missing key, transport error,
// non-success response) degrade to an empty event list.
package schedule
