// Package eeg provides the client for the EEG cloud speech-recognition
// control API.
//
// The EEG Cloud Control API manages Lexi Live instances. Every controllable
// instance is identified by an opaque vendor-assigned id; the API offers a
// bulk instance listing (no single-instance lookup) and per-instance
// turn_on/turn_off commands.
//
// # Architecture
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                         Package eeg                          │
//	│                                                              │
//	│  ┌───────────────┐   ┌───────────────┐   ┌───────────────┐   │
//	│  │   Directory   │   │    Client     │   │  ClassifyBadge│   │
//	│  │ (directory.go)│──▶│  (client.go)  │   │   (badge.go)  │   │
//	│  │               │   │               │   │               │   │
//	│  │ • TTL cache   │   │ • basic auth  │   │ • GREEN/RED/  │   │
//	│  │ • sorted      │   │ • instances   │   │   GREY from   │   │
//	│  │   snapshot    │   │ • commands    │   │   vendor state│   │
//	│  │ • stale-on-   │   │ • status scan │   │               │   │
//	│  │   failure     │   │               │   │               │   │
//	│  └───────────────┘   └───────────────┘   └───────────────┘   │
//	└──────────────────────────────────────────────────────────────┘
//
// # Failure Model
//
// Every vendor-facing call is the outermost boundary at which failures are
// absorbed: transport errors and non-success responses degrade to empty or
// placeholder results. Only two conditions surface as errors, both fatal to
// the specific operation: a missing API key (ErrNotConfigured) and an
// unrecognised command action (ErrInvalidAction).
//
// # Thread Safety
//
// Client is immutable after construction and safe for concurrent use. The
// Directory snapshot is guarded by a read-write mutex; concurrent refreshes
// are permitted to race, last writer wins.
package eeg
