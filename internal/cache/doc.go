// Package cache inventories and purges the per-ticker data cache.
//
// The cache root holds two storage layouts that accumulated over time:
//
//   - Directory layout: one subdirectory per ticker (e.g. "TSLA/") holding
//     the full analysis history and saved reports.
//   - Legacy file layout: flat CSV snapshots named
//     "<TICKER>-YFin-data-<suffix>.csv" holding market data only.
//
// [Scanner] reconciles both layouts into one inventory with a single
// [Entry] per ticker. When a ticker exists in both layouts, the directory
// wins and the legacy file is not listed.
//
// # Lifecycle
//
// Entries are built fresh on every scan and never kept between scans.
// [Manager] rescans after every deletion so the displayed inventory always
// matches the filesystem:
//
//	Scanning -> Displaying -> AwaitingAction -> Deleting -> Scanning
//	                                         -> Continuing (Run returns true)
//	                                         -> Exiting    (Run returns false)
//
// # Deletion
//
// [Deleter] asks for confirmation (default "no") before removing anything
// and returns a [Result] instead of an error: Deleted, Cancelled or Failed.
// Only paths directly inside the cache root are ever removed.
//
// # I/O
//
// All operator interaction goes through the [Prompter] interface, so the
// state machine runs unchanged against a terminal UI, a line-based reader
// or a scripted fake in tests. Summary and outcome messages are written to
// the output printer attached to the context.
package cache
