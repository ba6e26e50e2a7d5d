// Package snapshot persists point-in-time images of the order book.
//
// A snapshot records the entry WAL sequence number it covers. Recovery
// loads the newest readable snapshot and replays only the commands logged
// after it.
package snapshot
