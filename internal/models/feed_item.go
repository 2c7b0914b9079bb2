package models

import (
	"sync/atomic"
	"time"
)

// FeedItem is a single immutable ledger entity that an account's feed holds.
// Every item carries a process-wide creation sequence number so feeds from
// different accounts can be merged into one well-defined order.
type FeedItem interface {
	Seq() uint64
	OccurredAt() time.Time
}

var seq atomic.Uint64

// nextSeq hands out creation sequence numbers, starting at 1.
func nextSeq() uint64 {
	return seq.Add(1)
}
