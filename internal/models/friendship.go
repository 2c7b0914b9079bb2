package models

import (
	"time"

	"github.com/google/uuid"
)

// Friendship is an immutable record of two accounts becoming friends.
// Exactly one is created per unordered pair; the same record is appended to
// both parties' feeds.
type Friendship struct {
	ID        string    // unique identifier
	Actor     string    // identity of the initiator
	Target    string    // identity of the other party
	Sequence  uint64    // process-wide creation order
	CreatedAt time.Time // timestamp
}

// NewFriendship creates a friendship record stamped with a fresh id,
// sequence number and timestamp.
func NewFriendship(actor, target string) Friendship {
	return Friendship{
		ID:        uuid.New().String(),
		Actor:     actor,
		Target:    target,
		Sequence:  nextSeq(),
		CreatedAt: time.Now(),
	}
}

func (f Friendship) Seq() uint64           { return f.Sequence }
func (f Friendship) OccurredAt() time.Time { return f.CreatedAt }
