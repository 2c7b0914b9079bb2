package events

import "time"

type FriendshipCreated struct {
	Actor      string    `json:"actor"`
	Target     string    `json:"target"`
	OccurredAt time.Time `json:"occurred_at"`
}
