// Package feed renders account activity feeds for display. Rendering is a
// pure read-side projection: it never mutates the entities or the source
// feed, and it preserves the order of the supplied sequence.
package feed

import (
	"fmt"
	"sort"

	"github.com/sheikh-saqib/social-payments-feed-system/internal/models"
)

// Render produces one human-readable line per ledger entity, in input order.
func Render(items []models.FeedItem) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, RenderItem(item))
	}
	return lines
}

// RenderItem formats a single ledger entity.
func RenderItem(item models.FeedItem) string {
	switch v := item.(type) {
	case models.Payment:
		return fmt.Sprintf("%s paid %s $%s for %s", v.Actor, v.Target, v.Amount.StringFixed(2), v.Note)
	case models.Friendship:
		return fmt.Sprintf("%s and %s are now friends", v.Actor, v.Target)
	default:
		return fmt.Sprintf("%v", item)
	}
}

// Merge unions several per-account feeds into one sequence ordered by
// creation sequence number. Two per-account feeds alone carry no total order
// across accounts; the creation stamp does.
func Merge(feeds ...[]models.FeedItem) []models.FeedItem {
	var merged []models.FeedItem
	for _, f := range feeds {
		merged = append(merged, f...)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Seq() < merged[j].Seq()
	})
	return merged
}
