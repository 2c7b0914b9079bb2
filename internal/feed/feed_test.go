package feed

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/social-payments-feed-system/internal/models"
)

func TestRenderItemPayment(t *testing.T) {
	p := models.NewPayment("Bobby", "Carol", decimal.RequireFromString("5"), "Coffee")
	assert.Equal(t, "Bobby paid Carol $5.00 for Coffee", RenderItem(p))

	p = models.NewPayment("Carol", "Bobby", decimal.RequireFromString("15.5"), "Lunch")
	assert.Equal(t, "Carol paid Bobby $15.50 for Lunch", RenderItem(p))
}

func TestRenderItemFriendship(t *testing.T) {
	f := models.NewFriendship("Bobby", "Carol")
	assert.Equal(t, "Bobby and Carol are now friends", RenderItem(f))
}

func TestRenderPreservesOrder(t *testing.T) {
	items := []models.FeedItem{
		models.NewPayment("Bobby", "Carol", decimal.NewFromInt(5), "Coffee"),
		models.NewPayment("Carol", "Bobby", decimal.NewFromInt(15), "Lunch"),
		models.NewFriendship("Bobby", "Carol"),
	}

	lines := Render(items)
	require.Equal(t, []string{
		"Bobby paid Carol $5.00 for Coffee",
		"Carol paid Bobby $15.00 for Lunch",
		"Bobby and Carol are now friends",
	}, lines)
}

func TestRenderEmptyFeed(t *testing.T) {
	assert.Empty(t, Render(nil))
}

func TestMergeOrdersBySequence(t *testing.T) {
	first := models.NewFriendship("Bobby", "Carol")
	second := models.NewPayment("Bobby", "Carol", decimal.NewFromInt(1), "One")
	third := models.NewPayment("Carol", "Daisy", decimal.NewFromInt(2), "Two")

	merged := Merge(
		[]models.FeedItem{second},
		[]models.FeedItem{first, third},
	)

	require.Len(t, merged, 3)
	assert.Equal(t, first.Seq(), merged[0].Seq())
	assert.Equal(t, second.Seq(), merged[1].Seq())
	assert.Equal(t, third.Seq(), merged[2].Seq())
}
