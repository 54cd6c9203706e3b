// Package provider fetches reminder text sets from the remote content
// source and formats them for delivery.
package provider

import "context"

// Category selects one reminder collection.
type Category string

const (
	CategoryMorning    Category = "morning"
	CategoryEvening    Category = "evening"
	CategoryPostPrayer Category = "post_prayer"
	CategoryGeneral    Category = "general"
)

// Reminder is a single devotional text with its repeat count.
type Reminder struct {
	Text   string
	Repeat int
}

// Provider returns the ordered reminder set for a category.
type Provider interface {
	FetchReminderSet(ctx context.Context, category Category) ([]Reminder, error)
}
