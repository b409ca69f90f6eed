package notification

import "context"

// NotificationService delivers push notices to signed-in accounts.
type NotificationService interface {
	// PushToUser sends a push to a client account.
	PushToUser(ctx context.Context, userID, title, body string, data map[string]string) error
	// PushToCreative sends a push to a creative account.
	PushToCreative(ctx context.Context, creativeID, title, body string, data map[string]string) error
}
