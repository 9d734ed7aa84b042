package domain

import "time"

// Notification is an in-app message, currently written only by the purchase
// flow as a receipt.
type Notification struct {
	NotificationID string    `json:"id" dynamodbav:"notification_id"`
	UserID         string    `json:"user_id" dynamodbav:"user_id"`
	PurchaseID     string    `json:"purchase_id,omitempty" dynamodbav:"purchase_id"`
	Message        string    `json:"message" dynamodbav:"message"`
	Read           int       `json:"read" dynamodbav:"read"` // 0 = unread, 1 = read
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}
