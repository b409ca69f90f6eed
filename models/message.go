package models

import "time"

// Conversation is the messaging thread between one client and one
// creative. There is at most one conversation per pair.
type Conversation struct {
	ID            string    `bson:"id" json:"id"`
	ClientID      string    `bson:"clientId" json:"clientId"`
	CreativeID    string    `bson:"creativeId" json:"creativeId"`
	LastMessageAt time.Time `bson:"lastMessageAt" json:"lastMessageAt"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// Message is a single chat message within a conversation.
type Message struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	SenderID       string    `bson:"senderId" json:"senderId"`
	Body           string    `bson:"body" json:"body"`
	SentAt         time.Time `bson:"sentAt" json:"sentAt"`
	Read           bool      `bson:"read" json:"read"`
}

// SendMessageRequest is the payload for posting a chat message.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// ChatEvent is what gets fanned out over the chat channel (Redis
// pub/sub to peer instances, then WebSocket to connected clients).
type ChatEvent struct {
	Type           string    `json:"type"` // "message"
	ConversationID string    `json:"conversationId"`
	MessageID      string    `json:"messageId"`
	SenderID       string    `json:"senderId"`
	RecipientID    string    `json:"recipientId"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sentAt"`
}
