package messageRepo

import "brandconnect/models"

// MessageRepository defines persistence operations for conversations
// and chat messages.
type MessageRepository interface {
	// GetOrCreateConversation returns the thread between a client and a
	// creative, creating it on first contact.
	GetOrCreateConversation(clientID, creativeID string) (*models.Conversation, error)
	GetConversation(id string) (*models.Conversation, error)
	ListConversations(accountID string) ([]models.Conversation, error)
	AppendMessage(message *models.Message) error
	ListMessages(conversationID string, limit int) ([]models.Message, error)
	MarkRead(conversationID, readerID string) error
}
