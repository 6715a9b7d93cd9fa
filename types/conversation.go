package types

import "time"

// ConversationTurn is a single question/answer exchange.
type ConversationTurn struct {
	UserMessage string    `json:"userMessage" bson:"userMessage"`
	BotResponse string    `json:"botResponse" bson:"botResponse"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// ConversationLog is the append-only transcript document, one per
// (member, calendar day). The core only ever writes it.
type ConversationLog struct {
	ID           string             `json:"id" bson:"_id,omitempty"`
	MemberID     string             `json:"memberId" bson:"memberId"`
	Date         string             `json:"date" bson:"date"`
	Conversation []ConversationTurn `json:"conversation" bson:"conversation"`
}
