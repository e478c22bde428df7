package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRole      = "user"
	AssistantRole = "assistant"
)

type MessageList []Message

type Message struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ConversationID uuid.UUID `db:"conversation_id" json:"conversation_id"`
	BranchID       uuid.UUID `db:"branch_id" json:"branch_id"`
	Role           string    `db:"role" json:"role"`
	Content        string    `db:"content" json:"content"`
	Position       int32     `db:"position" json:"position"`
	VersionNumber  int32     `db:"version_number" json:"version_number"`
	// ParentMessageID links an assistant reply to the user message that
	// triggered it.
	ParentMessageID *uuid.UUID `db:"parent_message_id" json:"parent_message_id,omitempty"`
	// OriginalMessageID identifies the lineage of an edited message. A message
	// without one is its own original.
	OriginalMessageID *uuid.UUID `db:"original_message_id" json:"original_message_id,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}
