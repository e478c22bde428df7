package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultConversationTitle = "New Chat"

	// TitleMaxLen is the number of runes of the first user message kept as the
	// conversation title.
	TitleMaxLen = 50
)

type ConversationList []Conversation

type Conversation struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
