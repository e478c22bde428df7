package model

import (
	"time"

	"github.com/google/uuid"
)

const MainBranchName = "Main"

type BranchList []Branch

// Branch is one timeline of messages inside a conversation. The main branch
// is created together with the conversation; every other branch is produced
// by editing a past user message and carries a pointer to the parent branch
// and the message whose edit forked it.
type Branch struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	ConversationID      uuid.UUID  `db:"conversation_id" json:"conversation_id"`
	Name                string     `db:"name" json:"name"`
	IsMain              bool       `db:"is_main" json:"is_main"`
	ParentBranchID      *uuid.UUID `db:"parent_branch_id" json:"parent_branch_id,omitempty"`
	ForkedFromMessageID *uuid.UUID `db:"forked_from_message_id" json:"forked_from_message_id,omitempty"`
	// NextPosition is the branch-owned position counter. Positions are handed
	// out by atomically incrementing it, never by scanning existing messages.
	NextPosition int32     `db:"next_position" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
