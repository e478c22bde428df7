//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forkline/chat-service/internal/model"
)

type DBRepo interface {
	CreateConversation(ctx context.Context, conversation *model.Conversation) error
	GetConversation(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error)
	GetConversations(ctx context.Context, userID uuid.UUID) (*model.ConversationList, error)
	UpdateConversationTitle(ctx context.Context, conversationID uuid.UUID, title string, updatedAt time.Time) error

	CreateBranch(ctx context.Context, branch *model.Branch) error
	GetBranch(ctx context.Context, branchID uuid.UUID) (*model.Branch, error)
	GetMainBranch(ctx context.Context, conversationID uuid.UUID) (*model.Branch, error)
	GetBranches(ctx context.Context, conversationID uuid.UUID) (*model.BranchList, error)
	CountChildBranches(ctx context.Context, parentBranchID uuid.UUID) (int64, error)
	AllocatePositions(ctx context.Context, branchID uuid.UUID, count int32) (int32, error)

	SaveMessage(ctx context.Context, message *model.Message) error
	SaveMessages(ctx context.Context, messages []model.Message) error
	GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	GetBranchMessages(ctx context.Context, conversationID, branchID uuid.UUID) (*model.MessageList, error)
	GetMessagesBefore(ctx context.Context, conversationID, branchID uuid.UUID, position int32) (*model.MessageList, error)
}

type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
