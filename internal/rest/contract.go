//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	api "github.com/forkline/chat-service/internal/generated"
	"github.com/forkline/chat-service/internal/model"
)

type ChatService interface {
	CreateConversation(ctx context.Context, userID uuid.UUID) (*model.Conversation, *model.Branch, error)
	GetConversations(ctx context.Context, userID uuid.UUID) (*model.ConversationList, error)
	GetBranches(ctx context.Context, userID, conversationID uuid.UUID) (*model.BranchList, error)
	DefaultBranch(ctx context.Context, userID, conversationID uuid.UUID) (*model.Branch, error)
	Transcript(ctx context.Context, userID, conversationID, branchID uuid.UUID) (model.MessageList, error)
	AppendUserTurn(ctx context.Context, userID, conversationID, branchID uuid.UUID, content string) (*model.Message, error)
	ForkAtMessage(ctx context.Context, userID, conversationID, messageID uuid.UUID, content string) (*model.Branch, *model.Message, error)
	GenerateReply(ctx context.Context, userMessage *model.Message) (*model.Message, error)
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateEditMessage(req *api.EditMessageRequest) error
}
