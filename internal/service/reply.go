package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forkline/chat-service/internal/model"
	"github.com/forkline/chat-service/internal/pkg/tx"
)

const promptTemplate = "As a helpful AI assistant, please respond to: %s"

// GenerateReply calls the completion model for the given user message and
// persists the assistant reply at the branch's next position. The model call
// happens outside any database transaction; only the resulting write runs
// inside one. On completion failure nothing is written and the user message
// stays in place, so the caller may retry generation for the same turn.
//
// The prompt carries only the latest user text, not the assembled transcript.
// That mirrors the product's observed behavior and is a deliberate
// simplification.
func (s *Service) GenerateReply(ctx context.Context, userMessage *model.Message) (*model.Message, error) {
	content, err := s.completion.Complete(ctx, fmt.Sprintf(promptTemplate, userMessage.Content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCompletionFailed, err)
	}

	reply := &model.Message{
		ID:              uuid.New(),
		ConversationID:  userMessage.ConversationID,
		BranchID:        userMessage.BranchID,
		Role:            model.AssistantRole,
		Content:         content,
		VersionNumber:   1,
		ParentMessageID: &userMessage.ID,
		CreatedAt:       time.Now(),
	}

	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		position, err := s.repository.AllocatePositions(ctx, userMessage.BranchID, 1)
		if err != nil {
			return fmt.Errorf("failed to allocate position: %w", err)
		}

		reply.Position = position

		if err := s.repository.SaveMessage(ctx, reply); err != nil {
			return fmt.Errorf("failed to save assistant message: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reply, nil
}
