package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/forkline/chat-service/internal/model"
)

// Transcript returns the branch's messages in reading order: position
// ascending, earliest creation time winning when two rows landed on the same
// position. Duplicate positions can only come from legacy data or a client
// retry that slipped past the position counter; the later row is noise, not
// an error. The call is read-only.
func (s *Service) Transcript(ctx context.Context, userID, conversationID, branchID uuid.UUID) (model.MessageList, error) {
	if _, err := s.ownedConversation(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	branch, err := s.repository.GetBranch(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	if branch.ConversationID != conversationID {
		return nil, fmt.Errorf("branch %s does not belong to conversation %s: %w", branchID, conversationID, model.ErrNotFound)
	}

	messages, err := s.repository.GetBranchMessages(ctx, conversationID, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch messages: %w", err)
	}

	return dedupeByPosition(*messages), nil
}

// dedupeByPosition keeps the first message seen at each position. The input is
// already ordered by position then creation time, so the survivor is always
// the earliest-created row.
func dedupeByPosition(messages model.MessageList) model.MessageList {
	transcript := make(model.MessageList, 0, len(messages))
	seen := make(map[int32]struct{}, len(messages))

	for _, message := range messages {
		if _, ok := seen[message.Position]; ok {
			continue
		}
		seen[message.Position] = struct{}{}
		transcript = append(transcript, message)
	}

	return transcript
}
