package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forkline/chat-service/internal/model"
)

// Service is the single authority for mutating the conversation/branch/message
// graph. Handlers run its multi-row operations inside the tx unit of work, so
// a failed fork never leaves a half-populated branch behind.
type Service struct {
	repository DBRepo
	completion CompletionClient
}

func New(repository DBRepo, completion CompletionClient) *Service {
	return &Service{
		repository: repository,
		completion: completion,
	}
}

// CreateConversation inserts a conversation and its main branch. Both rows are
// written through the same context, so under TxExecute they commit together.
func (s *Service) CreateConversation(ctx context.Context, userID uuid.UUID) (*model.Conversation, *model.Branch, error) {
	now := time.Now()

	conversation := &model.Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     model.DefaultConversationTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.CreateConversation(ctx, conversation); err != nil {
		return nil, nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	branch := &model.Branch{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		Name:           model.MainBranchName,
		IsMain:         true,
		CreatedAt:      now,
	}

	if err := s.repository.CreateBranch(ctx, branch); err != nil {
		return nil, nil, fmt.Errorf("failed to create main branch: %w", err)
	}

	return conversation, branch, nil
}

func (s *Service) GetConversations(ctx context.Context, userID uuid.UUID) (*model.ConversationList, error) {
	conversations, err := s.repository.GetConversations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %w", err)
	}

	return conversations, nil
}

func (s *Service) GetBranches(ctx context.Context, userID, conversationID uuid.UUID) (*model.BranchList, error) {
	if _, err := s.ownedConversation(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	branches, err := s.repository.GetBranches(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	return branches, nil
}

// DefaultBranch resolves the conversation's main branch. The conversation
// must exist and belong to the caller; once it does, a missing main branch
// is corrupt data reported as a store failure, not as something the caller
// can recover from.
func (s *Service) DefaultBranch(ctx context.Context, userID, conversationID uuid.UUID) (*model.Branch, error) {
	if _, err := s.ownedConversation(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	branch, err := s.repository.GetMainBranch(ctx, conversationID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("conversation %s has no main branch: %w", conversationID, model.ErrStoreFailure)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve main branch: %w", err)
	}

	return branch, nil
}

// AppendUserTurn writes the caller's message at the branch's next position.
// On the conversation's first turn the message also becomes the title.
func (s *Service) AppendUserTurn(ctx context.Context, userID, conversationID, branchID uuid.UUID, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("empty user message: %w", model.ErrInvalidInput)
	}

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

	position, err := s.repository.AllocatePositions(ctx, branchID, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate position: %w", err)
	}

	message := &model.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		BranchID:       branchID,
		Role:           model.UserRole,
		Content:        content,
		Position:       position,
		VersionNumber:  1,
		CreatedAt:      time.Now(),
	}

	if err := s.repository.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	if position == 0 {
		if err := s.repository.UpdateConversationTitle(ctx, conversationID, titleFromContent(content), message.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to set conversation title: %w", err)
		}
	}

	return message, nil
}

// ForkAtMessage edits a past user message by forking a new branch: history
// below the edit point is duplicated into the fork as a historical record, the
// edited message lands at the same position as the next version of its
// lineage, and the source branch is left untouched.
func (s *Service) ForkAtMessage(ctx context.Context, userID, conversationID, messageID uuid.UUID, content string) (*model.Branch, *model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil, fmt.Errorf("empty edited message: %w", model.ErrInvalidInput)
	}

	if _, err := s.ownedConversation(ctx, userID, conversationID); err != nil {
		return nil, nil, err
	}

	source, err := s.repository.GetMessage(ctx, messageID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get message: %w", err)
	}

	if source.ConversationID != conversationID {
		return nil, nil, fmt.Errorf("message %s does not belong to conversation %s: %w", messageID, conversationID, model.ErrNotFound)
	}

	if source.Role != model.UserRole {
		return nil, nil, fmt.Errorf("only user messages can be edited: %w", model.ErrInvalidInput)
	}

	sourceBranch, err := s.repository.GetBranch(ctx, source.BranchID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get source branch: %w", err)
	}

	name, err := s.forkName(ctx, sourceBranch)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	branch := &model.Branch{
		ID:                  uuid.New(),
		ConversationID:      conversationID,
		Name:                name,
		IsMain:              false,
		ParentBranchID:      &sourceBranch.ID,
		ForkedFromMessageID: &source.ID,
		NextPosition:        source.Position,
		CreatedAt:           now,
	}

	if err := s.repository.CreateBranch(ctx, branch); err != nil {
		return nil, nil, fmt.Errorf("failed to create fork branch: %w", err)
	}

	history, err := s.repository.GetMessagesBefore(ctx, conversationID, sourceBranch.ID, source.Position)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read history below fork point: %w", err)
	}

	copies := make([]model.Message, 0, len(*history))
	for _, message := range *history {
		duplicate := message
		duplicate.ID = uuid.New()
		duplicate.BranchID = branch.ID
		copies = append(copies, duplicate)
	}

	if err := s.repository.SaveMessages(ctx, copies); err != nil {
		return nil, nil, fmt.Errorf("failed to copy history into fork: %w", err)
	}

	position, err := s.repository.AllocatePositions(ctx, branch.ID, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to allocate position: %w", err)
	}

	originalID := source.ID
	if source.OriginalMessageID != nil {
		originalID = *source.OriginalMessageID
	}

	edited := &model.Message{
		ID:                uuid.New(),
		ConversationID:    conversationID,
		BranchID:          branch.ID,
		Role:              model.UserRole,
		Content:           content,
		Position:          position,
		VersionNumber:     source.VersionNumber + 1,
		OriginalMessageID: &originalID,
		CreatedAt:         now,
	}

	if err := s.repository.SaveMessage(ctx, edited); err != nil {
		return nil, nil, fmt.Errorf("failed to save edited message: %w", err)
	}

	return branch, edited, nil
}

func (s *Service) ownedConversation(ctx context.Context, userID, conversationID uuid.UUID) (*model.Conversation, error) {
	conversation, err := s.repository.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	if conversation.UserID != userID {
		return nil, fmt.Errorf("conversation %s: %w", conversationID, model.ErrUnauthorized)
	}

	return conversation, nil
}

// forkName derives a stable, structured label from the parent branch name and
// the fork's ordinal among its siblings. Names are presentation only; identity
// stays with the uuid, so a collision is harmless.
func (s *Service) forkName(ctx context.Context, parent *model.Branch) (string, error) {
	siblings, err := s.repository.CountChildBranches(ctx, parent.ID)
	if err != nil {
		return "", fmt.Errorf("failed to count sibling forks: %w", err)
	}

	return fmt.Sprintf("%s / edit %d", parent.Name, siblings+1), nil
}

func titleFromContent(content string) string {
	runes := []rune(content)
	if len(runes) <= model.TitleMaxLen {
		return content
	}

	return string(runes[:model.TitleMaxLen]) + "..."
}
