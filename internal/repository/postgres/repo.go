package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/forkline/chat-service/internal/config"
	"github.com/forkline/chat-service/internal/model"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type keyTx struct{}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Chk routes a statement into the transaction opened by WithTx when the
// context carries one, and to the shared connection otherwise.
func (r *Repository) Chk(ctx context.Context) querier {
	if transaction, ok := ctx.Value(keyTx{}).(*sqlx.Tx); ok {
		return transaction
	}

	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	transaction, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyTx{}, transaction)); err != nil {
		_ = transaction.Rollback()
		return err
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *Repository) CreateConversation(ctx context.Context, conversation *model.Conversation) error {
	query, args, err := sq.Insert("conversations").
		Columns("id", "user_id", "title", "created_at", "updated_at").
		Values(conversation.ID, conversation.UserID, conversation.Title, conversation.CreatedAt, conversation.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create conversation: %v", err)
	}

	return nil
}

func (r *Repository) GetConversation(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error) {
	query, args, err := sq.Select("id", "user_id", "title", "created_at", "updated_at").
		From("conversations").
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("conversation %s: %w", conversationID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	return &conversation, nil
}

func (r *Repository) GetConversations(ctx context.Context, userID uuid.UUID) (*model.ConversationList, error) {
	query, args, err := sq.Select("id", "user_id", "title", "created_at", "updated_at").
		From("conversations").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversations model.ConversationList
	err = r.Chk(ctx).SelectContext(ctx, &conversations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %v", err)
	}

	return &conversations, nil
}

func (r *Repository) UpdateConversationTitle(ctx context.Context, conversationID uuid.UUID, title string, updatedAt time.Time) error {
	query, args, err := sq.Update("conversations").
		Set("title", title).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update conversation title: %v", err)
	}

	return nil
}

func (r *Repository) CreateBranch(ctx context.Context, branch *model.Branch) error {
	query, args, err := sq.Insert("branches").
		Columns("id", "conversation_id", "name", "is_main", "parent_branch_id", "forked_from_message_id", "next_position", "created_at").
		Values(branch.ID, branch.ConversationID, branch.Name, branch.IsMain, branch.ParentBranchID, branch.ForkedFromMessageID, branch.NextPosition, branch.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create branch: %v", err)
	}

	return nil
}

func (r *Repository) GetBranch(ctx context.Context, branchID uuid.UUID) (*model.Branch, error) {
	query, args, err := branchSelect().
		Where(sq.Eq{"id": branchID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var branch model.Branch
	err = r.Chk(ctx).GetContext(ctx, &branch, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("branch %s: %w", branchID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get branch: %v", err)
	}

	return &branch, nil
}

func (r *Repository) GetMainBranch(ctx context.Context, conversationID uuid.UUID) (*model.Branch, error) {
	query, args, err := branchSelect().
		Where(sq.Eq{
			"conversation_id": conversationID,
			"is_main":         true,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var branch model.Branch
	err = r.Chk(ctx).GetContext(ctx, &branch, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("main branch of conversation %s: %w", conversationID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get main branch: %v", err)
	}

	return &branch, nil
}

func (r *Repository) GetBranches(ctx context.Context, conversationID uuid.UUID) (*model.BranchList, error) {
	query, args, err := branchSelect().
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var branches model.BranchList
	err = r.Chk(ctx).SelectContext(ctx, &branches, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %v", err)
	}

	return &branches, nil
}

func (r *Repository) CountChildBranches(ctx context.Context, parentBranchID uuid.UUID) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("branches").
		Where(sq.Eq{"parent_branch_id": parentBranchID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count child branches: %v", err)
	}

	return count, nil
}

// AllocatePositions atomically reserves count consecutive positions on the
// branch and returns the first one. The counter lives on the branch row, so
// two concurrent writers can never be handed the same position.
func (r *Repository) AllocatePositions(ctx context.Context, branchID uuid.UUID, count int32) (int32, error) {
	query, args, err := sq.Update("branches").
		Set("next_position", sq.Expr("next_position + ?", count)).
		Where(sq.Eq{"id": branchID}).
		Suffix("RETURNING next_position").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var nextPosition int32
	err = r.Chk(ctx).GetContext(ctx, &nextPosition, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("branch %s: %w", branchID, model.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to allocate positions: %v", err)
	}

	return nextPosition - count, nil
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := messageInsert().
		Values(message.ID, message.ConversationID, message.BranchID, message.Role, message.Content,
			message.Position, message.VersionNumber, message.ParentMessageID, message.OriginalMessageID, message.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) SaveMessages(ctx context.Context, messages []model.Message) error {
	if len(messages) == 0 {
		return nil
	}

	queryBuilder := messageInsert().PlaceholderFormat(sq.Dollar)
	for _, message := range messages {
		queryBuilder = queryBuilder.Values(message.ID, message.ConversationID, message.BranchID, message.Role, message.Content,
			message.Position, message.VersionNumber, message.ParentMessageID, message.OriginalMessageID, message.CreatedAt)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save messages: %v", err)
	}

	return nil
}

func (r *Repository) GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	query, args, err := messageSelect().
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("message %s: %w", messageID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return &message, nil
}

// GetBranchMessages returns the branch's messages ordered by position with
// creation time as the tie-break, the order the transcript assembler relies
// on.
func (r *Repository) GetBranchMessages(ctx context.Context, conversationID, branchID uuid.UUID) (*model.MessageList, error) {
	query, args, err := messageSelect().
		Where(sq.Eq{
			"conversation_id": conversationID,
			"branch_id":       branchID,
		}).
		OrderBy("position ASC", "created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch messages: %v", err)
	}

	return &messages, nil
}

func (r *Repository) GetMessagesBefore(ctx context.Context, conversationID, branchID uuid.UUID, position int32) (*model.MessageList, error) {
	query, args, err := messageSelect().
		Where(sq.Eq{
			"conversation_id": conversationID,
			"branch_id":       branchID,
		}).
		Where(sq.Lt{"position": position}).
		OrderBy("position ASC", "created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages before position: %v", err)
	}

	return &messages, nil
}

func (r *Repository) UpsertUser(ctx context.Context, user *model.User) error {
	query, args, err := sq.Insert("users").
		Columns("id", "nickname", "avatar_link").
		Values(user.ID, user.Nickname, user.AvatarLink).
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname, avatar_link = EXCLUDED.avatar_link").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %v", err)
	}

	return nil
}

func branchSelect() sq.SelectBuilder {
	return sq.Select(
		"id",
		"conversation_id",
		"name",
		"is_main",
		"parent_branch_id",
		"forked_from_message_id",
		"next_position",
		"created_at",
	).From("branches")
}

func messageSelect() sq.SelectBuilder {
	return sq.Select(
		"id",
		"conversation_id",
		"branch_id",
		"role",
		"content",
		"position",
		"version_number",
		"parent_message_id",
		"original_message_id",
		"created_at",
	).From("messages")
}

func messageInsert() sq.InsertBuilder {
	return sq.Insert("messages").
		Columns("id", "conversation_id", "branch_id", "role", "content",
			"position", "version_number", "parent_message_id", "original_message_id", "created_at")
}
