package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/forkline/chat-service/internal/config"
	api "github.com/forkline/chat-service/internal/generated"
	"github.com/forkline/chat-service/internal/model"
	"github.com/forkline/chat-service/internal/pkg/tx"
)

// literal accepted in place of a branch uuid to resolve the conversation's
// main branch
const mainBranchAlias = "main"

type Handler struct {
	service   ChatService
	validator Validator
}

func New(service ChatService, validator Validator) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
	}
}

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateConversation")

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	var conversation *model.Conversation
	var branch *model.Branch
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		conversation, branch, err = h.service.CreateConversation(ctx, userID)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create conversation: %v", err))
		h.writeError(w, "failed to create conversation", h.statusFromError(err))
		return
	}

	response := api.CreateConversationResponse{
		Conversation: toAPIConversation(*conversation),
		MainBranch:   toAPIBranch(*branch),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	conversations, err := h.service.GetConversations(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeError(w, "failed to get conversations", h.statusFromError(err))
		return
	}

	apiConversations := make([]api.Conversation, len(*conversations))
	for i, conversation := range *conversations {
		apiConversations[i] = toAPIConversation(conversation)
	}

	response := api.GetConversationsResponse{
		Conversations: apiConversations,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetBranches(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetBranches")

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	conversationID, err := uuid.Parse(conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation id: %v", err))
		h.writeError(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	branches, err := h.service.GetBranches(r.Context(), userID, conversationID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get branches: %v", err))
		h.writeError(w, "failed to get branches", h.statusFromError(err))
		return
	}

	apiBranches := make([]api.Branch, len(*branches))
	for i, branch := range *branches {
		apiBranches[i] = toAPIBranch(branch)
	}

	response := api.GetBranchesResponse{
		Branches: apiBranches,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetBranchMessages(w http.ResponseWriter, r *http.Request, conversationId string, branchId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetBranchMessages")

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	conversationID, err := uuid.Parse(conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation id: %v", err))
		h.writeError(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	var branchID uuid.UUID
	if branchId == mainBranchAlias {
		branch, err := h.service.DefaultBranch(r.Context(), userID, conversationID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to resolve main branch: %v", err))
			h.writeError(w, "failed to resolve main branch", h.statusFromError(err))
			return
		}
		branchID = branch.ID
	} else {
		branchID, err = uuid.Parse(branchId)
		if err != nil {
			logger.Error(fmt.Sprintf("invalid branch id: %v", err))
			h.writeError(w, "invalid branch id", http.StatusBadRequest)
			return
		}
	}

	transcript, err := h.service.Transcript(r.Context(), userID, conversationID, branchID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to assemble transcript: %v", err))
		h.writeError(w, "failed to assemble transcript", h.statusFromError(err))
		return
	}

	apiMessages := make([]api.Message, len(transcript))
	for i, message := range transcript {
		apiMessages[i] = toAPIMessage(message)
	}

	response := api.GetBranchMessagesResponse{
		BranchId: branchID.String(),
		Messages: apiMessages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	conversationID, err := uuid.Parse(conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation id: %v", err))
		h.writeError(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	branchID, err := uuid.Parse(req.BranchId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid branch id: %v", err))
		h.writeError(w, "invalid branch id", http.StatusBadRequest)
		return
	}

	var userMessage *model.Message
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		userMessage, err = h.service.AppendUserTurn(ctx, userID, conversationID, branchID, req.Content)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to append user turn: %v", err))
		h.writeError(w, "failed to append user turn", h.statusFromError(err))
		return
	}

	// The user turn is already committed: a completion failure must not roll
	// it back, so the reply is generated outside the transaction above.
	reply, err := h.service.GenerateReply(r.Context(), userMessage)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate reply: %v", err))
		h.writeError(w, "failed to generate reply", h.statusFromError(err))
		return
	}

	response := api.SendMessageResponse{
		UserMessage:      toAPIMessage(*userMessage),
		AssistantMessage: toAPIMessage(*reply),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request, conversationId string, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EditMessage")

	var req api.EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := h.callerID(r)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateEditMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	conversationID, err := uuid.Parse(conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation id: %v", err))
		h.writeError(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	messageID, err := uuid.Parse(messageId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	var branch *model.Branch
	var editedMessage *model.Message
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		branch, editedMessage, err = h.service.ForkAtMessage(ctx, userID, conversationID, messageID, req.Content)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fork branch: %v", err))
		h.writeError(w, "failed to fork branch", h.statusFromError(err))
		return
	}

	reply, err := h.service.GenerateReply(r.Context(), editedMessage)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate reply: %v", err))
		h.writeError(w, "failed to generate reply", h.statusFromError(err))
		return
	}

	response := api.EditMessageResponse{
		Branch:           toAPIBranch(*branch),
		UserMessage:      toAPIMessage(*editedMessage),
		AssistantMessage: toAPIMessage(*reply),
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) callerID(r *http.Request) (uuid.UUID, bool) {
	raw, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func (h *Handler) statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrCompletionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}

func toAPIConversation(conversation model.Conversation) api.Conversation {
	return api.Conversation{
		Id:        conversation.ID.String(),
		Title:     conversation.Title,
		CreatedAt: conversation.CreatedAt.Format(time.RFC3339),
		UpdatedAt: conversation.UpdatedAt.Format(time.RFC3339),
	}
}

func toAPIBranch(branch model.Branch) api.Branch {
	return api.Branch{
		Id:                  branch.ID.String(),
		ConversationId:      branch.ConversationID.String(),
		Name:                branch.Name,
		IsMain:              branch.IsMain,
		ParentBranchId:      uuidPtrToString(branch.ParentBranchID),
		ForkedFromMessageId: uuidPtrToString(branch.ForkedFromMessageID),
		CreatedAt:           branch.CreatedAt.Format(time.RFC3339),
	}
}

func toAPIMessage(message model.Message) api.Message {
	return api.Message{
		Id:                message.ID.String(),
		ConversationId:    message.ConversationID.String(),
		BranchId:          message.BranchID.String(),
		Role:              message.Role,
		Content:           message.Content,
		Position:          int(message.Position),
		VersionNumber:     int(message.VersionNumber),
		ParentMessageId:   uuidPtrToString(message.ParentMessageID),
		OriginalMessageId: uuidPtrToString(message.OriginalMessageID),
		CreatedAt:         message.CreatedAt.Format(time.RFC3339),
	}
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}

	value := id.String()
	return &value
}
