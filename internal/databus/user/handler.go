package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/forkline/chat-service/internal/config"
	"github.com/forkline/chat-service/internal/model"
)

type DBRepo interface {
	UpsertUser(ctx context.Context, user *model.User) error
}

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

// UserUpdatedMessage is the payload of the platform user topic.
type UserUpdatedMessage struct {
	UserUUID   string `json:"user_uuid"`
	Nickname   string `json:"nickname"`
	AvatarLink string `json:"avatar_link"`
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserUpdatedHandler")

	var msg UserUpdatedMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to decode user message: %v", err))
		return
	}

	userUUID, err := uuid.Parse(msg.UserUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse user uuid %q: %v", msg.UserUUID, err))
		return
	}

	err = h.repository.UpsertUser(ctx, &model.User{
		ID:         userUUID,
		Nickname:   msg.Nickname,
		AvatarLink: msg.AvatarLink,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upsert user %s: %v", msg.UserUUID, err))
	}
}
