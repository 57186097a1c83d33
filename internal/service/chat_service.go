package service

import (
	"context"
	"errors"
	"log"
	"slices"

	"github.com/google/uuid"
	"github.com/limbo/serene/internal/companion"
	"github.com/limbo/serene/internal/repository"
	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
)

const (
	// Messages loaded as reply context
	chatContextSize = 10
	// Previous user messages that keep the resources panel open
	crisisLookback     = 3
	defaultHistorySize = 50
	maxHistorySize     = 200
)

type ChatService struct {
	repo      repository.ChatRepositoryI
	generator companion.Generator
}

func NewChatService(chatRepo repository.ChatRepositoryI, generator companion.Generator) *ChatService {
	if chatRepo == nil || generator == nil {
		log.Fatal("on chat service provided nil dependencies")
	}
	return &ChatService{
		repo:      chatRepo,
		generator: generator,
	}
}

// SendMessage stores the user's message and the companion's reply.
// ShowResources is decided from the input and recent history before any reply is generated.
func (cs *ChatService) SendMessage(ctx context.Context, ownerID uuid.UUID, req *ChatRequest) (*ChatReply, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	crisis := wellness.DetectCrisis(req.Text)

	history, err := cs.repo.GetByOwner(ctx, ownerID, chatContextSize)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	showResources := crisis || recentCrisis(history)

	_, err = cs.repo.Create(ctx, &entity.ChatMessage{
		OwnerID: ownerID,
		Role:    entity.ChatRoleUser,
		Text:    req.Text,
	})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}

	replyText := cs.generator.Reply(ctx, req.Text, history)
	reply, err := cs.repo.Create(ctx, &entity.ChatMessage{
		OwnerID: ownerID,
		Role:    entity.ChatRoleCompanion,
		Text:    replyText,
	})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}

	res := &ChatReply{
		Reply:         *reply,
		ShowResources: showResources,
		Crisis:        replyText == wellness.CrisisMessage,
	}
	if showResources {
		res.Helplines = wellness.Helplines()
	}
	return res, nil
}

// history comes newest first
func recentCrisis(history []entity.ChatMessage) bool {
	seen := 0
	for _, m := range history {
		if m.Role != entity.ChatRoleUser {
			continue
		}
		if wellness.DetectCrisis(m.Text) {
			return true
		}
		seen++
		if seen == crisisLookback {
			break
		}
	}
	return false
}

func (cs *ChatService) History(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultHistorySize
	}
	messages, err := cs.repo.GetByOwner(ctx, ownerID, min(limit, maxHistorySize))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	slices.Reverse(messages)
	return messages, nil
}

func (cs *ChatService) ClearHistory(ctx context.Context, ownerID uuid.UUID) error {
	if err := cs.repo.DeleteByOwner(ctx, ownerID); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}
