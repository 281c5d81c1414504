package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"lankatrip/internal/models/db_models"
	"lankatrip/internal/models/request_models"
	"lankatrip/internal/models/response_models"
	"lankatrip/internal/repositories"
	"lankatrip/pkg/memcache"
	"lankatrip/pkg/metrics"
	"lankatrip/pkg/utils"
)

type ChatServiceInterface interface {
	SendMessage(ctx context.Context, userID string, request request_models.ChatMessageRequest) (*response_models.ChatMessageResponse, error)
}

type ChatService struct {
	aiClient       utils.AIClientInterface
	embeddingRepo  repositories.IAttractionEmbeddingRepository
	attractionRepo repositories.AttractionRepository
	sessions       memcache.ChatSessionStore
	registry       *metrics.Registry
}

func NewChatService(
	aiClient utils.AIClientInterface,
	embeddingRepo repositories.IAttractionEmbeddingRepository,
	attractionRepo repositories.AttractionRepository,
	sessions memcache.ChatSessionStore,
	registry *metrics.Registry,
) ChatServiceInterface {
	return &ChatService{
		aiClient:       aiClient,
		embeddingRepo:  embeddingRepo,
		attractionRepo: attractionRepo,
		sessions:       sessions,
		registry:       registry,
	}
}

const chatSystemPrompt = "You are a Sri Lanka travel assistant. " +
	"Answer using the attractions provided as grounding when relevant, " +
	"keep replies short, and never invent places that are not listed."

// SendMessage grounds the reply on catalog data: the message is
// embedded, similar attractions are fetched by vector distance, and
// those attractions are handed to the model alongside recent session
// history.
func (s *ChatService) SendMessage(ctx context.Context, userID string, request request_models.ChatMessageRequest) (*response_models.ChatMessageResponse, error) {
	message := strings.TrimSpace(request.Message)
	if message == "" {
		return nil, utils.ErrInvalidInput
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	vector, err := s.aiClient.GetEmbedding(ctx, message)
	if err != nil {
		log.Printf("Embedding error: %v", err)
		return nil, utils.ErrAIUnavailable
	}

	matches, err := s.embeddingRepo.SearchByVector(vector, 5)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var attractionIds []string
	for _, match := range matches {
		attractionIds = append(attractionIds, match.AttractionID)
	}

	attractions, err := s.attractionRepo.ListByIds(ctx, attractionIds)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	reply, err := s.aiClient.GenerateReply(ctx, chatSystemPrompt, s.buildUserPrompt(sessionID, message, matches))
	if err != nil {
		log.Printf("Chat completion error: %v", err)
		return nil, utils.ErrAIUnavailable
	}

	s.sessions.Append(sessionID, "user", message)
	s.sessions.Append(sessionID, "assistant", reply)
	s.registry.Inc("chat_messages_total")

	suggestions := make([]response_models.AttractionResponse, 0, len(attractions))
	for _, attraction := range attractions {
		suggestions = append(suggestions, buildAttractionResponse(attraction))
	}

	return &response_models.ChatMessageResponse{
		SessionID:   sessionID,
		Reply:       reply,
		Suggestions: suggestions,
	}, nil
}

func (s *ChatService) buildUserPrompt(sessionID, message string, matches []db_models.AttractionEmbedding) string {
	var b strings.Builder

	if history := s.sessions.History(sessionID); len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			b.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Content))
		}
		b.WriteString("\n")
	}

	if len(matches) > 0 {
		b.WriteString("Relevant attractions:\n")
		for _, match := range matches {
			b.WriteString(fmt.Sprintf("- %s: %s\n", match.Name, match.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("Visitor message: ")
	b.WriteString(message)
	return b.String()
}
